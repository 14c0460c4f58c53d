package toon

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedInputError reports input a decode call cannot work with:
// empty text, or a tabular header whose row count or column list does
// not parse. Anything else decodes best-effort, degrading odd scalars
// to strings.
type MalformedInputError struct {
	Message string
	Line    int
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("toon: %s (line %d)", e.Message, e.Line)
	}
	return "toon: " + e.Message
}

// Decode parses TOON text into a fresh Value tree. The tabular path is
// tried first (header line with [N] and {cols}); everything else parses
// as a key/value block or a bare scalar.
func Decode(input string) (*Value, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, &MalformedInputError{Message: "empty input"}
	}

	lines := strings.Split(trimmed, "\n")
	first := strings.TrimSpace(lines[0])
	if isTabularHeader(first) {
		// A later key line means the table is one entry of a larger
		// block; only a whole-document table takes the strict path.
		if tabularHeaderPattern.FindStringSubmatch(first) == nil || !hasKeyLine(lines[1:]) {
			return decodeTabular(lines)
		}
	}
	return decodeBlock(lines), nil
}

// ============================================================
// Key/Value Block Parsing
// ============================================================

// decodeBlock parses lines as key: value entries. An unindented line
// containing a colon starts a new key; its value is either inline or
// accumulated from the following indented lines. Blocks keyed exactly
// 0..n-1 decode as arrays, reconstructing the encoder's rendering of
// non-uniform arrays.
func decodeBlock(lines []string) *Value {
	if !hasKeyLine(lines) {
		return decodeScalarLines(lines)
	}

	var fields []Field
	var curKey string
	var curVal []string
	curInline := false
	curTabular := false
	haveKey := false

	flush := func() {
		if !haveKey {
			return
		}
		if curTabular {
			if v, err := decodeTabular(curVal); err == nil && v.Kind() == KindObj {
				fields = append(fields, v.objVal...)
				return
			}
			// Foreign input only: a keyless table or malformed header
			// between keyed entries. The encoder never interleaves
			// these. Degrade keeps the header text as the key so the
			// row lines are not silently dropped.
			header := strings.TrimSpace(curVal[0])
			fields = append(fields, Field{
				Key:   strings.TrimSuffix(header, ":"),
				Value: decodeEntryValue(curVal[1:], false),
			})
			return
		}
		fields = append(fields, Field{Key: curKey, Value: decodeEntryValue(curVal, curInline)})
	}

	for _, raw := range lines {
		line := strings.TrimRight(raw, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if isKeyLine(line) {
			flush()
			haveKey = true
			if isTabularHeader(line) {
				// Tabular entry inside a block: keep the header, the
				// indented rows arrive as continuation lines.
				curKey = ""
				curVal = []string{line}
				curInline = false
				curTabular = true
				continue
			}
			curTabular = false
			idx := strings.Index(line, ":")
			curKey = strings.TrimSpace(line[:idx])
			rest := strings.TrimSpace(line[idx+1:])
			if rest != "" {
				curVal = []string{rest}
				curInline = true
			} else {
				curVal = nil
				curInline = false
			}
			continue
		}

		// Continuation of the current value; keep indentation for dedent.
		curVal = append(curVal, line)
	}
	flush()

	if arr, ok := indexSequence(fields); ok {
		return arr
	}
	return Obj(fields...)
}

// isKeyLine reports whether line starts a new top-level entry.
func isKeyLine(line string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' || line[0] == '"' {
		return false
	}
	return strings.Contains(line, ":")
}

func hasKeyLine(lines []string) bool {
	for _, line := range lines {
		if isKeyLine(strings.TrimRight(line, " \t")) {
			return true
		}
	}
	return false
}

// decodeEntryValue turns one entry's value lines into a Value. An inline
// scalar infers directly; a continuation block is dedented and decoded
// recursively (it may itself be tabular, a key/value block, or text).
func decodeEntryValue(valLines []string, inline bool) *Value {
	if len(valLines) == 0 {
		return Str("")
	}
	if inline && len(valLines) == 1 {
		return inferScalar(valLines[0])
	}

	block := dedent(valLines)
	if isTabularHeader(strings.TrimSpace(block[0])) && !hasKeyLine(block[1:]) {
		if v, err := decodeTabular(block); err == nil {
			return v
		}
	}
	if hasKeyLine(block) {
		return decodeBlock(block)
	}
	return decodeScalarLines(block)
}

// decodeScalarLines handles a block with no key structure: a single
// scalar, or free text joined with spaces.
func decodeScalarLines(lines []string) *Value {
	var parts []string
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 1 {
		return inferScalar(parts[0])
	}
	return Str(strings.Join(parts, " "))
}

// dedent strips the common leading-space prefix from non-empty lines.
func dedent(lines []string) []string {
	min := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := 0
		for n < len(line) && line[n] == ' ' {
			n++
		}
		if min < 0 || n < min {
			min = n
		}
	}
	if min <= 0 {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= min {
			out[i] = line[min:]
		} else {
			out[i] = strings.TrimLeft(line, " ")
		}
	}
	return out
}

// indexSequence recognizes fields keyed exactly "0".."n-1" in order and
// rebuilds the array. Ambiguous by design: an object genuinely keyed
// that way decodes as an array.
func indexSequence(fields []Field) (*Value, bool) {
	if len(fields) == 0 {
		return nil, false
	}
	elems := make([]*Value, len(fields))
	for i, f := range fields {
		if f.Key != strconv.Itoa(i) {
			return nil, false
		}
		elems[i] = f.Value
	}
	return Arr(elems...), true
}

// ============================================================
// Scalar Type Inference
// ============================================================

// inferScalar applies the fixed inference order: quoted string, empty
// container, inline JSON, null, bool, int, float, then String as the
// ultimate fallback. Quoted values are always strings, overriding the
// other rules.
func inferScalar(s string) *Value {
	s = strings.TrimSpace(s)

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return Str(unquoteField(s))
	}

	switch s {
	case "{}":
		return Obj()
	case "[]":
		return Arr()
	}

	// Depth-collapsed substructure comes back as inline JSON.
	if len(s) > 0 && (s[0] == '{' || s[0] == '[') {
		if v, err := FromJSON([]byte(s)); err == nil {
			return v
		}
	}

	switch strings.ToLower(s) {
	case "null":
		return Null()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	if intLiteral.MatchString(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(n)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			// Integer overflow: keep the magnitude.
			return Float(f)
		}
	}
	if floatLiteral.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f)
		}
	}

	return Str(s)
}

// unquoteField reverses quoteField: strips the outer quotes, collapses
// doubled quotes, and turns the two-character escape \n back into a
// newline.
func unquoteField(s string) string {
	inner := s[1 : len(s)-1]
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case c == '"' && i+1 < len(inner) && inner[i+1] == '"':
			b.WriteByte('"')
			i++
		case c == '\\' && i+1 < len(inner) && inner[i+1] == 'n':
			b.WriteByte('\n')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
