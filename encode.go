package toon

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Options configures encoding. Pass explicitly per call; there is no
// shared mutable default.
type Options struct {
	// IndentSize is the number of spaces per nesting level (default: 2)
	IndentSize int

	// MaxDepth bounds nested rendering. Substructure beyond it collapses
	// to its plain-structured (inline JSON) form. (default: 3)
	MaxDepth int

	// CompactStrings emits strings bare when they contain no characters
	// that require quoting. When false, every string value is quoted.
	// (default: true)
	CompactStrings bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		IndentSize:     2,
		MaxDepth:       3,
		CompactStrings: true,
	}
}

// Encode converts a Value to TOON text with default options.
// It is total: any well-formed Value encodes without error.
func Encode(v *Value) string {
	return EncodeWithOptions(v, DefaultOptions())
}

// EncodeWithOptions converts a Value to TOON text with custom options.
func EncodeWithOptions(v *Value, opts Options) string {
	if opts.IndentSize <= 0 {
		opts.IndentSize = 2
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 3
	}
	e := &encoder{opts: opts, indent: strings.Repeat(" ", opts.IndentSize)}
	return e.encodeValue(v, 0)
}

type encoder struct {
	opts   Options
	indent string
}

func (e *encoder) encodeValue(v *Value, depth int) string {
	if v.IsNull() {
		return litNull
	}

	switch v.kind {
	case KindBool:
		return litBool(v.boolVal)

	case KindInt:
		return litInt(v.intVal)

	case KindFloat:
		return litFloat(v.floatVal)

	case KindStr:
		return e.litStr(v.strVal)

	case KindObj:
		if len(v.objVal) == 0 {
			return "{}"
		}
		if key, rows, ok := TabularWrapper(v); ok && tabularizable(rows) {
			return encodeTabular(key, rows)
		}
		var b strings.Builder
		for i, f := range v.objVal {
			if i > 0 {
				b.WriteByte('\n')
			}
			e.writeEntry(&b, f.Key, f.Value, depth)
		}
		return b.String()

	case KindArr:
		if len(v.arrVal) == 0 {
			return "[]"
		}
		if isUniformElems(v.arrVal) && tabularizable(v.arrVal) {
			return encodeTabular("", v.arrVal)
		}
		var b strings.Builder
		for i, elem := range v.arrVal {
			if i > 0 {
				b.WriteByte('\n')
			}
			e.writeEntry(&b, strconv.Itoa(i), elem, depth)
		}
		return b.String()

	default:
		return litNull
	}
}

// writeEntry renders one key: value line, recursing into an indented
// block for container values.
func (e *encoder) writeEntry(b *strings.Builder, key string, v *Value, depth int) {
	// Uniform table-shaped fields take the keyed header form. Anything
	// non-uniform falls through to the lossless index rendering.
	if v.Kind() == KindArr && depth+1 < e.opts.MaxDepth &&
		isUniformElems(v.arrVal) && tabularizable(v.arrVal) {
		b.WriteString(encodeTabular(key, v.arrVal))
		return
	}

	b.WriteString(key)
	b.WriteByte(':')

	switch v.Kind() {
	case KindObj, KindArr:
		if v.Len() == 0 {
			b.WriteByte(' ')
			b.WriteString(e.encodeValue(v, depth))
			return
		}
		if depth+1 >= e.opts.MaxDepth {
			// Depth limit reached: collapse to the plain-structured form.
			b.WriteByte(' ')
			b.Write(ToJSON(v))
			return
		}
		b.WriteByte('\n')
		b.WriteString(e.indentBlock(e.encodeValue(v, depth+1)))

	default:
		b.WriteByte(' ')
		b.WriteString(e.encodeValue(v, depth))
	}
}

// indentBlock prefixes every line of a rendered block with one indent.
func (e *encoder) indentBlock(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = e.indent + line
		}
	}
	return strings.Join(lines, "\n")
}

func (e *encoder) litStr(s string) string {
	if e.opts.CompactStrings && !needsQuoting(s) {
		return s
	}
	return quoteField(s)
}

// ============================================================
// Scalar Literals
// ============================================================

const litNull = "null"

func litBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func litInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// litFloat returns the minimal decimal form, keeping a decimal point so
// fractional numbers stay distinguishable from integers on decode.
func litFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Inf"
	}
	if math.IsInf(f, -1) {
		return "-Inf"
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ============================================================
// String Escaping
// ============================================================

var (
	intLiteral   = regexp.MustCompile(`^-?\d+$`)
	floatLiteral = regexp.MustCompile(`^-?\d*\.\d+$`)
)

// needsQuoting reports whether a bare rendering of s would either break
// the line/field structure or decode back as a different scalar type.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	// Leading braces read back as inline JSON or empty containers.
	if s[0] == '{' || s[0] == '[' {
		return true
	}
	if strings.ContainsAny(s, ",\"\n:") {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	return looksLikeScalar(s)
}

// looksLikeScalar reports whether s would be inferred as null, bool, or
// a number by the decoder.
func looksLikeScalar(s string) bool {
	switch strings.ToLower(s) {
	case "null", "true", "false":
		return true
	}
	return intLiteral.MatchString(s) || floatLiteral.MatchString(s)
}

// quoteField wraps s in double quotes, doubling internal quotes and
// replacing newlines with the two-character escape \n.
func quoteField(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			b.WriteString(`""`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
