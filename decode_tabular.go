package toon

import (
	"regexp"
	"strconv"
	"strings"
)

// Header grammar: <optional-key>[<N>]{<c1>,<c2>,...}:
// No spaces around the delimiters; an empty key means a bare array.
var tabularHeaderPattern = regexp.MustCompile(`^([^\[\]{}]*)\[(\d+)\]\{([^{}]*)\}:$`)

// isTabularHeader is the cheap detection test: both bracket pairs
// present and the line ends with a colon. Detection is deliberately
// loose; a detected header that then fails the grammar is malformed
// input rather than a key/value line.
func isTabularHeader(line string) bool {
	return strings.Contains(line, "[") && strings.Contains(line, "]") &&
		strings.Contains(line, "{") && strings.Contains(line, "}") &&
		strings.HasSuffix(line, ":")
}

// decodeTabular parses a tabular block: header line, then one row per
// non-empty line. The declared row count is informational only; the
// actual count is the number of row lines present.
func decodeTabular(lines []string) (*Value, error) {
	idx := 0
	for idx < len(lines) && strings.TrimSpace(lines[idx]) == "" {
		idx++
	}
	header := strings.TrimSpace(lines[idx])

	m := tabularHeaderPattern.FindStringSubmatch(header)
	if m == nil {
		return nil, &MalformedInputError{Message: "malformed tabular header", Line: idx + 1}
	}

	key := strings.TrimSpace(m[1])
	if _, err := strconv.Atoi(m[2]); err != nil {
		return nil, &MalformedInputError{Message: "unparsable row count in tabular header", Line: idx + 1}
	}
	if strings.TrimSpace(m[3]) == "" {
		return nil, &MalformedInputError{Message: "empty column list in tabular header", Line: idx + 1}
	}

	columns := strings.Split(m[3], ",")
	for i := range columns {
		columns[i] = strings.TrimSpace(columns[i])
	}

	var rows []*Value
	for _, raw := range lines[idx+1:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		cells := splitRow(line)
		fields := make([]Field, len(columns))
		for i, col := range columns {
			var cell rowCell
			if i < len(cells) {
				cell = cells[i]
			}
			fields[i] = Field{Key: col, Value: cellValue(cell)}
		}
		rows = append(rows, Obj(fields...))
	}

	arr := Arr(rows...)
	if key != "" {
		return Obj(F(key, arr)), nil
	}
	return arr, nil
}

// rowCell is one field of a row line. Quoted cells skip type inference.
type rowCell struct {
	text   string
	quoted bool
}

// splitRow splits a row on commas while respecting the quoting rule: a
// quote toggles a mode in which commas are literal, a doubled quote is a
// literal quote, and \n is a newline.
func splitRow(line string) []rowCell {
	var cells []rowCell
	var b strings.Builder
	quoted := false
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		if inQuotes {
			switch {
			case c == '"' && i+1 < len(line) && line[i+1] == '"':
				b.WriteByte('"')
				i++
			case c == '"':
				inQuotes = false
			case c == '\\' && i+1 < len(line) && line[i+1] == 'n':
				b.WriteByte('\n')
				i++
			default:
				b.WriteByte(c)
			}
			continue
		}

		switch c {
		case '"':
			inQuotes = true
			quoted = true
		case ',':
			cells = append(cells, rowCell{text: b.String(), quoted: quoted})
			b.Reset()
			quoted = false
		default:
			b.WriteByte(c)
		}
	}
	cells = append(cells, rowCell{text: b.String(), quoted: quoted})

	return cells
}

func cellValue(c rowCell) *Value {
	if c.quoted {
		return Str(c.text)
	}
	return inferScalar(c.text)
}
