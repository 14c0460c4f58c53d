package toon

import (
	"strconv"
	"strings"
)

// Tabular rendering: header + CSV-like rows. Column names appear once,
// which is where the token savings come from.
//
//	users[2]{id,name}:
//	  1,Alice
//	  2,Bob

// tabularizable reports whether rows can take the tabular path: the
// first row must be an object (it defines the columns) and every object
// row must hold only scalar values, so each row fits on one line.
func tabularizable(rows []*Value) bool {
	if len(rows) == 0 || rows[0].Kind() != KindObj {
		return false
	}
	for _, row := range rows {
		if row.Kind() != KindObj {
			continue
		}
		for _, f := range row.objVal {
			switch f.Value.Kind() {
			case KindObj, KindArr:
				return false
			}
		}
	}
	return true
}

// encodeTabular renders rows under a <key>[N]{cols}: header. An empty
// key yields the bare-array form [N]{cols}:. Column order comes from the
// first row's field order; fields missing from a later row render as
// empty strings. Non-object rows are skipped, so the declared row count
// is informational only.
func encodeTabular(key string, rows []*Value) string {
	columns := rows[0].Keys()

	var b strings.Builder
	b.WriteString(key)
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(len(rows)))
	b.WriteString("]{")
	b.WriteString(strings.Join(columns, ","))
	b.WriteString("}:")

	for _, row := range rows {
		if row.Kind() != KindObj {
			continue
		}
		b.WriteString("\n  ")
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(cellLiteral(row.Get(col)))
		}
	}

	return b.String()
}

// cellLiteral renders one field value for a row line. Missing fields
// (nil) become the empty string, not "null".
func cellLiteral(v *Value) string {
	if v == nil {
		return ""
	}
	switch v.kind {
	case KindNull:
		return litNull
	case KindBool:
		return litBool(v.boolVal)
	case KindInt:
		return litInt(v.intVal)
	case KindFloat:
		return litFloat(v.floatVal)
	case KindStr:
		if needsQuoting(v.strVal) {
			return quoteField(v.strVal)
		}
		return v.strVal
	default:
		// Containers never reach here; tabularizable rejects them.
		return litNull
	}
}
