// Package toon implements TOON (Token-Oriented Object Notation), a
// compact text serialization for LLM payloads.
//
// TOON is designed to be:
//   - Token-cheap: column names appear once per table, not once per record
//   - Human-scannable: plain lines, no brackets around every value
//   - Best-effort: decoding never fails on odd scalars, it degrades to strings
//   - Round-trippable for the shapes it targets (uniform arrays of objects)
//
// # Data Model
//
// Scalars: null, bool, int, float, str
// Containers: obj (ordered, unique keys), arr
//
// # Syntax
//
// Tabular (uniform arrays of objects):
//
//	users[3]{id,name,role}:
//	  1,Alice,admin
//	  2,Bob,user
//	  3,Charlie,editor
//
// A bare uniform array drops the leading key: [3]{id,name,role}:
//
// Nested (everything else):
//
//	total: 3
//	meta:
//	  source: db
//
// Non-uniform arrays render one element per line as index: value.
//
// # Escaping
//
// A field containing a comma, a double quote, or a newline is wrapped in
// double quotes; internal quotes are doubled and newlines become the two
// characters \n. Anything else may appear bare. Quoted values always
// decode as strings.
//
// # Choosing a Format
//
// Selector decides per usage context whether TOON pays off for a value.
// Chosen-tabular output carries a leading "// TOON format" marker line so
// callers can dispatch without sniffing; the decoder itself works on bare
// bodies too.
package toon
