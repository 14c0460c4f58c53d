package toon

import "strings"

// Context identifies where a payload is headed. The selector's decision
// table keys off this enumeration, never a free-form string.
type Context int

const (
	ContextGeneric Context = iota
	ContextToolResult
	ContextPrompt
	ContextConfig
)

// String returns the context name.
func (c Context) String() string {
	switch c {
	case ContextToolResult:
		return "tool-result"
	case ContextPrompt:
		return "prompt"
	case ContextConfig:
		return "config"
	default:
		return "generic"
	}
}

// ParseContext maps a context name to its Context. Unknown names fall
// back to ContextGeneric.
func ParseContext(s string) Context {
	switch s {
	case "tool-result", "tool_result":
		return ContextToolResult
	case "prompt":
		return ContextPrompt
	case "config":
		return ContextConfig
	default:
		return ContextGeneric
	}
}

// FormatMarker is the leading comment line prepended to chosen-tabular
// output. Its presence, not content sniffing, tells a caller which
// decode path to take; the decoder itself works on bare bodies too.
const FormatMarker = "// TOON format - 30-60% token reduction"

// Selector is the policy layer deciding, per usage context, whether the
// terse encoding is worth using or the plain structured fallback should
// go out instead.
type Selector struct {
	opts Options
}

// NewSelector creates a Selector encoding with the given options.
func NewSelector(opts Options) *Selector {
	return &Selector{opts: opts}
}

// ShouldUseTabular reports whether TOON pays off for v in ctx.
//
// Tool results take TOON whenever the value itself is table-shaped.
// Other contexts demand more: a direct object field holding an array
// longer than 2 that is table-shaped. Only direct fields are inspected,
// never nested structure.
func (s *Selector) ShouldUseTabular(v *Value, ctx Context) bool {
	if v == nil {
		return false
	}

	if ctx == ContextToolResult {
		return tableShaped(v)
	}

	if v.Kind() != KindObj {
		return false
	}
	for _, f := range v.objVal {
		if f.Value.Kind() == KindArr && f.Value.Len() > 2 && tableShaped(f.Value) {
			return true
		}
	}
	return false
}

// tableShaped reports whether v looks like tabular data: an array of
// length > 1 whose leading elements (up to three) are objects, or an
// object with at least one field holding such an array.
func tableShaped(v *Value) bool {
	switch v.Kind() {
	case KindArr:
		if len(v.arrVal) < 2 {
			return false
		}
		n := len(v.arrVal)
		if n > 3 {
			n = 3
		}
		for _, elem := range v.arrVal[:n] {
			if elem.Kind() != KindObj {
				return false
			}
		}
		return true

	case KindObj:
		for _, f := range v.objVal {
			if f.Value.Kind() == KindArr && f.Value.Len() > 1 && tableShaped(f.Value) {
				return true
			}
		}
		return false

	default:
		return false
	}
}

// Format renders v for ctx: marker plus TOON when selected, indented
// JSON otherwise.
func (s *Selector) Format(v *Value, ctx Context) string {
	if s.ShouldUseTabular(v, ctx) {
		return FormatMarker + "\n" + EncodeWithOptions(v, s.opts)
	}
	return string(ToJSONIndent(v))
}

// FormatToolResult renders a tool's result, tagging TOON output with the
// producing tool's name.
func (s *Selector) FormatToolResult(tool string, v *Value) string {
	out := s.Format(v, ContextToolResult)
	if strings.HasPrefix(out, FormatMarker) {
		return "// Tool: " + tool + " | Format: TOON\n" + out
	}
	return out
}

// Parse dispatches on the format marker: marked input decodes as TOON,
// unmarked input parses as JSON, and anything else comes back as a
// plain string, best-effort.
func (s *Selector) Parse(input string) (*Value, error) {
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, "//") {
		lines := strings.Split(trimmed, "\n")
		i := 0
		marked := false
		for i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), "//") {
			if strings.HasPrefix(strings.TrimSpace(lines[i]), "// TOON format") {
				marked = true
			}
			i++
		}
		if marked {
			return Decode(strings.Join(lines[i:], "\n"))
		}
	}

	if v, err := FromJSON([]byte(trimmed)); err == nil {
		return v, nil
	}
	return Str(input), nil
}
