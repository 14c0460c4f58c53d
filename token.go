package toon

// Token accounting. The point of the tabular form is token savings;
// these helpers let callers verify the claim for their own payloads
// before committing to a format.

// EstimateTokens approximates how many LLM tokens a text costs. Runs of
// word characters count roughly one token per four characters; every
// other non-space character counts as one. A heuristic, not a
// tokenizer: good enough to compare two renderings of the same value.
func EstimateTokens(text string) int {
	tokens := 0
	run := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			tokens += (run + 3) / 4
			run = 0
		case isWordByte(c):
			run++
		default:
			tokens += (run+3)/4 + 1
			run = 0
		}
	}
	tokens += (run + 3) / 4
	return tokens
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c >= 0x80
}

// SavingsReport compares the TOON and JSON footprint of one value.
type SavingsReport struct {
	TOONBytes  int
	JSONBytes  int
	TOONTokens int
	JSONTokens int

	// SavingsPercent is the token reduction of TOON relative to JSON;
	// negative when TOON costs more.
	SavingsPercent float64
}

// Savings renders v both ways and measures the difference.
func Savings(v *Value, opts Options) SavingsReport {
	toonText := EncodeWithOptions(v, opts)
	jsonText := ToJSON(v)

	r := SavingsReport{
		TOONBytes:  len(toonText),
		JSONBytes:  len(jsonText),
		TOONTokens: EstimateTokens(toonText),
		JSONTokens: EstimateTokens(string(jsonText)),
	}
	if r.JSONTokens > 0 {
		r.SavingsPercent = 100 * float64(r.JSONTokens-r.TOONTokens) / float64(r.JSONTokens)
	}
	return r
}
