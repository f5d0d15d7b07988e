package parse

import (
	"github.com/hearthlab/mortcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// extractState carries the token stream, the record under construction, and
// the claimed-token bookkeeping that keeps later fallback rules from reusing
// a number an earlier rule already consumed.
type extractState struct {
	tokens   []Token
	out      domain.LoanInputs
	defaults domain.Defaults
	claimed  []bool

	// Index of the NUM token that set the term, -1 when the term did not
	// come from the token stream. Rate fallbacks key off it.
	termNumIdx int
}

// extractRule is one extraction pass. Rules run in the declared order of
// extractRules; each is a pure scan over the stream plus claimed-set updates.
type extractRule interface {
	Name() string
	Apply(st *extractState)
}

// extractRules is the full rule sequence. Order is load-bearing: anchored
// rules claim their numbers before the positional fallbacks go hunting, and
// the fallbacks themselves run most-specific first.
var extractRules = []extractRule{
	keywordValueRule{},
	zipRule{},
	downPercentRule{},
	termRule{},
	rateRule{},
	deriveLoanRule{},
	bareLoanRule{},
	rateNearTermRule{},
	soleRateRule{},
	defaultsRule{},
}

// Extract runs the rule sequence over tokens and returns a best-effort
// partial record. It never fails; the caller judges sufficiency.
func Extract(tokens []Token, defaults domain.Defaults) domain.LoanInputs {
	st := &extractState{
		tokens:     tokens,
		defaults:   defaults,
		claimed:    make([]bool, len(tokens)),
		termNumIdx: -1,
	}
	for _, rule := range extractRules {
		rule.Apply(st)
	}
	return st.out
}

// ParseQuery tokenizes input and extracts loan inputs in one call.
func ParseQuery(input string, defaults domain.Defaults) domain.LoanInputs {
	return Extract(Tokenize(input), defaults)
}

// nextSignificant returns the index of the first token at or after i that is
// not punctuation or free text, or -1.
func (st *extractState) nextSignificant(i int) int {
	for ; i < len(st.tokens); i++ {
		k := st.tokens[i].Kind
		if k != TokenPunct && k != TokenText {
			return i
		}
	}
	return -1
}

func (st *extractState) setRate(idx int, v decimal.Decimal) {
	r := normalizeRatePct(v)
	st.out.RatePct = &r
	if idx >= 0 {
		st.claimed[idx] = true
	}
}

// normalizeRatePct maps decimal-fraction rates (0.0625) to percentage form
// (6.25). Anything above 1 is already a percentage.
func normalizeRatePct(v decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if v.IsPositive() && v.LessThanOrEqual(one) {
		return v.Mul(decimal.NewFromInt(100))
	}
	return v
}

var rateFloor = decimal.NewFromFloat(0.1)
var rateCeil = decimal.NewFromInt(25)

// inRateRange reports whether v looks like a plausible quoted rate.
func inRateRange(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(rateFloor) && v.LessThanOrEqual(rateCeil)
}

// zipShaped reports whether v is a bare five-digit integer. The lexer emits
// those as ZIP tokens, but a money-suffixed or grouped number can still land
// in the range, and the sole-candidate fallback must not mistake it for a
// rate.
func zipShaped(v decimal.Decimal) bool {
	if !v.Equal(v.Truncate(0)) {
		return false
	}
	n := v.IntPart()
	return n >= 10000 && n <= 99999
}
