package parse

import "github.com/shopspring/decimal"

// keywordValueRule assigns the next number after each price/loan/ins/hoa
// keyword to the matching field. Later mentions overwrite earlier ones.
type keywordValueRule struct{}

func (keywordValueRule) Name() string { return "keyword_values" }

func (keywordValueRule) Apply(st *extractState) {
	for i, tok := range st.tokens {
		if tok.Kind != TokenKeyword {
			continue
		}
		var target **decimal.Decimal
		switch tok.Keyword {
		case KeywordPrice:
			target = &st.out.Price
		case KeywordLoan:
			target = &st.out.LoanAmount
		case KeywordInsurance:
			target = &st.out.MonthlyIns
		case KeywordHOA:
			target = &st.out.MonthlyHOA
		default:
			continue
		}
		j := st.nextSignificant(i + 1)
		if j < 0 || st.tokens[j].Kind != TokenNumber {
			continue
		}
		v := st.tokens[j].Value
		*target = &v
		st.claimed[i] = true
		st.claimed[j] = true
	}
}

// zipRule records ZIP tokens; the last one in the query wins.
type zipRule struct{}

func (zipRule) Name() string { return "zip" }

func (zipRule) Apply(st *extractState) {
	for i, tok := range st.tokens {
		if tok.Kind == TokenZip {
			st.out.Zip = tok.Text
			st.claimed[i] = true
		}
	}
}

// downPercentRule recognizes "down 20%" and "20% down". A value over 100 is
// treated as a basis-point style typo and divided by 100.
type downPercentRule struct{}

func (downPercentRule) Name() string { return "down_percent" }

func (r downPercentRule) Apply(st *extractState) {
	for i, tok := range st.tokens {
		if tok.Kind != TokenKeyword || tok.Keyword != KeywordDown || st.claimed[i] {
			continue
		}
		// Forward form: down <NUM> <percent>.
		if j := st.nextSignificant(i + 1); j >= 0 && st.tokens[j].Kind == TokenNumber && !st.claimed[j] {
			if k := st.nextSignificant(j + 1); k >= 0 && st.tokens[k].Kind == TokenPercent {
				r.set(st, st.tokens[j].Value, i, j, k)
				return
			}
		}
		// Backward form: <NUM> <percent> down.
		if j, k := r.percentPairBefore(st, i); j >= 0 {
			r.set(st, st.tokens[j].Value, j, k, i)
			return
		}
	}
}

// percentPairBefore finds a NUM-percent pair immediately preceding the down
// keyword at index i, skipping punctuation and text.
func (downPercentRule) percentPairBefore(st *extractState, i int) (numIdx, pctIdx int) {
	k := -1
	for j := i - 1; j >= 0; j-- {
		kind := st.tokens[j].Kind
		if kind == TokenPunct || kind == TokenText {
			continue
		}
		if k == -1 {
			if kind != TokenPercent {
				return -1, -1
			}
			k = j
			continue
		}
		if kind == TokenNumber && !st.claimed[j] {
			return j, k
		}
		return -1, -1
	}
	return -1, -1
}

func (downPercentRule) set(st *extractState, v decimal.Decimal, idxs ...int) {
	if v.GreaterThan(decimal.NewFromInt(100)) {
		v = v.Div(decimal.NewFromInt(100))
	}
	st.out.DownPercent = &v
	for _, i := range idxs {
		st.claimed[i] = true
	}
}

// termRule sets the term from a number followed by a year or month marker.
type termRule struct{}

func (termRule) Name() string { return "term" }

func (termRule) Apply(st *extractState) {
	for i, tok := range st.tokens {
		if tok.Kind != TokenNumber || st.claimed[i] {
			continue
		}
		j := st.nextSignificant(i + 1)
		if j < 0 {
			continue
		}
		var months int
		switch st.tokens[j].Kind {
		case TokenYears:
			months = int(tok.Value.IntPart()) * 12
		case TokenMonths:
			months = int(tok.Value.IntPart())
		default:
			continue
		}
		if months <= 0 {
			continue
		}
		st.out.TermMonths = &months
		st.claimed[i] = true
		st.claimed[j] = true
		st.termNumIdx = i
		return
	}
}

// rateRule recognizes the three explicit rate forms in priority order:
// number-with-percent-marker, "rate <NUM>", and "at <NUM>" when the number
// is not a term count. A rate set by an earlier form is never overwritten.
type rateRule struct{}

func (rateRule) Name() string { return "rate" }

func (r rateRule) Apply(st *extractState) {
	if r.percentForm(st) {
		return
	}
	if r.keywordForm(st, KeywordRate) {
		return
	}
	r.atForm(st)
}

func (rateRule) percentForm(st *extractState) bool {
	for i, tok := range st.tokens {
		if tok.Kind != TokenNumber || st.claimed[i] {
			continue
		}
		j := st.nextSignificant(i + 1)
		if j >= 0 && st.tokens[j].Kind == TokenPercent {
			st.setRate(i, tok.Value)
			st.claimed[j] = true
			return true
		}
	}
	return false
}

func (rateRule) keywordForm(st *extractState, kw Keyword) bool {
	for i, tok := range st.tokens {
		if tok.Kind != TokenKeyword || tok.Keyword != kw {
			continue
		}
		j := st.nextSignificant(i + 1)
		if j >= 0 && st.tokens[j].Kind == TokenNumber && !st.claimed[j] {
			st.setRate(j, st.tokens[j].Value)
			st.claimed[i] = true
			return true
		}
	}
	return false
}

// atForm handles "at 6.5" while refusing "at 30 years", where the number is
// a term count rather than a rate.
func (rateRule) atForm(st *extractState) bool {
	for i, tok := range st.tokens {
		if tok.Kind != TokenKeyword || tok.Keyword != KeywordAt {
			continue
		}
		j := st.nextSignificant(i + 1)
		if j < 0 || st.tokens[j].Kind != TokenNumber || st.claimed[j] {
			continue
		}
		if k := st.nextSignificant(j + 1); k >= 0 {
			if st.tokens[k].Kind == TokenYears || st.tokens[k].Kind == TokenMonths {
				continue
			}
		}
		st.setRate(j, st.tokens[j].Value)
		st.claimed[i] = true
		return true
	}
	return false
}

// deriveLoanRule fills the loan amount from price and down payment.
type deriveLoanRule struct{}

func (deriveLoanRule) Name() string { return "derive_loan" }

func (deriveLoanRule) Apply(st *extractState) {
	if st.out.LoanAmount != nil || st.out.Price == nil || st.out.DownPercent == nil {
		return
	}
	hundred := decimal.NewFromInt(100)
	v := st.out.Price.Mul(hundred.Sub(*st.out.DownPercent)).Div(hundred)
	st.out.LoanAmount = &v
}

// bareLoanRule handles queries like "400000 at 6.5": with no price or loan
// stated, the number before "at" is the loan amount.
type bareLoanRule struct{}

func (bareLoanRule) Name() string { return "bare_loan" }

func (bareLoanRule) Apply(st *extractState) {
	if st.out.LoanAmount != nil || st.out.Price != nil {
		return
	}
	for i, tok := range st.tokens {
		if tok.Kind != TokenNumber || st.claimed[i] {
			continue
		}
		j := st.nextSignificant(i + 1)
		if j < 0 || st.tokens[j].Kind != TokenKeyword || st.tokens[j].Keyword != KeywordAt {
			continue
		}
		k := st.nextSignificant(j + 1)
		if k < 0 || st.tokens[k].Kind != TokenNumber {
			continue
		}
		v := tok.Value
		st.out.LoanAmount = &v
		st.claimed[i] = true
		return
	}
}

// rateNearTermRule searches leftward from the term for the nearest
// unclaimed standalone number in plausible rate range.
type rateNearTermRule struct{}

func (rateNearTermRule) Name() string { return "rate_near_term" }

func (rateNearTermRule) Apply(st *extractState) {
	if st.out.RatePct != nil || st.out.TermMonths == nil || st.termNumIdx < 0 {
		return
	}
	for i := st.termNumIdx - 1; i >= 0; i-- {
		tok := st.tokens[i]
		if tok.Kind != TokenNumber || st.claimed[i] || !inRateRange(tok.Value) {
			continue
		}
		st.setRate(i, tok.Value)
		return
	}
}

// soleRateRule is the last-resort rate pass: with price, down payment, and
// term all known, a single remaining rate-shaped number is taken as the
// rate. Zero or multiple candidates mean the input is ambiguous and the
// field stays unresolved.
type soleRateRule struct{}

func (soleRateRule) Name() string { return "sole_rate" }

func (soleRateRule) Apply(st *extractState) {
	if st.out.RatePct != nil || st.out.Price == nil || st.out.DownPercent == nil || st.out.TermMonths == nil {
		return
	}
	candidate := -1
	for i, tok := range st.tokens {
		if tok.Kind != TokenNumber || st.claimed[i] {
			continue
		}
		if !inRateRange(tok.Value) || zipShaped(tok.Value) {
			continue
		}
		if candidate >= 0 {
			return // ambiguous: decline to guess
		}
		candidate = i
	}
	if candidate >= 0 {
		st.setRate(candidate, st.tokens[candidate].Value)
	}
}

// defaultsRule applies the configured display defaults to fields the query
// never mentioned.
type defaultsRule struct{}

func (defaultsRule) Name() string { return "defaults" }

func (defaultsRule) Apply(st *extractState) {
	if st.out.MonthlyIns == nil {
		v := st.defaults.MonthlyIns
		st.out.MonthlyIns = &v
	}
	if st.out.MonthlyHOA == nil {
		v := st.defaults.MonthlyHOA
		st.out.MonthlyHOA = &v
	}
}
