// Package parse turns free-form mortgage questions into structured loan
// inputs. The lexer produces a flat token stream; the extractor runs a fixed
// sequence of rules over it. Neither stage ever fails: unknown input degrades
// to text tokens and missing fields stay unset.
package parse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TokenKind tags one lexical unit.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenPercent
	TokenYears
	TokenMonths
	TokenZip
	TokenKeyword
	TokenPunct
	TokenText
)

// Keyword identifies the loan-field anchor words the extractor reacts to.
type Keyword string

const (
	KeywordPrice     Keyword = "price"
	KeywordLoan      Keyword = "loan"
	KeywordDown      Keyword = "down"
	KeywordRate      Keyword = "rate"
	KeywordInsurance Keyword = "ins"
	KeywordHOA       Keyword = "hoa"
	KeywordAt        Keyword = "at"
)

// Token is one immutable lexical unit. Value is populated for TokenNumber,
// Text carries the raw lexeme (and the 5-digit code for TokenZip).
type Token struct {
	Kind    TokenKind
	Value   decimal.Decimal
	Text    string
	Keyword Keyword
}

var keywordMap = map[string]Keyword{
	"price":     KeywordPrice,
	"loan":      KeywordLoan,
	"down":      KeywordDown,
	"rate":      KeywordRate,
	"ins":       KeywordInsurance,
	"insurance": KeywordInsurance,
	"hoa":       KeywordHOA,
	"at":        KeywordAt,
}

var yearWords = map[string]bool{"y": true, "yr": true, "yrs": true, "year": true, "years": true}
var monthWords = map[string]bool{"mo": true, "mos": true, "month": true, "months": true}
var percentWords = map[string]bool{"percent": true, "pct": true}

// Tokenize scans input left to right and returns the token sequence. Input is
// lower-cased internally; callers pass raw query text. Unrecognized
// characters become text tokens rather than errors.
func Tokenize(input string) []Token {
	s := strings.ToLower(input)
	var tokens []Token

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= 'a' && c <= 'z':
			start := i
			for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
				i++
			}
			tokens = append(tokens, wordToken(s[start:i]))
		case c == '@':
			tokens = append(tokens, Token{Kind: TokenKeyword, Keyword: KeywordAt, Text: "@"})
			i++
		case c == '%':
			tokens = append(tokens, Token{Kind: TokenPercent, Text: "%"})
			i++
		case c >= '0' && c <= '9' || c == '$':
			tok, next, ok := lexNumber(s, i)
			if !ok {
				// Lone '$' with no digits behind it.
				tokens = append(tokens, Token{Kind: TokenPunct, Text: string(c)})
				i++
				break
			}
			tokens = append(tokens, tok)
			i = next
		case strings.ContainsRune(".,;:!?()-/", rune(c)):
			tokens = append(tokens, Token{Kind: TokenPunct, Text: string(c)})
			i++
		default:
			tokens = append(tokens, Token{Kind: TokenText, Text: string(c)})
			i++
		}
	}
	return tokens
}

func wordToken(word string) Token {
	if kw, ok := keywordMap[word]; ok {
		return Token{Kind: TokenKeyword, Keyword: kw, Text: word}
	}
	if yearWords[word] {
		return Token{Kind: TokenYears, Text: word}
	}
	if monthWords[word] {
		return Token{Kind: TokenMonths, Text: word}
	}
	if percentWords[word] {
		return Token{Kind: TokenPercent, Text: word}
	}
	return Token{Kind: TokenText, Text: word}
}

// lexNumber scans a numeric token starting at i: optional '$', digits with
// optional comma grouping, optional decimal part, optional k/m money suffix.
// A bare run of exactly five digits is a ZIP code, optionally carrying a +4
// extension.
func lexNumber(s string, i int) (Token, int, bool) {
	start := i
	dollar := false
	if s[i] == '$' {
		dollar = true
		i++
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return Token{}, start, false
		}
	}

	digits := make([]byte, 0, 12)
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits = append(digits, c)
			i++
			continue
		}
		// Absorb comma grouping like 400,000 but not a trailing comma.
		if c == ',' && hasThreeDigits(s, i+1) {
			i++
			continue
		}
		break
	}

	grouped := i-start > len(digits)+boolToInt(dollar)
	hasFraction := false
	if i < len(s) && s[i] == '.' && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
		hasFraction = true
		digits = append(digits, '.')
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
			i++
		}
	}

	// Money suffix: k or m not followed by more letters ("5mo" is a term,
	// not five million).
	mult := int64(1)
	if i < len(s) && (s[i] == 'k' || s[i] == 'm') && !followedByLetter(s, i+1) {
		if s[i] == 'k' {
			mult = 1_000
		} else {
			mult = 1_000_000
		}
		i++
	}

	// ZIP: exactly five bare digits, nothing money-like about them.
	if !dollar && !hasFraction && !grouped && mult == 1 && len(digits) == 5 {
		zip := string(digits)
		// Consume a +4 extension when present.
		if i < len(s) && s[i] == '-' && i+5 <= len(s) && allDigits(s[i+1:i+5]) && !isDigit(s, i+5) {
			i += 5
		}
		return Token{Kind: TokenZip, Text: zip}, i, true
	}

	value, err := decimal.NewFromString(string(digits))
	if err != nil {
		return Token{}, start, false
	}
	if mult != 1 {
		value = value.Mul(decimal.NewFromInt(mult))
	}
	return Token{Kind: TokenNumber, Value: value, Text: s[start:i]}, i, true
}

func hasThreeDigits(s string, i int) bool {
	if i+3 > len(s) {
		return false
	}
	return allDigits(s[i:i+3]) && !isDigit(s, i+3)
}

func allDigits(s string) bool {
	for j := 0; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isDigit(s string, i int) bool {
	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}

func followedByLetter(s string, i int) bool {
	return i < len(s) && s[i] >= 'a' && s[i] <= 'z'
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
