package units

import (
	"strconv"
	"strings"
)

// Parse converts a unit string into an expression.
//
// Terms are separated by "*" or "/"; a "/" negates the exponent of the term
// that follows it, not of the one it closes. "m/s*g" is {m:1, s:-1, g:1}.
// Repeated atoms are kept as separate terms.
func Parse(s string) (Expression, error) {
	if s == "" {
		return Expression{}, &ParseError{Input: s, Err: ErrEmptyInput}
	}

	p := parser{input: s, sign: 1, mag: 1}
	for p.pos < len(s) {
		c := s[p.pos]
		switch {
		case isDigit(c):
			if err := p.exponent(false); err != nil {
				return Expression{}, err
			}
		case c == '^':
			p.pos++
			neg := p.pos < len(s) && s[p.pos] == '-'
			if neg {
				p.pos++
			}
			if p.pos >= len(s) || !isDigit(s[p.pos]) {
				return Expression{}, p.fail(ErrMissingExponent)
			}
			if err := p.exponent(neg); err != nil {
				return Expression{}, err
			}
		case c == '*' || c == '/':
			if p.name.Len() == 0 {
				return Expression{}, p.fail(ErrEmptyUnitName)
			}
			p.emit()
			p.sign = 1
			if c == '/' {
				p.sign = -1
			}
			p.pos++
		default:
			p.name.WriteByte(c)
			p.pos++
		}
	}

	if p.name.Len() == 0 {
		if last := s[len(s)-1]; last == '*' || last == '/' {
			return Expression{}, p.fail(ErrTrailingOperator)
		}
		return Expression{}, p.fail(ErrEmptyUnitName)
	}
	p.emit()
	return Expression{terms: p.terms}, nil
}

// MustParse is like Parse but panics on a malformed unit string.
func MustParse(s string) Expression {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	input  string
	pos    int
	name   strings.Builder
	mag    int
	hasExp bool
	sign   int
	terms  []Term
}

// exponent consumes a digit run starting at p.pos.
func (p *parser) exponent(neg bool) error {
	if p.hasExp {
		return p.fail(ErrDuplicateExponent)
	}
	start := p.pos
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return &ParseError{Input: p.input, Pos: start, Err: ErrExponentRange}
	}
	if neg {
		n = -n
	}
	p.mag = n
	p.hasExp = true
	return nil
}

func (p *parser) emit() {
	p.terms = append(p.terms, NewTerm(p.name.String(), p.mag*p.sign))
	p.name.Reset()
	p.mag = 1
	p.hasExp = false
}

func (p *parser) fail(err error) *ParseError {
	return &ParseError{Input: p.input, Pos: p.pos, Err: err}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
