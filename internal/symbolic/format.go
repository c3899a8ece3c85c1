package symbolic

import (
	"fmt"
	"strings"

	"computorv2/internal/value"
)

// String renders the canonical polynomial form per spec §4.F: terms
// sorted by descending total degree then lexicographically on
// variables; coefficient 1 elided except for the constant monomial.
func (p *PolyExpr) String() string {
	terms := p.terms()
	if len(terms) == 0 {
		return "0"
	}

	var sb strings.Builder
	for i, t := range terms {
		s := formatTerm(t)
		if i == 0 {
			sb.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func formatTerm(t term) string {
	monoStr := formatMonomial(t.Mono)
	coeffStr := t.Coeff.String()

	if monoStr == "" {
		return coeffStr // constant monomial always shows its coefficient
	}

	switch coeffStr {
	case "1":
		return monoStr
	case "-1":
		return "-" + monoStr
	default:
		return fmt.Sprintf("%s * %s", coeffStr, monoStr)
	}
}

func formatMonomial(m Monomial) string {
	parts := make([]string, len(m))
	for i, t := range m {
		if t.Exp == 1 {
			parts[i] = t.Var
		} else {
			parts[i] = fmt.Sprintf("%s^%d", t.Var, t.Exp)
		}
	}
	return strings.Join(parts, " * ")
}

// SingleVarCoeffs extracts the constant, linear, and quadratic
// coefficients of p when p is a polynomial in at most one variable of
// degree <= 2 (spec §4.R). ok is false when p involves more than one
// variable or a higher-degree/non-integer monomial.
func SingleVarCoeffs(p *PolyExpr) (varName string, a, b, c value.Value, ok bool) {
	a = value.RationalFromInt64(0)
	b = value.RationalFromInt64(0)
	c = value.RationalFromInt64(0)

	for _, t := range p.terms() {
		switch len(t.Mono) {
		case 0:
			c = t.Coeff
		case 1:
			v := t.Mono[0]
			if varName == "" {
				varName = v.Var
			} else if varName != v.Var {
				return "", nil, nil, nil, false
			}
			switch v.Exp {
			case 1:
				b = t.Coeff
			case 2:
				a = t.Coeff
			default:
				return "", nil, nil, nil, false
			}
		default:
			return "", nil, nil, nil, false
		}
	}
	if varName == "" {
		varName = "x" // degree-0 polynomial: variable name is immaterial
	}
	return varName, a, b, c, true
}
