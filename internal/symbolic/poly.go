// Package symbolic implements the canonical polynomial representation
// used whenever evaluation encounters a free variable (spec §4.S): a
// monomial-key -> scalar-coefficient map, kept distribution-free and
// with zero coefficients always dropped.
package symbolic

import (
	"fmt"
	"sort"
	"strings"

	"computorv2/internal/evalerr"
	"computorv2/internal/value"
)

// Term is one (variable, positive exponent) pair inside a monomial key.
type Term struct {
	Var string
	Exp int
}

// Monomial is a sorted sequence of Terms; nil/empty denotes the
// constant monomial (spec §3).
type Monomial []Term

// key renders a canonical, comparable string for map storage — also
// the sort key, since ascending variable order is the invariant.
func (m Monomial) key() string {
	if len(m) == 0 {
		return ""
	}
	parts := make([]string, len(m))
	for i, t := range m {
		parts[i] = fmt.Sprintf("%s^%d", t.Var, t.Exp)
	}
	return strings.Join(parts, "*")
}

func (m Monomial) totalDegree() int {
	d := 0
	for _, t := range m {
		d += t.Exp
	}
	return d
}

// mulMonomial merges two monomials, adding exponents of shared
// variables and dropping any that cancel to zero.
func mulMonomial(a, b Monomial) Monomial {
	exps := map[string]int{}
	for _, t := range a {
		exps[t.Var] += t.Exp
	}
	for _, t := range b {
		exps[t.Var] += t.Exp
	}
	out := make(Monomial, 0, len(exps))
	for v, e := range exps {
		if e != 0 {
			out = append(out, Term{Var: v, Exp: e})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var < out[j].Var })
	return out
}

// PolyExpr is the canonical symbolic form: monomial key -> nonzero
// scalar coefficient (spec §3). It implements value.Value so it can be
// carried as the Symbolic variant of a runtime Value without
// value importing this package.
type PolyExpr struct {
	monos  map[string]Monomial
	coeffs map[string]value.Value
}

func empty() *PolyExpr {
	return &PolyExpr{monos: map[string]Monomial{}, coeffs: map[string]value.Value{}}
}

func (*PolyExpr) ValueKind() value.Kind { return value.KindSymbolic }

// FromScalar lifts a plain scalar into a constant polynomial.
func FromScalar(v value.Value) *PolyExpr {
	p := empty()
	if isZeroScalar(v) {
		return p
	}
	p.monos[""] = nil
	p.coeffs[""] = v
	return p
}

// FromVar lifts a free identifier into the monomial {var^1: 1}.
func FromVar(name string) *PolyExpr {
	p := empty()
	key := Monomial{{Var: name, Exp: 1}}.key()
	p.monos[key] = Monomial{{Var: name, Exp: 1}}
	p.coeffs[key] = value.RationalFromInt64(1)
	return p
}

func isZeroScalar(v value.Value) bool {
	switch x := v.(type) {
	case *value.Rational:
		return x.IsZero()
	case *value.Complex:
		return x.Re.IsZero() && x.Im.IsZero()
	}
	return false
}

// setTerm stores a coefficient for a monomial, dropping it entirely if
// the coefficient reduces to zero (spec invariant: no zero
// coefficients stored).
func (p *PolyExpr) setTerm(m Monomial, c value.Value) {
	key := m.key()
	if isZeroScalar(c) {
		delete(p.coeffs, key)
		delete(p.monos, key)
		return
	}
	p.coeffs[key] = c
	p.monos[key] = m
}

// Add merges monomial coefficient maps (spec §4.Q).
func Add(a, b *PolyExpr) (*PolyExpr, error) {
	out := empty()
	for k, m := range a.monos {
		out.monos[k] = m
		out.coeffs[k] = a.coeffs[k]
	}
	for k, m := range b.monos {
		if existing, ok := out.coeffs[k]; ok {
			sum, err := value.Add(existing, b.coeffs[k])
			if err != nil {
				return nil, err
			}
			out.setTerm(m, sum)
		} else {
			out.setTerm(m, b.coeffs[k])
		}
	}
	return out, nil
}

// Sub adds a to the negation of b.
func Sub(a, b *PolyExpr) (*PolyExpr, error) {
	nb, err := Neg(b)
	if err != nil {
		return nil, err
	}
	return Add(a, nb)
}

// Neg negates every coefficient.
func Neg(a *PolyExpr) (*PolyExpr, error) {
	out := empty()
	for k, m := range a.monos {
		neg, err := value.Neg(a.coeffs[k])
		if err != nil {
			return nil, err
		}
		out.setTerm(m, neg)
	}
	return out, nil
}

// Mul distributes pairwise and merges like monomials (spec §4.Q).
func Mul(a, b *PolyExpr) (*PolyExpr, error) {
	out := empty()
	for ka, ma := range a.monos {
		for kb, mb := range b.monos {
			coeff, err := value.Mul(a.coeffs[ka], b.coeffs[kb])
			if err != nil {
				return nil, err
			}
			merged := mulMonomial(ma, mb)
			mkey := merged.key()
			if existing, ok := out.coeffs[mkey]; ok {
				coeff, err = value.Add(existing, coeff)
				if err != nil {
					return nil, err
				}
			}
			out.setTerm(merged, coeff)
		}
	}
	return out, nil
}

// Pow computes p^n for a non-negative integer n via repeated
// multiplication (spec §4.Q: "p^0 = 1", "p^n ... by n-1
// multiplications using the product rule").
func Pow(p *PolyExpr, n int) (*PolyExpr, error) {
	if n < 0 {
		return nil, &evalerr.MathError{Msg: "symbolic exponent unsupported"}
	}
	if n == 0 {
		return FromScalar(value.RationalFromInt64(1)), nil
	}
	result := p
	var err error
	for i := 1; i < n; i++ {
		result, err = Mul(result, p)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// DivScalar divides every coefficient by a constant scalar polynomial
// divisor, per spec §4.Q's Div rule: only supported when the divisor
// reduces to a non-zero scalar.
func DivScalar(a *PolyExpr, divisor value.Value) (*PolyExpr, error) {
	out := empty()
	for k, m := range a.monos {
		q, err := value.Div(a.coeffs[k], divisor)
		if err != nil {
			return nil, err
		}
		out.setTerm(m, q)
	}
	return out, nil
}

// AsConstant reports whether p is the zero polynomial or a single
// constant term, returning the scalar value in the latter case.
func (p *PolyExpr) AsConstant() (value.Value, bool) {
	if len(p.coeffs) == 0 {
		return value.RationalFromInt64(0), true
	}
	if len(p.coeffs) == 1 {
		if c, ok := p.coeffs[""]; ok {
			return c, true
		}
	}
	return nil, false
}

// Collapse returns a plain scalar Value when p is constant, or p
// itself (as a Value) otherwise — the boundary between symbolic and
// numeric representations that spec §3 calls out.
func Collapse(p *PolyExpr) value.Value {
	if c, ok := p.AsConstant(); ok {
		return c
	}
	return p
}

// Vars returns the distinct free variable names appearing in p, sorted.
func (p *PolyExpr) Vars() []string {
	set := map[string]bool{}
	for _, m := range p.monos {
		for _, t := range m {
			set[t.Var] = true
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// IsZero reports whether p has no terms at all.
func (p *PolyExpr) IsZero() bool { return len(p.coeffs) == 0 }

// term pairs a monomial with its coefficient.
type term struct {
	Mono  Monomial
	Coeff value.Value
}

// terms returns (monomial, coefficient) pairs sorted by descending
// total degree then lexicographically by variable name, the order
// spec §4.F's Formatter wants.
func (p *PolyExpr) terms() []term {
	out := make([]term, 0, len(p.monos))
	for k, m := range p.monos {
		out = append(out, term{Mono: m, Coeff: p.coeffs[k]})
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].Mono.totalDegree(), out[j].Mono.totalDegree()
		if di != dj {
			return di > dj
		}
		return out[i].Mono.key() < out[j].Mono.key()
	})
	return out
}
