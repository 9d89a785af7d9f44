// Package formula evaluates the closed-form biochemistry formulas behind the
// calculator page. Every function checks its domain before computing and
// never returns NaN or an infinity.
package formula

import "math"

// ReactionRate applies the Michaelis-Menten equation v = Vmax*[S] / (Km + [S]).
// The result has the units of vmax.
func ReactionRate(vmax, km, substrate float64) (float64, error) {
	if err := check(
		guard{"Vmax", vmax, ">= 0", vmax >= 0},
		guard{"Km", km, "> 0", km > 0},
		guard{"[S]", substrate, ">= 0", substrate >= 0},
	); err != nil {
		return 0, err
	}
	return finite("v", vmax*substrate/(km+substrate))
}

// Concentration applies the Beer-Lambert law solved for c: c = A / (epsilon*l).
// The result is in mol/L for epsilon in L/(mol*cm) and l in cm.
func Concentration(absorbance, epsilon, pathLength float64) (float64, error) {
	if err := check(
		guard{"A", absorbance, ">= 0", absorbance >= 0},
		guard{"epsilon", epsilon, "> 0", epsilon > 0},
		guard{"l", pathLength, "> 0", pathLength > 0},
	); err != nil {
		return 0, err
	}
	denom := epsilon * pathLength
	if !(denom > 0) || math.IsInf(denom, 0) {
		return 0, &DomainError{Param: "epsilon*l", Value: denom, Rule: "finite and > 0"}
	}
	return finite("c", absorbance/denom)
}

// SpecificGrowthRate computes mu = (ln N2 - ln N1) / (t2 - t1), per unit of t.
func SpecificGrowthRate(n1, n2, t1, t2 float64) (float64, error) {
	if err := check(
		guard{"N1", n1, "> 0", n1 > 0},
		guard{"N2", n2, "> 0", n2 > 0},
		guard{"t1", t1, "finite", true},
		guard{"t2", t2, "!= t1", t2 != t1},
	); err != nil {
		return 0, err
	}
	return finite("mu", (math.Log(n2)-math.Log(n1))/(t2-t1))
}

type guard struct {
	param string
	value float64
	rule  string
	ok    bool
}

// check reports the first failing guard. Non-finite inputs always fail.
func check(guards ...guard) error {
	for _, g := range guards {
		if math.IsNaN(g.value) || math.IsInf(g.value, 0) {
			return &DomainError{Param: g.param, Value: g.value, Rule: "finite"}
		}
		if !g.ok {
			return &DomainError{Param: g.param, Value: g.value, Rule: g.rule}
		}
	}
	return nil
}

func finite(name string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &DomainError{Param: name, Value: v, Rule: "finite"}
	}
	return v, nil
}
