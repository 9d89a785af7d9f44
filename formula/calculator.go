package formula

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownParam is returned when Evaluate is given a key the calculator
// does not take.
var ErrUnknownParam = errors.New("unknown parameter")

// Values maps parameter keys to input values.
type Values map[string]float64

// Param describes one numeric input of a calculator.
type Param struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
}

// Calculator is a formula plus the inputs and output format the calculator
// page shows for it.
type Calculator struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Heading     string  `json:"heading"`
	Equation    string  `json:"equation"` // LaTeX
	Action      string  `json:"action"`   // button label
	ResultLabel string  `json:"resultLabel"`
	ResultUnit  string  `json:"resultUnit"`
	Precision   int     `json:"precision"`
	Params      []Param `json:"params"`

	eval func(Values) (float64, error)
}

// Result is one evaluated calculation.
type Result struct {
	Calculator string  `json:"calculator"`
	Inputs     Values  `json:"inputs"`
	Value      float64 `json:"value"`
	Formatted  string  `json:"formatted"`
}

// Calculators returns the calculators in menu order.
func Calculators() []Calculator {
	return []Calculator{
		{
			ID:          "michaelis-menten",
			Name:        "Michaelis–Menten Enzyme Kinetics",
			Heading:     "Michaelis–Menten Equation",
			Equation:    `v = \frac{V_{max}[S]}{K_m + [S]}`,
			Action:      "Calculate Reaction Rate",
			ResultLabel: "Reaction Rate (v)",
			ResultUnit:  "µmol/min",
			Precision:   2,
			Params: []Param{
				{Key: "vmax", Label: "Vmax (µmol/min)", Default: 100, Min: 0},
				{Key: "km", Label: "Km (mM)", Default: 5, Min: 0.01},
				{Key: "substrate", Label: "Substrate Concentration [S] (mM)", Default: 10, Min: 0},
			},
			eval: func(v Values) (float64, error) {
				return ReactionRate(v["vmax"], v["km"], v["substrate"])
			},
		},
		{
			ID:          "beer-lambert",
			Name:        "Beer–Lambert Law",
			Heading:     "Beer–Lambert Law",
			Equation:    `A = \varepsilon \cdot l \cdot c`,
			Action:      "Calculate Concentration",
			ResultLabel: "Concentration (c)",
			ResultUnit:  "mol/L",
			Precision:   6,
			Params: []Param{
				{Key: "absorbance", Label: "Absorbance (A)", Default: 0.75, Min: 0},
				{Key: "path_length", Label: "Path Length (cm)", Default: 1.0, Min: 0.01},
				{Key: "epsilon", Label: "Molar Absorptivity ε (L·mol⁻¹·cm⁻¹)", Default: 15000, Min: 0.01},
			},
			eval: func(v Values) (float64, error) {
				return Concentration(v["absorbance"], v["epsilon"], v["path_length"])
			},
		},
		{
			ID:          "growth-rate",
			Name:        "Bacterial Growth Rate",
			Heading:     "Bacterial Specific Growth Rate",
			Equation:    `\mu = \frac{\ln N_2 - \ln N_1}{t_2 - t_1}`,
			Action:      "Calculate Growth Rate",
			ResultLabel: "Specific Growth Rate (μ)",
			ResultUnit:  "h⁻¹",
			Precision:   3,
			Params: []Param{
				{Key: "n1", Label: "Initial Cell Density (N₁)", Default: 0.1, Min: 0.01},
				{Key: "t1", Label: "Initial Time t₁ (hours)", Default: 0, Min: 0},
				{Key: "n2", Label: "Final Cell Density (N₂)", Default: 0.8, Min: 0.01},
				{Key: "t2", Label: "Final Time t₂ (hours)", Default: 6, Min: 0.01},
			},
			eval: func(v Values) (float64, error) {
				return SpecificGrowthRate(v["n1"], v["n2"], v["t1"], v["t2"])
			},
		},
	}
}

// Lookup finds a calculator by ID or by name, ignoring case.
func Lookup(name string) (Calculator, bool) {
	for _, c := range Calculators() {
		if strings.EqualFold(c.ID, name) || strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Calculator{}, false
}

// Defaults returns the default input values.
func (c Calculator) Defaults() Values {
	v := make(Values, len(c.Params))
	for _, p := range c.Params {
		v[p.Key] = p.Default
	}
	return v
}

// Evaluate fills missing inputs with defaults, applies the input minimums,
// then runs the formula.
func (c Calculator) Evaluate(in Values) (*Result, error) {
	values := c.Defaults()
	var unknown []string
	for k, v := range in {
		if _, ok := values[k]; !ok {
			unknown = append(unknown, k)
			continue
		}
		values[k] = v
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w for %s: %s", ErrUnknownParam, c.ID, strings.Join(unknown, ", "))
	}

	for _, p := range c.Params {
		if values[p.Key] < p.Min {
			return nil, &DomainError{Param: p.Label, Value: values[p.Key], Rule: fmt.Sprintf(">= %v", p.Min)}
		}
	}

	v, err := c.eval(values)
	if err != nil {
		return nil, err
	}
	return &Result{
		Calculator: c.ID,
		Inputs:     values,
		Value:      v,
		Formatted:  c.Format(v),
	}, nil
}

// Format renders a result the way the calculator page shows it, e.g.
// "Reaction Rate (v): 66.67 µmol/min".
func (c Calculator) Format(v float64) string {
	return fmt.Sprintf("%s: %.*f %s", c.ResultLabel, c.Precision, v, c.ResultUnit)
}
