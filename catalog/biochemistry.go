package catalog

import (
	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/schema"
)

type enzymeKinetics struct {
	Enzyme    string
	Substrate float64 // mM
	Rate      float64 // µmol/min
}

type protein struct {
	Name             string
	MolecularWeight  float64 // kDa
	IsoelectricPoint float64
}

type growthSample struct {
	Hours          float64
	OpticalDensity float64 // OD600
	Temperature    float64 // °C
}

var enzymeRows = []enzymeKinetics{
	{"Amylase", 1, 5.1},
	{"Catalase", 2, 9.3},
	{"Lipase", 3, 12.7},
	{"Protease", 4, 14.9},
	{"Urease", 5, 15.2},
}

var proteinRows = []protein{
	{"Hemoglobin", 64.5, 6.8},
	{"Albumin", 66.5, 4.7},
	{"Insulin", 5.8, 5.3},
	{"Keratin", 54.0, 7.0},
	{"Collagen", 300.0, 6.5},
}

var growthRows = []growthSample{
	{0, 0.05, 37},
	{2, 0.18, 37},
	{4, 0.52, 37},
	{6, 0.89, 37},
	{8, 1.10, 37},
}

func biochemistryEntries() []*Entry {
	enzymes := &Entry{
		ID:      "enzyme-kinetics",
		Name:    "Enzyme Kinetics",
		Heading: "Enzyme Kinetics Data",
		Schema: schema.Build("Enzyme Kinetics",
			schema.Text("Enzyme"),
			schema.Number("Substrate Concentration (mM)"),
			schema.Number("Reaction Rate (µmol/min)"),
		),
		View: engine.NewDomainAdapter[enzymeKinetics]().
			Dimension("enzyme", func(r enzymeKinetics) string { return r.Enzyme }).
			Measure("substrate_concentration", func(r enzymeKinetics) float64 { return r.Substrate }).
			Measure("reaction_rate", func(r enzymeKinetics) float64 { return r.Rate }).
			Bind(enzymeRows),
		FilterColumns: []string{"reaction_rate"},
		ChartX:        "substrate_concentration",
		ChartY:        "reaction_rate",
		ChartKind:     "line",
		ChartTitle:    "Reaction Rate (µmol/min) vs Substrate Concentration (mM)",
	}

	proteins := &Entry{
		ID:      "protein-characterization",
		Name:    "Protein Characterization",
		Heading: "Protein Characterization Data",
		Schema: schema.Build("Protein Characterization",
			schema.Text("Protein"),
			schema.Number("Molecular Weight (kDa)"),
			schema.Number("Isoelectric Point (pI)"),
		),
		View: engine.NewDomainAdapter[protein]().
			Dimension("protein", func(r protein) string { return r.Name }).
			Measure("molecular_weight", func(r protein) float64 { return r.MolecularWeight }).
			Measure("isoelectric_point", func(r protein) float64 { return r.IsoelectricPoint }).
			Bind(proteinRows),
		FilterColumns: []string{"isoelectric_point"},
		ChartX:        "isoelectric_point",
		ChartY:        "molecular_weight",
		ChartKind:     "line",
		ChartTitle:    "Isoelectric Point (pI) vs Molecular Weight (kDa)",
	}

	growth := &Entry{
		ID:      "bacterial-growth",
		Name:    "Bacterial Growth Data",
		Heading: "Bacterial Growth Data",
		Schema: schema.Build("Bacterial Growth Data",
			schema.Number("Time (hours)"),
			schema.Number("Optical Density (OD600)"),
			schema.Number("Temperature (°C)"),
		),
		View: engine.NewDomainAdapter[growthSample]().
			Measure("time", func(r growthSample) float64 { return r.Hours }).
			Measure("optical_density", func(r growthSample) float64 { return r.OpticalDensity }).
			Measure("temperature", func(r growthSample) float64 { return r.Temperature }).
			Bind(growthRows),
		FilterColumns: []string{"optical_density"},
		ChartX:        "optical_density",
		ChartY:        "temperature",
		ChartKind:     "line",
		ChartTitle:    "Temperature (°C) vs Optical Density (OD600)",
	}

	return []*Entry{enzymes, proteins, growth}
}
