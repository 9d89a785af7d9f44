package catalog

import (
	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/schema"
)

type experiment struct {
	Name   string
	Energy float64 // MeV
	Date   string
}

type observation struct {
	Object     string
	Brightness float64 // apparent magnitude
	Date       string
}

type weatherReading struct {
	City        string
	Temperature float64 // °C
	Humidity    float64 // %
	Date        string
}

var experimentRows = []experiment{
	{"Alpha Decay", 4.2, "2024-01-01"},
	{"Beta Decay", 1.5, "2024-01-02"},
	{"Gamma Ray Analysis", 2.9, "2024-01-03"},
	{"Quark Study", 3.4, "2024-01-04"},
	{"Higgs Boson", 7.1, "2024-01-05"},
}

var observationRows = []observation{
	{"Mars", -2.0, "2024-01-01"},
	{"Venus", -4.6, "2024-01-02"},
	{"Jupiter", -1.8, "2024-01-03"},
	{"Saturn", 0.2, "2024-01-04"},
	{"Moon", -12.7, "2024-01-05"},
}

var weatherRows = []weatherReading{
	{"Cape Town", 25, 65, "2024-01-01"},
	{"London", 10, 70, "2024-01-02"},
	{"New York", -3, 55, "2024-01-03"},
	{"Tokyo", 15, 80, "2024-01-04"},
	{"Sydney", 30, 50, "2024-01-05"},
}

func physicalEntries() []*Entry {
	physics := &Entry{
		ID:      "physics-experiments",
		Name:    "Physics Experiments",
		Heading: "Physics Experiment Data",
		Schema: schema.Build("Physics Experiments",
			schema.Text("Experiment"),
			schema.Number("Energy (MeV)"),
			schema.Date("Date"),
		),
		View: engine.NewDomainAdapter[experiment]().
			Dimension("experiment", func(r experiment) string { return r.Name }).
			Dimension("date", func(r experiment) string { return r.Date }).
			Measure("energy", func(r experiment) float64 { return r.Energy }).
			Bind(experimentRows),
		FilterColumns: []string{"energy"},
		ChartX:        "date",
		ChartY:        "energy",
		ChartKind:     "line",
		ChartTitle:    "Energy (MeV) by Date",
	}

	astronomy := &Entry{
		ID:      "astronomy-observations",
		Name:    "Astronomy Observations",
		Heading: "Astronomy Observation Data",
		Schema: schema.Build("Astronomy Observations",
			schema.Text("Celestial Object"),
			schema.Number("Brightness (Magnitude)"),
			schema.Date("Observation Date"),
		),
		View: engine.NewDomainAdapter[observation]().
			Dimension("celestial_object", func(r observation) string { return r.Object }).
			Dimension("observation_date", func(r observation) string { return r.Date }).
			Measure("brightness", func(r observation) float64 { return r.Brightness }).
			Bind(observationRows),
		FilterColumns: []string{"brightness"},
		ChartX:        "celestial_object",
		ChartY:        "brightness",
		ChartKind:     "bar",
		ChartTitle:    "Brightness (Magnitude) by Celestial Object",
	}

	weather := &Entry{
		ID:      "weather-data",
		Name:    "Weather Data",
		Heading: "Weather Data",
		Schema: schema.Build("Weather Data",
			schema.Text("City"),
			schema.Number("Temperature (°C)"),
			schema.Number("Humidity (%)"),
			schema.Date("Recorded Date"),
		),
		View: engine.NewDomainAdapter[weatherReading]().
			Dimension("city", func(r weatherReading) string { return r.City }).
			Dimension("recorded_date", func(r weatherReading) string { return r.Date }).
			Measure("temperature", func(r weatherReading) float64 { return r.Temperature }).
			Measure("humidity", func(r weatherReading) float64 { return r.Humidity }).
			Bind(weatherRows),
		FilterColumns: []string{"temperature", "humidity"},
		ChartX:        "city",
		ChartY:        "temperature",
		ChartKind:     "bar",
		ChartTitle:    "Temperature (°C) by City",
	}

	return []*Entry{physics, astronomy, weather}
}
