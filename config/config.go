// Package config loads the site configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/stemfolio/catalog"
	"github.com/spektr-org/stemfolio/contact"
)

// Config is the full site configuration.
type Config struct {
	Profile Profile `yaml:"profile" json:"profile"`
	Catalog string  `yaml:"catalog" json:"catalog"`
	Contact Contact `yaml:"contact" json:"contact"`
	Log     Log     `yaml:"log" json:"log"`
}

// Profile is the researcher shown on the profile page.
type Profile struct {
	Name         string   `yaml:"name" json:"name"`
	Field        string   `yaml:"field" json:"field"`
	Institution  string   `yaml:"institution" json:"institution"`
	Bio          []string `yaml:"bio" json:"bio"`
	Image        string   `yaml:"image" json:"image,omitempty"`
	ImageCaption string   `yaml:"image_caption" json:"imageCaption,omitempty"`
}

// Contact configures the contact form.
type Contact struct {
	Subjects []string `yaml:"subjects" json:"subjects"`
}

// Log configures logging.
type Log struct {
	Debug bool `yaml:"debug" json:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Profile: Profile{
			Name:        "Damien Ferreira",
			Field:       "Biochemistry",
			Institution: "North-West University",
			Bio: []string{
				"I am a biochemistry student with a strong interest in molecular biology, enzyme kinetics, and microbial physiology.",
				"The pages that follow are some things that I found interesting.",
			},
			Image:        "Sunset (2).jpg",
			ImageCaption: "Sunset (Damien Ferreira)",
		},
		Catalog: string(catalog.Biochemistry),
		Contact: Contact{Subjects: contact.DefaultSubjects()},
	}
}

// Load reads a YAML file over Default. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Keys absent
// from the document keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var err error
	if strings.TrimSpace(c.Profile.Name) == "" {
		err = multierr.Append(err, errors.New("profile.name is required"))
	}
	if _, perr := catalog.ParseVariant(c.Catalog); perr != nil {
		err = multierr.Append(err, fmt.Errorf("catalog: %w", perr))
	}
	if len(c.Contact.Subjects) == 0 {
		err = multierr.Append(err, errors.New("contact.subjects must be non-empty"))
	}
	seen := make(map[string]bool, len(c.Contact.Subjects))
	for i, s := range c.Contact.Subjects {
		switch {
		case strings.TrimSpace(s) == "":
			err = multierr.Append(err, fmt.Errorf("contact.subjects[%d] is blank", i))
		case seen[s]:
			err = multierr.Append(err, fmt.Errorf("contact.subjects[%d] duplicates %q", i, s))
		}
		seen[s] = true
	}
	return err
}

// Variant returns the configured catalog variant. It assumes Validate passed.
func (c *Config) Variant() catalog.Variant {
	v, _ := catalog.ParseVariant(c.Catalog)
	return v
}
