package service

import (
	_ "embed"
	"fmt"

	"travelbot/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// catalogFile is the on-disk shape of catalog.yaml
type catalogFile struct {
	Intents []model.IntentDef `yaml:"intents"`
}

// IntentCatalog is the read-only list of supported intents, for discovery only.
// Classification does not consult it.
type IntentCatalog struct {
	intents []model.IntentDef
}

// LoadIntentCatalog parses the embedded catalog
func LoadIntentCatalog() (*IntentCatalog, error) {
	return ParseIntentCatalog(catalogYAML)
}

// ParseIntentCatalog parses and validates catalog YAML
func ParseIntentCatalog(data []byte) (*IntentCatalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse intent catalog: %w", err)
	}

	known := make(map[model.Intent]bool, len(model.AllIntents))
	for _, in := range model.AllIntents {
		known[in] = true
	}

	seen := make(map[string]bool, len(f.Intents))
	for i := range f.Intents {
		def := &f.Intents[i]
		if !known[model.Intent(def.Name)] {
			return nil, fmt.Errorf("intent catalog entry %d: unknown intent %q", i, def.Name)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("intent catalog entry %d: duplicate intent %q", i, def.Name)
		}
		seen[def.Name] = true
		if def.SampleUtterances == nil {
			def.SampleUtterances = []string{}
		}
		if def.RequiredSlots == nil {
			def.RequiredSlots = []string{}
		}
	}

	return &IntentCatalog{intents: f.Intents}, nil
}

// List returns a copy of the catalog entries
func (c *IntentCatalog) List() []model.IntentDef {
	out := make([]model.IntentDef, len(c.intents))
	copy(out, c.intents)
	return out
}

// Get returns the entry for an intent
func (c *IntentCatalog) Get(intent model.Intent) (model.IntentDef, bool) {
	for _, def := range c.intents {
		if def.Name == string(intent) {
			return def, true
		}
	}
	return model.IntentDef{}, false
}
