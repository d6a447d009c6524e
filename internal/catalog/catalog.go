package catalog

import "slices"

// Prompt is a "symptom" statement shown to the player.
type Prompt struct {
	ID            int      `json:"id" yaml:"id"`
	Text          string   `json:"text" yaml:"text"`
	Interventions []string `json:"interventions" yaml:"interventions"`
}

// Supports reports whether picking this prompt scores the named intervention.
func (p Prompt) Supports(name string) bool {
	return slices.Contains(p.Interventions, name)
}

// Intervention is a recommended remedy or activity. Everything except Name is
// display metadata.
type Intervention struct {
	Name     string   `json:"name" yaml:"name"`
	Emoji    string   `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Benefits []string `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	Timing   string   `json:"timing,omitempty" yaml:"timing,omitempty"`
	Dosage   string   `json:"dosage,omitempty" yaml:"dosage,omitempty"`
}

// Catalog is the fixed set of prompts and interventions a quiz runs over.
type Catalog struct {
	Prompts       []Prompt       `json:"prompts" yaml:"prompts"`
	Interventions []Intervention `json:"interventions" yaml:"interventions"`
}

// Intervention looks up an intervention by name.
func (c *Catalog) Intervention(name string) (Intervention, bool) {
	for _, iv := range c.Interventions {
		if iv.Name == name {
			return iv, true
		}
	}
	return Intervention{}, false
}

// Clone returns a deep copy so callers can't mutate shared slices.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Prompts:       make([]Prompt, len(c.Prompts)),
		Interventions: make([]Intervention, len(c.Interventions)),
	}
	for i, p := range c.Prompts {
		p.Interventions = slices.Clone(p.Interventions)
		out.Prompts[i] = p
	}
	for i, iv := range c.Interventions {
		iv.Benefits = slices.Clone(iv.Benefits)
		out.Interventions[i] = iv
	}
	return out
}
