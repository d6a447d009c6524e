package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate performs structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(c *Catalog) error {
	var errs []string

	if len(c.Prompts) < 2 {
		errs = append(errs, fmt.Sprintf("need at least 2 prompts, got %d", len(c.Prompts)))
	}
	if len(c.Interventions) == 0 {
		errs = append(errs, "no interventions defined")
	}

	names := make(map[string]bool, len(c.Interventions))
	for _, iv := range c.Interventions {
		if strings.TrimSpace(iv.Name) == "" {
			errs = append(errs, "intervention with empty name")
			continue
		}
		if names[iv.Name] {
			errs = append(errs, fmt.Sprintf("duplicate intervention name: %q", iv.Name))
		}
		names[iv.Name] = true
	}

	ids := make(map[int]bool, len(c.Prompts))
	for _, p := range c.Prompts {
		if ids[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate prompt ID: %d", p.ID))
		}
		ids[p.ID] = true

		if strings.TrimSpace(p.Text) == "" {
			errs = append(errs, fmt.Sprintf("prompt %d has empty text", p.ID))
		}
		for _, name := range p.Interventions {
			if !names[name] {
				errs = append(errs, fmt.Sprintf("prompt %d references unknown intervention %q", p.ID, name))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidCatalog, strings.Join(errs, "\n  "))
	}
	return nil
}
