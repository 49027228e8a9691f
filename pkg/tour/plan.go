package tour

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a lesson plan: an ordered subset of sections with an optional
// custom title. Plans let an instructor reorder the tour or trim it to a
// single topic without rebuilding the binary.
type Plan struct {
	Title    string   `yaml:"title"`
	Sections []string `yaml:"sections"`
	Notes    string   `yaml:"notes"`
}

// LoadPlan reads and validates a YAML lesson plan from path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan parses and validates YAML plan content.
func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks the plan against the registry.
func (p *Plan) Validate() error {
	if len(p.Sections) == 0 {
		return fmt.Errorf("plan lists no sections")
	}
	seen := make(map[string]bool, len(p.Sections))
	for _, id := range p.Sections {
		if _, ok := ByID(id); !ok {
			return fmt.Errorf("plan references unknown section %q", id)
		}
		if seen[id] {
			return fmt.Errorf("plan lists section %q twice", id)
		}
		seen[id] = true
	}
	return nil
}

// Resolve returns the plan's sections in plan order.
func (p *Plan) Resolve() ([]SectionDef, error) {
	return Resolve(p.Sections)
}
