package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of user intents.
type Script struct {
	Sort   string `yaml:"sort"`
	Events []Step `yaml:"events"`
}

// Step is one event. Exactly one field must be set.
type Step struct {
	Add    *AddStep `yaml:"add,omitempty"`
	Toggle string   `yaml:"toggle,omitempty"`
	Delete string   `yaml:"delete,omitempty"`
	Sort   string   `yaml:"sort,omitempty"`
	Clear  bool     `yaml:"clear,omitempty"`
}

// AddStep submits the add form. Ref names the new item for later steps.
type AddStep struct {
	Description string `yaml:"description"`
	Quantity    int    `yaml:"quantity"`
	Ref         string `yaml:"ref"`
}

// ErrInvalidStep marks a step with zero or several actions.
var ErrInvalidStep = errors.New("invalid step")

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML script.
func Parse(b []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	for i, st := range s.Events {
		if n := st.actions(); n != 1 {
			return nil, fmt.Errorf("%w: event %d has %d actions, want 1", ErrInvalidStep, i+1, n)
		}
	}
	return &s, nil
}

func (st Step) actions() int {
	n := 0
	for _, set := range []bool{st.Add != nil, st.Toggle != "", st.Delete != "", st.Sort != "", st.Clear} {
		if set {
			n++
		}
	}
	return n
}
