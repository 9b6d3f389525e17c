// Package agent describes the currency agent and dispatches skill invocations.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"go-currency-converter-agent/skill"
)

// ErrSkillNotFound no skill is registered under the requested ID.
var ErrSkillNotFound = errors.New("skill not found")

const (
	// Name of the agent.
	Name = "Currency Agent"

	// Description of the agent, used by callers to decide whether to use it.
	Description = "An agent specialised in currency conversion. Converts between EUR, JPY and USD."

	// ModeSkillExecutor the agent never decides on its own, it only executes the requested skill.
	ModeSkillExecutor = "skill_executor"
)

// Skill is a capability the agent can execute.
type Skill interface {
	Descriptor() skill.Descriptor
	Execute(ctx context.Context, args json.RawMessage) (string, error)
}

// Capabilities the agent supports.
type Capabilities struct {
	Streaming bool `json:"streaming"`
}

// Card is the published description of the agent.
type Card struct {
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	URL                string             `json:"url"`
	Version            string             `json:"version"`
	Mode               string             `json:"mode"`
	Capabilities       Capabilities       `json:"capabilities"`
	DefaultInputModes  []string           `json:"defaultInputModes"`
	DefaultOutputModes []string           `json:"defaultOutputModes"`
	Skills             []skill.Descriptor `json:"skills"`
}

// Result of a skill invocation.
type Result struct {
	ID     string `json:"id"`
	Skill  string `json:"skill"`
	Output string `json:"output"`
}

// Agent holds the agent metadata and its skills.
type Agent struct {
	url     string
	version string
	skills  map[string]Skill
}

// New constructs an Agent served at url. Skills are keyed by their descriptor ID.
func New(url string, version string, skills ...Skill) (*Agent, error) {
	a := &Agent{
		url:     url,
		version: version,
		skills:  make(map[string]Skill, len(skills)),
	}
	for _, s := range skills {
		id := s.Descriptor().ID
		if _, ok := a.skills[id]; ok {
			return nil, fmt.Errorf("duplicate skill %q", id)
		}
		a.skills[id] = s
	}
	return a, nil
}

// Name returns the agent's name.
func (a *Agent) Name() string {
	return Name
}

// Version returns the agent's version.
func (a *Agent) Version() string {
	return a.version
}

// Card builds the agent card. Skills are listed by ID.
func (a *Agent) Card() Card {
	descriptors := make([]skill.Descriptor, 0, len(a.skills))
	for _, s := range a.skills {
		descriptors = append(descriptors, s.Descriptor())
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].ID < descriptors[j].ID
	})

	return Card{
		Name:               Name,
		Description:        Description,
		URL:                a.url,
		Version:            a.version,
		Mode:               ModeSkillExecutor,
		Capabilities:       Capabilities{Streaming: false},
		DefaultInputModes:  []string{"application/json"},
		DefaultOutputModes: []string{"text/plain"},
		Skills:             descriptors,
	}
}

// Invoke executes the skill registered under id with args.
func (a *Agent) Invoke(ctx context.Context, id string, args json.RawMessage) (Result, error) {
	s, ok := a.skills[id]
	if !ok {
		return Result{}, fmt.Errorf("invoke [%v]: %w", id, ErrSkillNotFound)
	}

	output, err := s.Execute(ctx, args)
	if err != nil {
		return Result{}, fmt.Errorf("invoke [%v]: %w", id, err)
	}

	return Result{
		ID:     uuid.NewString(),
		Skill:  id,
		Output: output,
	}, nil
}
