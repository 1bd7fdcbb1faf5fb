package taskfile

import (
	"gopkg.in/yaml.v3"

	"github.com/chorelabs/chore/internal/core/domain"
	"go.trai.ch/zerr"
)

// Chorefile represents the structure of the chorefile.yaml definition.
type Chorefile struct {
	Version string             `yaml:"version"`
	Tasks   map[string]TaskDTO `yaml:"tasks"`
}

// TaskDTO represents a task definition in the chorefile.
type TaskDTO struct {
	Cmd       []string          `yaml:"cmd"`
	Env       map[string]string `yaml:"env"`
	DependsOn []DependencyDTO   `yaml:"dependsOn"`
}

// DependencyDTO is one dependsOn element. It decodes either a bare task
// name or a mapping with a per-dependency option override:
//
//	dependsOn:
//	  - generate
//	  - task: lint
//	    options: {strict: true}
type DependencyDTO struct {
	Task    string         `yaml:"task"`
	Options map[string]any `yaml:"options"`
}

// UnmarshalYAML implements yaml.Unmarshaler to accept both shapes.
func (d *DependencyDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&d.Task)
	case yaml.MappingNode:
		type plain DependencyDTO
		return node.Decode((*plain)(d))
	default:
		return zerr.With(zerr.New("dependsOn element must be a task name or a mapping"), "line", node.Line)
	}
}

// Spec converts the DTO to the engine's dependency declaration.
func (d DependencyDTO) Spec() domain.DependencySpec {
	if len(d.Options) == 0 {
		return domain.Dep(d.Task)
	}
	return domain.DepWith(d.Task, domain.Options(d.Options))
}
