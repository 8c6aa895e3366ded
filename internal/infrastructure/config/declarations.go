package config

import (
	"fmt"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"

	"gopkg.in/yaml.v3"
)

// declarationsFile is the YAML document layout for 'apply -f'.
type declarationsFile struct {
	Interfaces []declarationEntry `yaml:"interfaces"`
}

// declarationEntry is one interface declaration. The interface field is
// deliberately untyped: an integer is a sequence position, a string in
// hardware address format is a MAC, anything else is the device name.
type declarationEntry struct {
	Interface any                      `yaml:"interface"`
	Params    entities.InterfaceParams `yaml:",inline"`
}

// DeclarationsLoader parses interface declarations from a YAML file.
type DeclarationsLoader struct {
	fileSystem interfaces.FileSystem
}

// NewDeclarationsLoader creates a new DeclarationsLoader.
func NewDeclarationsLoader(fs interfaces.FileSystem) *DeclarationsLoader {
	return &DeclarationsLoader{fileSystem: fs}
}

// Load reads and classifies all declarations in the file.
func (l *DeclarationsLoader) Load(path string) ([]entities.Declaration, error) {
	content, err := l.fileSystem.ReadFile(path)
	if err != nil {
		return nil, errors.NewSystemError(fmt.Sprintf("failed to read declarations file %s", path), err)
	}

	var file declarationsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("failed to parse declarations file %s", path), err)
	}
	if len(file.Interfaces) == 0 {
		return nil, errors.NewValidationError(fmt.Sprintf("declarations file %s lists no interfaces", path), nil)
	}

	declarations := make([]entities.Declaration, 0, len(file.Interfaces))
	for i, entry := range file.Interfaces {
		if entry.Interface == nil {
			return nil, errors.NewValidationError(
				fmt.Sprintf("declaration %d is missing the interface field", i), nil)
		}
		identifier, err := entities.ClassifyIdentifier(entry.Interface)
		if err != nil {
			return nil, errors.NewValidationError(
				fmt.Sprintf("declaration %d has an invalid interface field", i), err)
		}
		declarations = append(declarations, entities.Declaration{
			ID:         i,
			Identifier: identifier,
			Params:     entry.Params,
		})
	}

	return declarations, nil
}
