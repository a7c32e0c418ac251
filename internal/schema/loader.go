package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agentdeploy-dev/agentdeploy/pkg/models"
)

// Document is one parsed agent definition. Definition carries the typed
// view used by structural checks; Raw carries the full decoded document
// used for expression scanning and deploy-time substitution.
type Document struct {
	Definition *models.AgentDefinition
	Raw        map[string]any
}

// ParseError marks a document that could not be decoded at all. It is
// fatal and distinct from schema diagnostics: an unparseable file never
// reaches validation.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid YAML syntax: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and parses one agent definition file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes one agent definition document.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	if raw == nil {
		return nil, &ParseError{Err: fmt.Errorf("document is empty")}
	}

	var def models.AgentDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, &ParseError{Err: err}
	}

	return &Document{Definition: &def, Raw: raw}, nil
}
