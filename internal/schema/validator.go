// Package schema validates declarative agent documents against the agent
// definition schema. Checks are independent of each other and accumulate
// into a Result so a single run reports every problem found.
package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/agentdeploy-dev/agentdeploy/internal/powerfx"
	"github.com/agentdeploy-dev/agentdeploy/pkg/models"
)

// Validate runs every schema check against a parsed document.
func Validate(doc *Document) *Result {
	res := &Result{}
	def := doc.Definition

	validateTopLevel(def, res)
	validateModel(def.Model, res)
	validateTools(def.Tools, res)
	scanExpressions(doc.Raw, "", res)

	return res
}

func validateTopLevel(def *models.AgentDefinition, res *Result) {
	if def.Kind == "" {
		res.errorf("kind", "missing required field")
	} else if !slices.Contains(models.ValidKinds, def.Kind) {
		res.errorf("kind", "invalid value %q (must be one of %v)", def.Kind, models.ValidKinds)
	}
	if def.Name == "" {
		res.errorf("name", "missing required field")
	}
}

func validateModel(model *models.ModelConfig, res *Result) {
	if model == nil {
		res.errorf("model.id", "missing required field")
		res.errorf("model.connection", "missing required field")
		return
	}
	if model.ID == "" {
		res.errorf("model.id", "missing required field")
	}
	if model.Connection == nil {
		res.errorf("model.connection", "missing required field")
		return
	}
	validateConnection(model.Connection, res)
}

func validateConnection(conn *models.Connection, res *Result) {
	if conn.Kind == "" {
		res.errorf("model.connection.kind", "missing required field")
		return
	}
	if !slices.Contains(models.ValidConnectionKinds, conn.Kind) {
		res.errorf("model.connection.kind", "invalid value %q (must be one of %v)",
			conn.Kind, models.ValidConnectionKinds)
		return
	}

	switch conn.Kind {
	case models.ConnectionRemote, models.ConnectionAnonymous:
		if conn.Endpoint == "" {
			res.errorf("model.connection.endpoint", "required for connection kind %q", conn.Kind)
		}
	case models.ConnectionKey:
		if conn.APIKey == "" && conn.Key == "" {
			res.errorf("model.connection", "connection kind %q requires apiKey or key", conn.Kind)
		}
	case models.ConnectionReference:
		if conn.Name == "" {
			res.errorf("model.connection.name", "required for connection kind %q", conn.Kind)
		}
	}
}

func validateTools(tools []models.Tool, res *Result) {
	for i, tool := range tools {
		path := fmt.Sprintf("tools[%d]", i)

		if tool.Kind == "" {
			res.errorf(path+".kind", "missing required field")
			continue
		}
		if !slices.Contains(models.ValidToolKinds, tool.Kind) {
			res.errorf(path+".kind", "invalid value %q (must be one of %v)",
				tool.Kind, models.ValidToolKinds)
			continue
		}

		requireToolField := func(field, value string) {
			if value == "" {
				res.errorf(path+"."+field, "required for tool kind %q", tool.Kind)
			}
		}

		switch tool.Kind {
		case models.ToolFunction:
			requireToolField("name", tool.Name)
			requireToolField("description", tool.Description)
		case models.ToolMCP:
			requireToolField("name", tool.Name)
			requireToolField("url", tool.URL)
		case models.ToolOpenAPI:
			requireToolField("name", tool.Name)
			requireToolField("specification", tool.Specification)
		case models.ToolCustom:
			requireToolField("name", tool.Name)
		}
	}
}

// scanExpressions walks every string scalar of the raw document, lints
// expression values and records which environment variables the document
// references. References are noted, never resolved here.
func scanExpressions(v any, path string, res *Result) {
	switch val := v.(type) {
	case map[string]any:
		// Sorted for stable diagnostic ordering.
		for _, k := range slices.Sorted(maps.Keys(val)) {
			scanExpressions(val[k], joinPath(path, k), res)
		}
	case []any:
		for i, child := range val {
			scanExpressions(child, fmt.Sprintf("%s[%d]", path, i), res)
		}
	case string:
		if !powerfx.IsExpression(val) {
			return
		}
		if err := powerfx.Lint(val); err != nil {
			res.warnf(path, "expression syntax: %v", err)
		}
		for _, name := range powerfx.EnvRefs(val) {
			res.infof(path, "references environment variable %s", name)
		}
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
