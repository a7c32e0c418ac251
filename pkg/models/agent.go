package models

// AgentDefinition represents a declarative agent configuration as authored
// in YAML. It is read once by the validator and once by the deployer and is
// never persisted locally beyond the source file.
type AgentDefinition struct {
	Kind         string         `yaml:"kind" json:"kind"`
	Name         string         `yaml:"name" json:"name"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	Instructions string         `yaml:"instructions,omitempty" json:"instructions,omitempty"`
	Metadata     map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	Model        *ModelConfig   `yaml:"model,omitempty" json:"model,omitempty"`
	Tools        []Tool         `yaml:"tools,omitempty" json:"tools,omitempty"`
}

// Definition kinds.
const (
	KindPrompt = "Prompt"
	KindAgent  = "Agent"
)

// ValidKinds lists the accepted values for the top-level kind field.
var ValidKinds = []string{KindPrompt, KindAgent}

// ModelConfig describes the model backing an agent and how it is reached.
type ModelConfig struct {
	ID         string         `yaml:"id" json:"id"`
	Options    map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
	Connection *Connection    `yaml:"connection,omitempty" json:"connection,omitempty"`
}

// Connection is a tagged union: the set of required companion fields is a
// function of Kind.
type Connection struct {
	// Connection kind -- remote, key, reference, anonymous
	Kind     string `yaml:"kind" json:"kind"`
	Endpoint string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	APIKey   string `yaml:"apiKey,omitempty" json:"apiKey,omitempty"`
	Key      string `yaml:"key,omitempty" json:"key,omitempty"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Connection kinds.
const (
	ConnectionRemote    = "remote"
	ConnectionKey       = "key"
	ConnectionReference = "reference"
	ConnectionAnonymous = "anonymous"
)

// ValidConnectionKinds lists the accepted connection tags.
var ValidConnectionKinds = []string{
	ConnectionRemote,
	ConnectionKey,
	ConnectionReference,
	ConnectionAnonymous,
}

// Tool is a capability attached to an agent. Like Connection it is a tagged
// union keyed by Kind.
type Tool struct {
	// Tool kind -- function, web_search, file_search, code_interpreter,
	// mcp, openapi, custom
	Kind          string            `yaml:"kind" json:"kind"`
	Name          string            `yaml:"name,omitempty" json:"name,omitempty"`
	Description   string            `yaml:"description,omitempty" json:"description,omitempty"`
	URL           string            `yaml:"url,omitempty" json:"url,omitempty"`
	Specification string            `yaml:"specification,omitempty" json:"specification,omitempty"`
	Parameters    map[string]any    `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Headers       map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	AllowedTools  []string          `yaml:"allowedTools,omitempty" json:"allowedTools,omitempty"`
}

// Tool kinds.
const (
	ToolFunction        = "function"
	ToolWebSearch       = "web_search"
	ToolFileSearch      = "file_search"
	ToolCodeInterpreter = "code_interpreter"
	ToolMCP             = "mcp"
	ToolOpenAPI         = "openapi"
	ToolCustom          = "custom"
)

// ValidToolKinds lists the accepted tool tags.
var ValidToolKinds = []string{
	ToolFunction,
	ToolWebSearch,
	ToolFileSearch,
	ToolCodeInterpreter,
	ToolMCP,
	ToolOpenAPI,
	ToolCustom,
}
