package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validAgentYAML = `kind: Agent
name: support-agent
description: Answers support questions.
model:
  id: gpt-4o
  connection:
    kind: remote
    endpoint: https://example.com/project
tools:
  - kind: web_search
`

const invalidAgentYAML = `kind: Prompt
name: X
`

func execValidate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	validateQuiet = false

	var buf bytes.Buffer
	ValidateCmd.SetOut(&buf)
	ValidateCmd.SetErr(&buf)
	ValidateCmd.SetArgs(args)
	err := ValidateCmd.Execute()
	return buf.String(), err
}

func TestValidate_ValidFile(t *testing.T) {
	path := writeTempYAML(t, "agent.yaml", validAgentYAML)

	out, err := execValidate(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
}

func TestValidate_MissingModelFailsWithBothFields(t *testing.T) {
	path := writeTempYAML(t, "agent.yaml", invalidAgentYAML)

	out, err := execValidate(t, path)
	require.Error(t, err, "documents with errors must exit non-zero")
	assert.Contains(t, out, "model.id")
	assert.Contains(t, out, "model.connection")
}

func TestValidate_MalformedYAMLIsFatal(t *testing.T) {
	path := writeTempYAML(t, "agent.yaml", "kind: [unclosed")

	out, err := execValidate(t, path)
	require.Error(t, err)
	assert.Contains(t, out, "fatal")
	assert.Contains(t, out, "invalid YAML syntax")
}

func TestValidate_MultipleFilesSummary(t *testing.T) {
	good := writeTempYAML(t, "good.yaml", validAgentYAML)
	bad := writeTempYAML(t, "bad.yaml", invalidAgentYAML)

	out, err := execValidate(t, good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "Valid")
	assert.Contains(t, out, "Invalid")
}

func TestValidate_QuietSuppressesNotes(t *testing.T) {
	path := writeTempYAML(t, "agent.yaml", `kind: Agent
name: env-agent
model:
  id: =Env.MODEL_ID
  connection:
    kind: remote
    endpoint: https://example.com
`)

	out, err := execValidate(t, path, "--quiet")
	require.NoError(t, err)
	assert.NotContains(t, out, "MODEL_ID")
}
