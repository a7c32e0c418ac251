package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdeploy-dev/agentdeploy/pkg/models"
)

const envRefAgentYAML = `kind: Agent
name: env-agent
model:
  id: gpt-4o
  connection:
    kind: remote
    endpoint: =Env.DEPLOY_TEST_ENDPOINT
`

func execDeploy(t *testing.T, args ...string) (string, error) {
	t.Helper()
	deployDryRun = false
	deployEndpoint = ""

	var buf bytes.Buffer
	DeployCmd.SetOut(&buf)
	DeployCmd.SetErr(&buf)
	DeployCmd.SetArgs(args)
	err := DeployCmd.Execute()
	return buf.String(), err
}

func TestDeploy_Success(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(models.AgentResource{ID: "agt_42", Name: "support-agent"})
	}))
	defer ts.Close()

	path := writeTempYAML(t, "agent.yaml", validAgentYAML)
	out, err := execDeploy(t, path, "--endpoint", ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "/agents/support-agent", gotPath)
	assert.Equal(t, "Agent", gotBody["kind"])
	assert.Contains(t, out, "Deploying agent")
}

func TestDeploy_RefusesInvalidDefinition(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	path := writeTempYAML(t, "agent.yaml", invalidAgentYAML)
	out, err := execDeploy(t, path, "--endpoint", ts.URL)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "refusing to deploy")
	assert.Contains(t, out, "model.id")
	assert.Zero(t, calls, "validation errors must never reach the service")
}

func TestDeploy_UnsetEnvReferenceFails(t *testing.T) {
	// An unset referenced variable is a deploy-time error, never a
	// silent empty substitution.
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	path := writeTempYAML(t, "agent.yaml", envRefAgentYAML)
	_, err := execDeploy(t, path, "--endpoint", ts.URL)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "DEPLOY_TEST_ENDPOINT")
	assert.Contains(t, err.Error(), "not set")
	assert.Zero(t, calls)
}

func TestDeploy_SubstitutesEnvReference(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(models.AgentResource{ID: "agt_1", Name: "env-agent"})
	}))
	defer ts.Close()

	t.Setenv("DEPLOY_TEST_ENDPOINT", "https://resolved.example.com")

	path := writeTempYAML(t, "agent.yaml", envRefAgentYAML)
	_, err := execDeploy(t, path, "--endpoint", ts.URL)
	require.NoError(t, err)

	model := gotBody["model"].(map[string]any)
	conn := model["connection"].(map[string]any)
	assert.Equal(t, "https://resolved.example.com", conn["endpoint"])
}

func TestDeploy_DryRunSkipsRemoteCall(t *testing.T) {
	t.Setenv("DEPLOY_TEST_ENDPOINT", "https://resolved.example.com")

	path := writeTempYAML(t, "agent.yaml", envRefAgentYAML)
	out, err := execDeploy(t, path, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "https://resolved.example.com")
	assert.NotContains(t, out, "Deploying agent")
}

func TestDeploy_SurfacesServiceRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("model deployment not found"))
	}))
	defer ts.Close()

	path := writeTempYAML(t, "agent.yaml", validAgentYAML)
	_, err := execDeploy(t, path, "--endpoint", ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model deployment not found")
}

func TestDeploy_RequiresEndpoint(t *testing.T) {
	// No --endpoint flag and no ADCTL_PROJECT_ENDPOINT in the test env.
	t.Setenv("ADCTL_PROJECT_ENDPOINT", "")

	path := writeTempYAML(t, "agent.yaml", validAgentYAML)
	_, err := execDeploy(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADCTL_PROJECT_ENDPOINT")
}
