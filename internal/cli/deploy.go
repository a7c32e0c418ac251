package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agentdeploy-dev/agentdeploy/internal/client"
	"github.com/agentdeploy-dev/agentdeploy/internal/config"
	"github.com/agentdeploy-dev/agentdeploy/internal/envref"
	"github.com/agentdeploy-dev/agentdeploy/internal/schema"
	"github.com/agentdeploy-dev/agentdeploy/internal/telemetry"
	"github.com/agentdeploy-dev/agentdeploy/pkg/printer"
)

var (
	deployDryRun   bool
	deployEndpoint string
)

var DeployCmd = &cobra.Command{
	Use:   "deploy <file>",
	Short: "Deploy an agent definition",
	Long: `Deploy one agent YAML definition to the configured project endpoint.

The definition is validated first; a definition with errors is never sent.
Environment references (=Env.NAME) are resolved from the process
environment at deploy time. A referenced variable that is unset fails the
deployment rather than substituting an empty value.

The target endpoint comes from ADCTL_PROJECT_ENDPOINT or --endpoint. The
deployment is a single create-or-update request keyed by the agent name;
there is no retry.

Example:
  adctl deploy agents/support.yaml
  adctl deploy agents/support.yaml --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runDeploy,
}

func runDeploy(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	doc, err := schema.Load(path)
	if err != nil {
		return err
	}

	res := schema.Validate(doc)
	if !res.Valid() {
		printer.PrintDiagnostics(out, path, res, false)
		return fmt.Errorf("validation failed, refusing to deploy %s", path)
	}

	resolved, err := envref.Resolve(doc.Raw, os.LookupEnv)
	if err != nil {
		return fmt.Errorf("failed to resolve environment references: %w", err)
	}

	if deployDryRun {
		p := printer.New(printer.OutputTypeYAML)
		p.SetOutput(out)
		return p.Print(resolved)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if deployEndpoint != "" {
		cfg.ProjectEndpoint = deployEndpoint
	}
	if err := cfg.RequireEndpoint(); err != nil {
		return err
	}

	ctx := cmd.Context()
	tel, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() { _ = tel.Shutdown(context.Background()) }()

	name := doc.Definition.Name
	_, _ = fmt.Fprintf(out, "Deploying agent %q to %s\n", name, cfg.ProjectEndpoint)

	tracer := otel.Tracer("github.com/agentdeploy-dev/agentdeploy/internal/cli")
	ctx, span := tracer.Start(ctx, "agent.deploy", trace.WithAttributes(
		attribute.String("agent.name", name),
		attribute.String("agent.kind", doc.Definition.Kind),
	))
	defer span.End()

	c := client.New(cfg.ProjectEndpoint, cfg.APIToken, cfg.APIVersion, cfg.RequestTimeout)
	resource, err := c.CreateOrUpdateAgent(ctx, name, resolved)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "deployment failed")
		return fmt.Errorf("failed to deploy agent %q: %w", name, err)
	}
	span.SetAttributes(attribute.String("agent.resource_id", resource.ID))

	printer.PrintSuccess(fmt.Sprintf("Agent %q deployed (resource id: %s)", resource.Name, resource.ID))
	return nil
}

func init() {
	DeployCmd.Flags().BoolVar(&deployDryRun, "dry-run", false, "Validate and resolve the definition, print it, and skip the remote call")
	DeployCmd.Flags().StringVar(&deployEndpoint, "endpoint", "", "Project endpoint (overrides ADCTL_PROJECT_ENDPOINT)")
}
