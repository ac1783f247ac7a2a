package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/cloudbind/cloudbind/pkg/logging"
	"github.com/cloudbind/cloudbind/pkg/serializer"
)

const name = "cloudbind"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// shared flags
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}

	sourceFlag = &cli.StringFlag{
		Name:    "source",
		Sources: cli.EnvVars("CLOUDBIND_SOURCE"),
		Value:   "env",
		Usage:   "Binding source (supported values: env, file, dir, kubernetes, all)",
	}

	pathFlag = &cli.StringFlag{
		Name:    "path",
		Sources: cli.EnvVars("CLOUDBIND_MANIFEST"),
		Usage:   "Binding manifest path (file source)",
	}

	namespaceFlag = &cli.StringFlag{
		Name:    "namespace",
		Sources: cli.EnvVars("CLOUDBIND_NAMESPACE"),
		Value:   "default",
		Usage:   "Kubernetes namespace to read binding secrets from",
	}

	kubeconfigFlag = &cli.StringFlag{
		Name:  "kubeconfig",
		Usage: "Path to kubeconfig file (default: automatic discovery)",
	}

	skipMalformedFlag = &cli.BoolFlag{
		Name:  "skip-malformed",
		Usage: "Skip malformed binding entries instead of failing the whole catalog",
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Resolve bound backing services into typed connection descriptors",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Commands: []*cli.Command{
			servicesCmd(),
			getCmd(),
			checkCmd(),
		},
	}
}

// Execute runs the CLI with a signal-aware context. This is called by
// main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging configures slog from the command's flags before any command
// logic executes.
func initLogging(cmd *cli.Command) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
}

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(format string) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(format)))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q (supported: %s)",
			format, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}
