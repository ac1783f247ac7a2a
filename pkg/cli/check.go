package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/cloudbind/cloudbind/pkg/serializer"
)

// checkReport summarizes a resolved catalog for health and CI checks.
type checkReport struct {
	Services int            `json:"services" yaml:"services"`
	Labels   map[string]int `json:"labels,omitempty" yaml:"labels,omitempty"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Verify that the platform bindings resolve",
		Description: `Resolve the platform's service bindings and report how many services of
which kinds are bound. Exits non-zero when the catalog cannot be built,
making this suitable for deployment health checks.

# Examples

  cloudbind check
  cloudbind check --source kubernetes --namespace my-app`,
		Flags: []cli.Flag{
			sourceFlag,
			pathFlag,
			namespaceFlag,
			kubeconfigFlag,
			skipMalformedFlag,
			outputFlag,
			formatFlag,
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogging(cmd)

			outFormat, err := parseOutputFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			cat, err := buildCatalog(cmd)
			if err != nil {
				return err
			}

			infos, err := cat.Resolve(ctx)
			if err != nil {
				return err
			}

			report := checkReport{
				Services: len(infos),
				Labels:   make(map[string]int),
			}
			for _, info := range infos {
				report.Labels[info.Label()]++
			}

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()
			return writer.Serialize(ctx, report)
		},
	}
}
