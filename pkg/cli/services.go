package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/cloudbind/cloudbind/pkg/binding"
	"github.com/cloudbind/cloudbind/pkg/serializer"
)

func servicesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "services",
		EnableShellCompletion: true,
		Usage:                 "List the bound backing services",
		Description: `Resolve the platform's service bindings and list them as typed descriptors.
Passwords are always redacted in the output.

The listing can be output in JSON, YAML, or table format.

# Examples

List bindings from the CLOUD_SERVICES environment variable:
  cloudbind services

List bindings of one kind from a manifest:
  cloudbind services --source file --path bindings.yaml --label oracle

List bindings from labeled Kubernetes secrets:
  cloudbind services --source kubernetes --namespace my-app`,
		Flags: []cli.Flag{
			sourceFlag,
			pathFlag,
			namespaceFlag,
			kubeconfigFlag,
			skipMalformedFlag,
			&cli.StringFlag{
				Name:  "label",
				Usage: "Only list services of this kind (e.g. oracle, redis)",
			},
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

			var infos []binding.ServiceInfo
			if label := cmd.String("label"); label != "" {
				infos, err = cat.LookupByLabel(ctx, label)
				if err != nil {
					return err
				}
			} else {
				ids, err := cat.IDs(ctx)
				if err != nil {
					return err
				}
				for _, id := range ids {
					info, err := cat.LookupByID(ctx, id)
					if err != nil {
						return err
					}
					infos = append(infos, info)
				}
			}

			slog.Debug("resolved services", slog.Int("count", len(infos)))

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()
			return writer.Serialize(ctx, serializer.Views(infos))
		},
	}
}
