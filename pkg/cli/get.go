package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cloudbind/cloudbind/pkg/serializer"
)

func getCmd() *cli.Command {
	return &cli.Command{
		Name:                  "get",
		EnableShellCompletion: true,
		Usage:                 "Show one bound service by id",
		ArgsUsage:             "<id>",
		Description: `Resolve the platform's service bindings and show the descriptor bound
under the given id. Fails when the id is not bound.

# Examples

  cloudbind get oracle-1
  cloudbind get cache --source dir --format yaml`,
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

			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("missing required argument: <id>")
			}

			outFormat, err := parseOutputFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			cat, err := buildCatalog(cmd)
			if err != nil {
				return err
			}

			info, err := cat.LookupByID(ctx, id)
			if err != nil {
				return err
			}

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()
			return writer.Serialize(ctx, serializer.View(info))
		},
	}
}
