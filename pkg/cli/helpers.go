package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cloudbind/cloudbind/pkg/catalog"
	"github.com/cloudbind/cloudbind/pkg/source"
)

// buildSource assembles the raw binding source selected by the --source flag.
func buildSource(cmd *cli.Command) (source.Source, error) {
	factory := &source.DefaultFactory{
		Namespace:  cmd.String("namespace"),
		Kubeconfig: cmd.String("kubeconfig"),
	}

	switch cmd.String("source") {
	case "env":
		return factory.CreateEnvSource(), nil
	case "file":
		path := cmd.String("path")
		if path == "" {
			return nil, fmt.Errorf("the file source requires --path")
		}
		return factory.CreateFileSource(path), nil
	case "dir":
		return factory.CreateDirSource(), nil
	case "kubernetes":
		return factory.CreateKubernetesSource(), nil
	case "all":
		sources := []source.Source{factory.CreateEnvSource()}
		if os.Getenv(source.EnvBindingRoot) != "" {
			sources = append(sources, factory.CreateDirSource())
		}
		if path := cmd.String("path"); path != "" {
			sources = append(sources, factory.CreateFileSource(path))
		}
		return source.NewMulti(sources...), nil
	default:
		return nil, fmt.Errorf("unknown binding source %q (supported: env, file, dir, kubernetes, all)",
			cmd.String("source"))
	}
}

// buildCatalog assembles a catalog over the selected source with the
// configured malformed-entry policy.
func buildCatalog(cmd *cli.Command) (*catalog.Catalog, error) {
	src, err := buildSource(cmd)
	if err != nil {
		return nil, err
	}

	var opts []catalog.Option
	if cmd.Bool("skip-malformed") {
		opts = append(opts, catalog.WithSkipMalformed(true))
	}
	return catalog.New(src, opts...), nil
}
