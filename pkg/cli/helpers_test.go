package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/cloudbind/cloudbind/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    serializer.Format
		wantErr bool
	}{
		{input: "json", want: serializer.FormatJSON},
		{input: "YAML", want: serializer.FormatYAML},
		{input: " table ", want: serializer.FormatTable},
		{input: "xml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseOutputFormat(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// runWithFlags parses args against the shared flags and hands the populated
// command to fn, mirroring how the real commands see their flags.
func runWithFlags(t *testing.T, args []string, fn func(cmd *cli.Command) error) error {
	t.Helper()

	var runErr error
	cmd := &cli.Command{
		Name:  "test",
		Flags: []cli.Flag{sourceFlag, pathFlag, namespaceFlag, kubeconfigFlag, skipMalformedFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			runErr = fn(cmd)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return runErr
}

func TestBuildSourceSelection(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantName string
		wantErr  bool
	}{
		{name: "default env", args: nil, wantName: "env"},
		{name: "explicit env", args: []string{"--source", "env"}, wantName: "env"},
		{name: "file with path", args: []string{"--source", "file", "--path", "bindings.yaml"}, wantName: "file"},
		{name: "file without path", args: []string{"--source", "file"}, wantErr: true},
		{name: "dir", args: []string{"--source", "dir"}, wantName: "dir"},
		{name: "kubernetes", args: []string{"--source", "kubernetes"}, wantName: "kubernetes"},
		{name: "all", args: []string{"--source", "all"}, wantName: "multi"},
		{name: "unknown", args: []string{"--source", "consul"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := runWithFlags(t, tc.args, func(cmd *cli.Command) error {
				src, err := buildSource(cmd)
				if err != nil {
					return err
				}
				assert.Equal(t, tc.wantName, src.Name())
				return nil
			})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBuildCatalog(t *testing.T) {
	err := runWithFlags(t, []string{"--skip-malformed"}, func(cmd *cli.Command) error {
		cat, err := buildCatalog(cmd)
		require.NoError(t, err)
		assert.NotNil(t, cat)
		return nil
	})
	assert.NoError(t, err)
}
