package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/nbr5410/load-planner/pkg/version"
)

type VersionOptions struct {
	GlobalOptions

	Output string
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		Output: "",
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print Planner version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *VersionOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Output format. One of: (json, yaml).")
}

func (o *VersionOptions) Run(ctx context.Context, args []string) error {
	versionInfo := version.Get()
	switch o.Output {
	case jsonFormat:
		marshalled, err := json.Marshal(versionInfo)
		if err != nil {
			return err
		}
		fmt.Fprintf(o.out, "%s\n", marshalled)
	case yamlFormat:
		marshalled, err := yaml.Marshal(versionInfo)
		if err != nil {
			return err
		}
		fmt.Fprintf(o.out, "%s", marshalled)
	default:
		fmt.Fprintf(o.out, "Planner Version: %s\n", versionInfo.String())
	}
	return nil
}
