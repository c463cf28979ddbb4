package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"

	"github.com/nbr5410/load-planner/internal/plan"
)

type SampleOptions struct {
	Output string

	GlobalOptions
}

func DefaultSampleOptions() *SampleOptions {
	return &SampleOptions{
		Output:        yamlFormat,
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdSample() *cobra.Command {
	o := DefaultSampleOptions()
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a sample plan to start from.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *SampleOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *SampleOptions) Validate(args []string) error {
	if !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

func (o *SampleOptions) Run(ctx context.Context, args []string) error {
	p := plan.Default()

	if o.Output == jsonFormat {
		marshalled, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling plan: %w", err)
		}
		fmt.Fprintf(o.out, "%s\n", string(marshalled))
		return nil
	}

	marshalled, err := plan.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshalling plan: %w", err)
	}
	fmt.Fprintf(o.out, "%s", string(marshalled))
	return nil
}
