package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	"github.com/nbr5410/load-planner/internal/sizing"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

type CalculateOptions struct {
	GlobalOptions

	Output string
}

func DefaultCalculateOptions() *CalculateOptions {
	return &CalculateOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdCalculate() *cobra.Command {
	o := DefaultCalculateOptions()
	cmd := &cobra.Command{
		Use:   "calculate [-f PLAN]",
		Short: "Size the lighting, outlets and circuits of a plan.",
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

func (o *CalculateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s). Defaults to a table.", strings.Join(legalOutputTypes, ", ")))
}

func (o *CalculateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *CalculateOptions) Run(ctx context.Context, args []string) error {
	p, err := o.Plan()
	if err != nil {
		return err
	}

	results, err := o.Service().Calculate(ctx, p)
	if err != nil {
		return fmt.Errorf("calculating plan: %w", err)
	}

	switch o.Output {
	case jsonFormat:
		marshalled, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling results: %w", err)
		}
		fmt.Fprintf(o.out, "%s\n", string(marshalled))
		return nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("marshalling results: %w", err)
		}
		fmt.Fprintf(o.out, "%s", string(marshalled))
		return nil
	default:
		return printTable(o.out, results)
	}
}

func printTable(out io.Writer, results *sizing.CalculationResults) error {
	w := tabwriter.NewWriter(out, 0, 8, 1, '\t', 0)

	fmt.Fprintln(w, "ROOM\tLIGHTING POINTS\tLIGHTING (VA)\tOUTLETS\tOUTLETS (VA)")
	for _, r := range results.Rooms {
		fmt.Fprintf(w, "%s\t%d\t%v\t%d\t%v\n", r.Name, r.Lighting.Quantity, r.Lighting.PowerVA, r.Tugs.Quantity, r.Tugs.PowerVA)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CIRCUIT\tPOWER (VA)\tCURRENT (A)\tCABLE\tBREAKER (A)")
	mainCircuit := results.Summary.MainCircuit
	fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%s\t%d\n", "Main", results.Summary.DemandedPowerVA, mainCircuit.CurrentA, mainCircuit.CableMM2, mainCircuit.BreakerA)
	for _, a := range results.Appliances {
		fmt.Fprintf(w, "TUE - %s\t%.2f\t%.2f\t%s\t%d\n", a.Name, a.Circuit.PowerVA, a.Circuit.CurrentA, a.Circuit.CableMM2, a.Circuit.BreakerA)
	}
	fmt.Fprintln(w)

	s := results.Summary
	fmt.Fprintf(w, "Total installed power:\t%v VA\n", s.TotalInstalledVA)
	fmt.Fprintf(w, "Demanded power:\t%.2f VA\n", s.DemandedPowerVA)

	return w.Flush()
}
