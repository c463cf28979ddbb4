package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nbr5410/load-planner/internal/plan"
	"github.com/nbr5410/load-planner/internal/service"
	"github.com/nbr5410/load-planner/internal/sizing"
)

type GlobalOptions struct {
	PlanFile         string
	MainVoltage      int
	ApplianceMinimum float64

	out io.Writer
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		MainVoltage:      int(sizing.DefaultMainVoltage),
		ApplianceMinimum: float64(sizing.DedicatedCircuitCable),
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.PlanFile, "file", "f", o.PlanFile, "Plan file (YAML or JSON). The sample apartment is used when omitted.")
	fs.IntVar(&o.MainVoltage, "main-voltage", o.MainVoltage, "Voltage of the main service circuit.")
	fs.Float64Var(&o.ApplianceMinimum, "appliance-min-cable", o.ApplianceMinimum, "Smallest conductor (mm²) of a dedicated appliance circuit.")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return sizing.ValidateSettings(sizing.Voltage(o.MainVoltage), sizing.Cable(o.ApplianceMinimum))
}

// Plan loads the plan file, or the sample plan when no file was given.
func (o *GlobalOptions) Plan() (plan.Plan, error) {
	if o.PlanFile == "" {
		return plan.Default(), nil
	}
	return plan.Load(o.PlanFile)
}

func (o *GlobalOptions) Service() *service.SizingService {
	return service.NewSizingService(
		service.WithMainVoltage(sizing.Voltage(o.MainVoltage)),
		service.WithApplianceMinimumCable(sizing.Cable(o.ApplianceMinimum)),
	)
}
