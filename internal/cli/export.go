package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"

	"github.com/nbr5410/load-planner/internal/service"
	"github.com/nbr5410/load-planner/internal/service/report/types"
)

const stdoutTarget = "-"

var (
	legalReportFormats = []string{string(types.ReportFormatXLSX), string(types.ReportFormatCSV), string(types.ReportFormatHTML)}
)

type ExportOptions struct {
	GlobalOptions

	Format     string
	OutputFile string
}

func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Format:        string(types.ReportFormatXLSX),
	}
}

func NewCmdExport() *cobra.Command {
	o := DefaultExportOptions()
	cmd := &cobra.Command{
		Use:   "export [-f PLAN] [--format FORMAT] [--output FILE]",
		Short: "Export the sizing report of a plan to a file.",
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

func (o *ExportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Format, "format", o.Format, fmt.Sprintf("Report format. One of: (%s).", strings.Join(legalReportFormats, ", ")))
	fs.StringVar(&o.OutputFile, "output", o.OutputFile, "Destination file, or - for stdout. Defaults to electrical-quantities.<format>.")
}

func (o *ExportOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	if o.OutputFile == "" {
		o.OutputFile = service.ReportFileName(types.ReportFormat(o.Format))
	}
	return nil
}

func (o *ExportOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if !funk.Contains(legalReportFormats, o.Format) {
		return fmt.Errorf("report format must be one of %s", strings.Join(legalReportFormats, ", "))
	}

	return nil
}

func (o *ExportOptions) Run(ctx context.Context, args []string) error {
	p, err := o.Plan()
	if err != nil {
		return err
	}

	svc := o.Service()
	results, err := svc.Calculate(ctx, p)
	if err != nil {
		return fmt.Errorf("calculating plan: %w", err)
	}

	exported, err := svc.Export(ctx, results, types.ReportFormat(o.Format))
	if err != nil {
		return fmt.Errorf("exporting report: %w", err)
	}

	if o.OutputFile == stdoutTarget {
		_, err := o.out.Write(exported.Content)
		return err
	}

	if err := os.WriteFile(o.OutputFile, exported.Content, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(o.out, "report written to %s\n", o.OutputFile)
	return nil
}
