package report

import (
	"fmt"

	"github.com/nbr5410/load-planner/internal/service/report/types"
)

type ErrUnsupportedFormat struct {
	error
}

func NewErrUnsupportedFormat(format types.ReportFormat, supported []types.ReportFormat) *ErrUnsupportedFormat {
	return &ErrUnsupportedFormat{fmt.Errorf("unsupported report format %q, expected one of %v", string(format), supported)}
}
