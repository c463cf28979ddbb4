package service

import (
	"fmt"
	"strings"

	"github.com/nbr5410/load-planner/internal/service/report/types"
)

// ErrInvalidPlan lists the problems that kept a plan from being calculated.
type ErrInvalidPlan struct {
	error
	Problems []string
}

func NewErrInvalidPlan(problems []string) *ErrInvalidPlan {
	return &ErrInvalidPlan{
		error:    fmt.Errorf("invalid plan: %s", strings.Join(problems, "; ")),
		Problems: problems,
	}
}

type ErrUnsupportedFormat struct {
	error
}

func NewErrUnsupportedFormat(format types.ReportFormat, supported []types.ReportFormat) *ErrUnsupportedFormat {
	return &ErrUnsupportedFormat{fmt.Errorf("unsupported report format %q, expected one of %v", string(format), supported)}
}

type ErrMissingResults struct {
	error
}

func NewErrMissingResults() *ErrMissingResults {
	return &ErrMissingResults{fmt.Errorf("no calculation results to export")}
}
