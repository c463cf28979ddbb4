package report

import (
	"slices"

	"github.com/nbr5410/load-planner/internal/service/report/csv"
	"github.com/nbr5410/load-planner/internal/service/report/html"
	"github.com/nbr5410/load-planner/internal/service/report/types"
	"github.com/nbr5410/load-planner/internal/service/report/xlsx"
)

// Registry selects a renderer by report format.
type Registry struct {
	renderers map[types.ReportFormat]types.ReportRenderer
}

func NewRegistry(renderers ...types.ReportRenderer) *Registry {
	r := &Registry{renderers: make(map[types.ReportFormat]types.ReportRenderer, len(renderers))}
	for _, renderer := range renderers {
		r.renderers[renderer.SupportedFormat()] = renderer
	}
	return r
}

// NewDefaultRegistry registers the spreadsheet, CSV and HTML document renderers.
func NewDefaultRegistry() *Registry {
	return NewRegistry(xlsx.NewRenderer(), csv.NewRenderer(), html.NewRenderer())
}

func (r *Registry) Renderer(format types.ReportFormat) (types.ReportRenderer, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, NewErrUnsupportedFormat(format, r.Formats())
	}
	return renderer, nil
}

// Formats returns the registered formats in alphabetical order.
func (r *Registry) Formats() []types.ReportFormat {
	formats := make([]types.ReportFormat, 0, len(r.renderers))
	for format := range r.renderers {
		formats = append(formats, format)
	}
	slices.Sort(formats)
	return formats
}
