package v1alpha1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/nbr5410/load-planner/api/v1alpha1"
	"github.com/nbr5410/load-planner/internal/service"
	"github.com/nbr5410/load-planner/internal/service/report/types"
)

const defaultExportFormat = v1alpha1.ReportFormatXlsx

// (POST /api/v1/reports)
func (h *ServiceHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	p, err := h.decodePlan(w, r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	results, err := h.sizingSrv.Calculate(r.Context(), p)
	if err != nil {
		var invalid *service.ErrInvalidPlan
		if errors.As(err, &invalid) {
			h.badRequest(w, r, err)
			return
		}
		h.internalError(w, r, err)
		return
	}

	render.JSON(w, r, results)
}

// (POST /api/v1/reports/export)
func (h *ServiceHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	params := v1alpha1.ExportParams{Format: v1alpha1.ReportFormat(r.URL.Query().Get("format"))}
	if params.Format == "" {
		params.Format = defaultExportFormat
	}
	if err := h.validator.Struct(params); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p, err := h.decodePlan(w, r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	results, err := h.sizingSrv.Calculate(r.Context(), p)
	if err != nil {
		var invalid *service.ErrInvalidPlan
		if errors.As(err, &invalid) {
			h.badRequest(w, r, err)
			return
		}
		h.internalError(w, r, err)
		return
	}

	exported, err := h.sizingSrv.Export(r.Context(), results, types.ReportFormat(params.Format))
	if err != nil {
		var unsupported *service.ErrUnsupportedFormat
		if errors.As(err, &unsupported) {
			h.badRequest(w, r, err)
			return
		}
		h.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", exported.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exported.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(exported.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(exported.Content)
}
