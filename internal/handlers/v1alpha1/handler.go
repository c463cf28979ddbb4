package v1alpha1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/nbr5410/load-planner/api/v1alpha1"
	"github.com/nbr5410/load-planner/internal/handlers/v1alpha1/mappers"
	"github.com/nbr5410/load-planner/internal/handlers/validator"
	"github.com/nbr5410/load-planner/internal/plan"
	"github.com/nbr5410/load-planner/internal/service"
	"github.com/nbr5410/load-planner/pkg/requestid"
)

const maxBodyBytes = 1 << 20

type ServiceHandler struct {
	sizingSrv *service.SizingService
	validator *validator.Validator
}

func NewServiceHandler(sizingSrv *service.SizingService) *ServiceHandler {
	formats := make([]string, 0, len(sizingSrv.Formats()))
	for _, f := range sizingSrv.Formats() {
		formats = append(formats, string(f))
	}

	v := validator.NewValidator()
	v.Register(validator.NewReportValidationRules(formats)...)

	return &ServiceHandler{
		sizingSrv: sizingSrv,
		validator: v,
	}
}

// Routes mounts the API on r.
func (h *ServiceHandler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", h.GetInfo)
		r.Get("/plans/default", h.GetDefaultPlan)
		r.Post("/reports", h.CreateReport)
		r.Post("/reports/export", h.ExportReport)
	})
}

// decodePlan reads, validates and maps the plan in the request body.
func (h *ServiceHandler) decodePlan(w http.ResponseWriter, r *http.Request) (plan.Plan, error) {
	var body v1alpha1.Plan
	if err := render.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), &body); err != nil {
		return plan.Plan{}, fmt.Errorf("malformed request body: %w", err)
	}
	if err := h.validator.Struct(body); err != nil {
		return plan.Plan{}, err
	}
	return mappers.PlanFromApi(body)
}

func (h *ServiceHandler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	resp := v1alpha1.Error{Message: err.Error(), RequestId: requestIDPtr(r)}

	var invalid *service.ErrInvalidPlan
	if errors.As(err, &invalid) {
		resp.Problems = invalid.Problems
	}

	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, resp)
}

func (h *ServiceHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	zap.S().Named("handler").Errorw("request failed", "request_id", requestid.FromRequest(r), "error", err)

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, v1alpha1.Error{Message: "internal error", RequestId: requestIDPtr(r)})
}

func requestIDPtr(r *http.Request) *string {
	id := requestid.FromRequest(r)
	if id == "" {
		return nil
	}
	return &id
}
