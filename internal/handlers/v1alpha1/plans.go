package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/nbr5410/load-planner/internal/handlers/v1alpha1/mappers"
	"github.com/nbr5410/load-planner/internal/plan"
)

// (GET /api/v1/plans/default)
func (h *ServiceHandler) GetDefaultPlan(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, mappers.PlanToApi(plan.Default()))
}
