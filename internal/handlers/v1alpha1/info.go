package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/nbr5410/load-planner/api/v1alpha1"
	"github.com/nbr5410/load-planner/internal/handlers/v1alpha1/mappers"
	"github.com/nbr5410/load-planner/pkg/version"
)

// (GET /health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, v1alpha1.Status{Status: "ok"})
}

// (GET /api/v1/info)
func (h *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, mappers.InfoToApi(version.Get()))
}
