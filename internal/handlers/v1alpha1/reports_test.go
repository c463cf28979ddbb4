package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nbr5410/load-planner/api/v1alpha1"
	handlers "github.com/nbr5410/load-planner/internal/handlers/v1alpha1"
	"github.com/nbr5410/load-planner/internal/service"
	"github.com/nbr5410/load-planner/internal/sizing"
	"github.com/nbr5410/load-planner/pkg/middleware"
)

const apartmentBody = `{
  "rooms": [
    {"name": "Living/Dining Room", "type": "DRY", "area": 20, "perimeter": 18},
    {"name": "Kitchen", "type": "WET", "area": 10, "perimeter": 13},
    {"name": "Service Area", "type": "WET", "area": 4, "perimeter": 8},
    {"name": "Bedroom 1", "type": "DRY", "area": 12, "perimeter": 14},
    {"name": "Bedroom 2", "type": "DRY", "area": 9, "perimeter": 12},
    {"name": "Bathroom", "type": "BATHROOM", "area": 3.5, "perimeter": 7.5}
  ],
  "appliances": [
    {"name": "Electric shower", "power": 5500, "voltage": 220}
  ]
}`

var _ = Describe("report handlers", func() {
	var router chi.Router

	BeforeEach(func() {
		router = chi.NewRouter()
		router.Use(middleware.RequestID)
		handlers.NewServiceHandler(service.NewSizingService()).Routes(router)
	})

	do := func(method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	Context("health and info", func() {
		It("reports healthy", func() {
			rec := do(http.MethodGet, "/health", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"ok"`))
		})

		It("returns the version", func() {
			rec := do(http.MethodGet, "/api/v1/info", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var info v1alpha1.Info
			Expect(json.Unmarshal(rec.Body.Bytes(), &info)).To(Succeed())
			Expect(info.VersionName).ToNot(BeEmpty())
		})
	})

	Context("default plan", func() {
		It("returns the sample apartment with ids", func() {
			rec := do(http.MethodGet, "/api/v1/plans/default", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var p v1alpha1.Plan
			Expect(json.Unmarshal(rec.Body.Bytes(), &p)).To(Succeed())
			Expect(p.Rooms).To(HaveLen(6))
			Expect(p.Rooms[0].Id).ToNot(BeNil())
			Expect(p.Appliances).To(HaveLen(1))
		})
	})

	Context("create report", func() {
		It("sizes the installation", func() {
			rec := do(http.MethodPost, "/api/v1/reports", apartmentBody)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var results sizing.CalculationResults
			Expect(json.Unmarshal(rec.Body.Bytes(), &results)).To(Succeed())
			Expect(results.Rooms).To(HaveLen(6))
			Expect(results.Summary.TotalInstalledVA).To(Equal(11880.0))
			Expect(results.Summary.DemandedPowerVA).To(Equal(8498.6))
			Expect(results.Summary.MainCircuit.BreakerA).To(Equal(40))
			Expect(results.Appliances[0].Circuit.CableMM2).To(Equal("4.0 mm²"))
		})

		It("keeps the ids sent by the client", func() {
			id := uuid.New()
			body := `{"rooms":[{"id":"` + id.String() + `","name":"Office","type":"DRY","area":9,"perimeter":12}],"appliances":[]}`

			rec := do(http.MethodPost, "/api/v1/reports", body)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var results sizing.CalculationResults
			Expect(json.Unmarshal(rec.Body.Bytes(), &results)).To(Succeed())
			Expect(results.Rooms[0].ID).To(Equal(id))
		})

		It("returns an empty report for an empty plan", func() {
			rec := do(http.MethodPost, "/api/v1/reports", `{"rooms":[],"appliances":[]}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"cableMM2":"N/A"`))
		})

		It("rejects a malformed body", func() {
			rec := do(http.MethodPost, "/api/v1/reports", `{"rooms":`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var apiErr v1alpha1.Error
			Expect(json.Unmarshal(rec.Body.Bytes(), &apiErr)).To(Succeed())
			Expect(apiErr.RequestId).ToNot(BeNil())
			Expect(*apiErr.RequestId).To(Equal(rec.Header().Get(middleware.RequestIDHeader)))
		})

		It("accepts a blank room name", func() {
			rec := do(http.MethodPost, "/api/v1/reports", `{"rooms":[{"name":" ","type":"DRY","area":9,"perimeter":12}]}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"totalLightingVA":160`))
		})

		It("rejects an overlong room name", func() {
			body := `{"rooms":[{"name":"` + strings.Repeat("a", 101) + `","type":"DRY","area":9,"perimeter":12}]}`
			rec := do(http.MethodPost, "/api/v1/reports", body)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("rooms[0].name"))
		})

		It("rejects oversized measures", func() {
			rec := do(http.MethodPost, "/api/v1/reports", `{"rooms":[{"name":"Hall","type":"DRY","area":1e30,"perimeter":1e30}]}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var apiErr v1alpha1.Error
			Expect(json.Unmarshal(rec.Body.Bytes(), &apiErr)).To(Succeed())
			Expect(apiErr.Problems).To(HaveLen(2))
		})

		It("lists every problem of an invalid plan", func() {
			body := `{"rooms":[{"name":"Garage","type":"GARAGE","area":9,"perimeter":12}],` +
				`"appliances":[{"name":"Oven","power":-1,"voltage":220}]}`

			rec := do(http.MethodPost, "/api/v1/reports", body)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var apiErr v1alpha1.Error
			Expect(json.Unmarshal(rec.Body.Bytes(), &apiErr)).To(Succeed())
			Expect(apiErr.Problems).To(HaveLen(2))
		})

		It("rejects duplicate ids", func() {
			id := uuid.New().String()
			body := `{"rooms":[{"id":"` + id + `","name":"A","type":"DRY","area":9,"perimeter":12},` +
				`{"id":"` + id + `","name":"B","type":"DRY","area":9,"perimeter":12}]}`

			rec := do(http.MethodPost, "/api/v1/reports", body)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("export report", func() {
		It("downloads a spreadsheet by default", func() {
			rec := do(http.MethodPost, "/api/v1/reports/export", apartmentBody)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
			Expect(rec.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="electrical-quantities.xlsx"`))
			Expect(bytes.HasPrefix(rec.Body.Bytes(), []byte("PK"))).To(BeTrue())
		})

		It("downloads a csv file", func() {
			rec := do(http.MethodPost, "/api/v1/reports/export?format=csv", apartmentBody)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(HavePrefix("text/csv"))
			Expect(rec.Body.String()).To(ContainSubstring("TUE - Electric shower"))
		})

		It("rejects an unsupported format", func() {
			rec := do(http.MethodPost, "/api/v1/reports/export?format=pdf", apartmentBody)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("format"))
		})
	})
})
