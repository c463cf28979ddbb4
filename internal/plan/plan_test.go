package plan_test

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nbr5410/load-planner/internal/plan"
	"github.com/nbr5410/load-planner/internal/sizing"
)

const yamlPlan = `
rooms:
  - name: Kitchen
    type: WET
    area: 10
    perimeter: 13
  - id: 6f1c3c1e-3f0a-4f55-9d43-3f3b1c2e9a10
    name: Bathroom
    type: BATHROOM
    area: 3.5
    perimeter: 7.5
appliances:
  - name: Electric shower
    power: 5500
    voltage: 220
`

var _ = Describe("Plan", func() {
	Context("Submittable", func() {
		It("leaves out rooms without area or perimeter", func() {
			drawn := sizing.Room{ID: uuid.New(), Name: "Drawn", Type: sizing.RoomTypeDry, Area: 9, Perimeter: 12}
			noArea := sizing.Room{ID: uuid.New(), Name: "No area", Type: sizing.RoomTypeDry, Perimeter: 12}
			noPerimeter := sizing.Room{ID: uuid.New(), Name: "No perimeter", Type: sizing.RoomTypeDry, Area: 9}
			shower := plan.NewAppliance("Shower")

			p := plan.New([]sizing.Room{noArea, drawn, noPerimeter}, []sizing.Appliance{shower})
			rooms, appliances := p.Submittable()

			Expect(rooms).To(Equal([]sizing.Room{drawn}))
			Expect(appliances).To(Equal([]sizing.Appliance{shower}))
		})
	})

	It("creates blank rooms and appliances with fresh identifiers", func() {
		room := plan.NewRoom("New room")
		Expect(room.ID).NotTo(Equal(uuid.Nil))
		Expect(room.Type).To(Equal(sizing.RoomTypeDry))

		appliance := plan.NewAppliance("New appliance")
		Expect(appliance.ID).NotTo(Equal(room.ID))
		Expect(appliance.Voltage).To(Equal(sizing.Voltage220))
		Expect(appliance.Power).To(BeZero())
	})

	It("provides a sample apartment", func() {
		p := plan.Default()
		Expect(p.Rooms.Len()).To(Equal(6))
		Expect(p.Appliances.Len()).To(Equal(1))

		rooms, _ := p.Submittable()
		Expect(rooms).To(HaveLen(6))
	})

	Context("Parse", func() {
		It("decodes YAML and assigns missing identifiers", func() {
			p, err := plan.Parse([]byte(yamlPlan))
			Expect(err).To(BeNil())

			rooms := p.Rooms.Items()
			Expect(rooms).To(HaveLen(2))
			Expect(rooms[0].Name).To(Equal("Kitchen"))
			Expect(rooms[0].Type).To(Equal(sizing.RoomTypeWet))
			Expect(rooms[0].ID).NotTo(Equal(uuid.Nil))
			Expect(rooms[1].ID.String()).To(Equal("6f1c3c1e-3f0a-4f55-9d43-3f3b1c2e9a10"))

			appliances := p.Appliances.Items()
			Expect(appliances).To(HaveLen(1))
			Expect(appliances[0].Power).To(Equal(5500.0))
			Expect(appliances[0].Voltage).To(Equal(sizing.Voltage220))
		})

		It("decodes JSON", func() {
			p, err := plan.Parse([]byte(`{"rooms":[{"name":"Hall","type":"DRY","area":4,"perimeter":8}],"appliances":[]}`))
			Expect(err).To(BeNil())
			Expect(p.Rooms.Len()).To(Equal(1))
			Expect(p.Appliances.Len()).To(Equal(0))
		})

		It("rejects unknown fields", func() {
			_, err := plan.Parse([]byte("rooms:\n  - name: Hall\n    size: 4\n"))
			var malformed *plan.ErrMalformedPlan
			Expect(err).To(BeAssignableToTypeOf(malformed))
		})

		It("rejects duplicate identifiers", func() {
			doc := `
rooms:
  - id: 6f1c3c1e-3f0a-4f55-9d43-3f3b1c2e9a10
    name: A
    type: DRY
  - id: 6f1c3c1e-3f0a-4f55-9d43-3f3b1c2e9a10
    name: B
    type: DRY
`
			_, err := plan.Parse([]byte(doc))
			var malformed *plan.ErrMalformedPlan
			Expect(err).To(BeAssignableToTypeOf(malformed))
		})
	})

	Context("Load and Marshal", func() {
		It("round-trips a plan through a file", func() {
			original := plan.Default()
			data, err := plan.Marshal(original)
			Expect(err).To(BeNil())

			path := filepath.Join(GinkgoT().TempDir(), "plan.yaml")
			Expect(os.WriteFile(path, data, 0o600)).To(Succeed())

			loaded, err := plan.Load(path)
			Expect(err).To(BeNil())
			Expect(loaded.Rooms.Items()).To(Equal(original.Rooms.Items()))
			Expect(loaded.Appliances.Items()).To(Equal(original.Appliances.Items()))
		})

		It("fails on a missing file", func() {
			_, err := plan.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(HaveOccurred())
		})
	})
})
