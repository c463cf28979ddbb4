package plan

import (
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/nbr5410/load-planner/internal/sizing"
)

// Load reads a plan from a YAML or JSON file.
func Load(path string) (Plan, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, errors.Wrapf(err, "reading plan file %s", path)
	}
	p, err := Parse(contents)
	if err != nil {
		return Plan{}, errors.Wrapf(err, "parsing plan file %s", path)
	}
	return p, nil
}

// Parse decodes a YAML or JSON plan. Rooms and appliances without an identifier get a new one.
func Parse(data []byte) (Plan, error) {
	var doc struct {
		Rooms      []sizing.Room      `json:"rooms"`
		Appliances []sizing.Appliance `json:"appliances"`
	}
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return Plan{}, NewErrMalformedPlan("malformed plan: %v", err)
	}

	return Build(doc.Rooms, doc.Appliances)
}

// Marshal encodes the plan as YAML.
func Marshal(p Plan) ([]byte, error) {
	return yaml.Marshal(p)
}
