package measurement

import (
	"github.com/google/jsonschema-go/jsonschema"

	"hatch-dbh/internal/hatch"
)

// Schema describes a measurement with the validator's plausibility bands
// and the supported species, for callers that build input forms.
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[hatch.Measurement](nil)
	if err != nil {
		return nil, err
	}
	s.Title = "Egg measurement"
	s.Description = "Morphometrics of a single egg used to predict days before hatching."

	bands := []struct {
		prop, desc string
		band       hatch.Range
	}{
		{"length", "Egg length in millimetres.", hatch.LengthBand},
		{"breadth", "Egg breadth in millimetres.", hatch.BreadthBand},
		{"mass", "Egg mass in grams.", hatch.MassBand},
		{"shape_constant", "Dimensionless shape constant Kv, conventionally 0.507.", hatch.ShapeConstantBand},
	}
	for _, b := range bands {
		p, ok := s.Properties[b.prop]
		if !ok {
			continue
		}
		lo, hi := b.band.Min, b.band.Max
		p.Minimum = &lo
		p.Maximum = &hi
		p.Description = b.desc
	}

	if p, ok := s.Properties["species"]; ok {
		p.Description = "Species whose density regression applies."
		for _, sp := range hatch.AllSpecies() {
			p.Enum = append(p.Enum, string(sp))
		}
	}
	return s, nil
}
