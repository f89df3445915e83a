package commands

import (
	"github.com/spf13/cobra"

	"hatch-dbh/internal/hatch"
)

// measureFlags binds a single measurement to command-line flags.
type measureFlags struct {
	length, breadth, mass, shapeConstant float64
	species                              string
}

func (f *measureFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.length, "length", 0, "egg length in mm")
	cmd.Flags().Float64Var(&f.breadth, "breadth", 0, "egg breadth in mm")
	cmd.Flags().Float64Var(&f.mass, "mass", 0, "egg mass in g")
	cmd.Flags().Float64Var(&f.shapeConstant, "shape-constant", 0, "shape constant Kv (default $SHAPE_CONSTANT or 0.507)")
	cmd.Flags().StringVar(&f.species, "species", string(hatch.CommonEider), "species tag, see 'hatch-dbh species'")
}

func (f *measureFlags) measurement(cmd *cobra.Command, defaultShape float64) hatch.Measurement {
	kv := defaultShape
	if cmd.Flags().Changed("shape-constant") {
		kv = f.shapeConstant
	}
	return hatch.Measurement{
		Length:        f.length,
		Breadth:       f.breadth,
		Mass:          f.mass,
		ShapeConstant: kv,
		Species:       hatch.Species(f.species),
	}
}
