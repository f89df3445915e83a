package hatch

// Species identifies a supported bird species.
type Species string

const (
	CommonEider Species = "common_eider"
	KingEider   Species = "king_eider"
)

// DefaultShapeConstant is the conventional Kv for ovoid eggs.
const DefaultShapeConstant = 0.507

// Measurement holds the caller-supplied morphometrics of a single egg.
type Measurement struct {
	Length        float64 `json:"length"`         // mm
	Breadth       float64 `json:"breadth"`        // mm
	Mass          float64 `json:"mass"`           // g
	ShapeConstant float64 `json:"shape_constant"` // dimensionless Kv
	Species       Species `json:"species"`
}

// Coefficients of density = A·DBH² + B·DBH + C.
type Coefficients struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Range is a closed interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

func (r Range) Midpoint() float64 { return (r.Min + r.Max) / 2 }

func (r Range) HalfWidth() float64 { return (r.Max - r.Min) / 2 }

// Prediction is the engine output for one measurement.
type Prediction struct {
	DBH            float64      `json:"dbh"`         // days, 2 dp
	EggDensity     float64      `json:"egg_density"` // g/cm³, 4 dp
	EggVolume      float64      `json:"egg_volume"`  // cm³, 2 dp
	Confidence     float64      `json:"confidence"`  // [0.1, 1], 3 dp
	Species        Species      `json:"species"`
	FormulaName    string       `json:"formula_name"`
	FormulaVersion string       `json:"formula_version"`
	Coefficients   Coefficients `json:"coefficients"`
}
