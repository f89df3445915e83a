package measurement

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hatch-dbh/internal/hatch"
)

func ptr(v float64) *float64 { return &v }

func sampleRecords() []Record {
	return []Record{
		{ID: "nest-7a", Length: 72.3, Breadth: 50.2, Mass: 91.89, ShapeConstant: ptr(0.507), Species: "common_eider"},
		{ID: "nest-9c", Length: 66, Breadth: 44, Mass: 70, Species: "king_eider"},
	}
}

func TestDecodeCSV(t *testing.T) {
	in := `id,length,breadth,mass,shape_constant,species
nest-7a,72.3,50.2,91.89,0.507,common_eider
,66,44,70,,king_eider
`
	records, err := Decode(strings.NewReader(in), CSV)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "nest-7a", records[0].ID)
	assert.Equal(t, 72.3, records[0].Length)
	require.NotNil(t, records[0].ShapeConstant)
	assert.Equal(t, 0.507, *records[0].ShapeConstant)

	assert.Equal(t, "row-2", records[1].ID)
	assert.Nil(t, records[1].ShapeConstant)
	assert.Equal(t, "king_eider", records[1].Species)
}

func TestDecodeCSV_HeaderCaseAndOrder(t *testing.T) {
	in := "Species, Mass, Breadth, Length\ncommon_eider, 91.89, 50.2, 72.3\n"
	records, err := Decode(strings.NewReader(in), CSV)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Record{ID: "row-1", Length: 72.3, Breadth: 50.2, Mass: 91.89, Species: "common_eider"}, records[0])
}

func TestDecodeCSV_Errors(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"Empty", "", "header row required"},
		{"MissingColumn", "length,breadth,species\n70,50,common_eider\n", `missing CSV column "mass"`},
		{"BadNumber", "length,breadth,mass,species\n70,wide,90,common_eider\n", `line 2: column "breadth"`},
		{"NaN", "length,breadth,mass,species\nNaN,50,90,common_eider\n", "record row-1: length is not a finite number"},
		{"BadShape", "length,breadth,mass,shape_constant,species\n70,50,90,oval,common_eider\n", `column "shape_constant"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in), CSV)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeJSONAndYAML(t *testing.T) {
	jsonIn := `[{"id":"a","length":72.3,"breadth":50.2,"mass":91.89,"species":"common_eider"},
{"length":66,"breadth":44,"mass":70,"shape_constant":0.5,"species":"king_eider"}]`
	yamlIn := `- id: a
  length: 72.3
  breadth: 50.2
  mass: 91.89
  species: common_eider
- length: 66
  breadth: 44
  mass: 70
  shape_constant: 0.5
  species: king_eider
`
	for _, tc := range []struct {
		format Format
		in     string
	}{{JSON, jsonIn}, {YAML, yamlIn}} {
		t.Run(string(tc.format), func(t *testing.T) {
			records, err := Decode(strings.NewReader(tc.in), tc.format)
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, "a", records[0].ID)
			assert.Nil(t, records[0].ShapeConstant)
			assert.Equal(t, "row-2", records[1].ID)
			require.NotNil(t, records[1].ShapeConstant)
			assert.Equal(t, 0.5, *records[1].ShapeConstant)
		})
	}
}

func TestDecodeYAML_Empty(t *testing.T) {
	records, err := Decode(strings.NewReader(""), YAML)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"eggs.csv", "eggs.json", "eggs.yaml", "eggs.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, sampleRecords()))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, sampleRecords(), got)
		})
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eggs.xlsx")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported measurement file")
}

func TestLoad_ErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eggs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestEncodeCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, CSV, sampleRecords()))
	assert.Equal(t, `id,length,breadth,mass,shape_constant,species
nest-7a,72.3,50.2,91.89,0.507,common_eider
nest-9c,66,44,70,,king_eider
`, buf.String())
}

func TestMeasurements(t *testing.T) {
	ms := Measurements(sampleRecords(), 0.5)
	require.Len(t, ms, 2)
	assert.Equal(t, hatch.Measurement{Length: 72.3, Breadth: 50.2, Mass: 91.89, ShapeConstant: 0.507, Species: hatch.CommonEider}, ms[0])
	assert.Equal(t, 0.5, ms[1].ShapeConstant)
	assert.Equal(t, hatch.KingEider, ms[1].Species)
}

func TestDecodeYAML_NonFinite(t *testing.T) {
	_, err := Decode(strings.NewReader("- {length: .inf, breadth: 50, mass: 90, species: common_eider}\n"), YAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length is not a finite number")
}
