package measurement

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Format is a measurement file encoding.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported measurement file %q: want .csv, .json, .yaml or .yml", path)
}

func rowID(i int) string {
	return "row-" + strconv.Itoa(i+1)
}
