package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/convsim/internal/conv"
)

// ExportData is the JSON shape of a full convolution curve.
type ExportData struct {
	Mode      string    `json:"mode"`
	X         string    `json:"x"`
	H         string    `json:"h"`
	Points    int       `json:"points"`
	Truncated bool      `json:"truncated"`
	Shifts    []float64 `json:"shifts"`
	Values    []float64 `json:"values"`
}

func buildExport(mode, x, h string, res conv.Result) ExportData {
	return ExportData{
		Mode:      mode,
		X:         x,
		H:         h,
		Points:    len(res.Values),
		Truncated: res.Truncated,
		Shifts:    res.Grid,
		Values:    res.Values,
	}
}

func ExportJSON(path string, mode, x, h string, res conv.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, mode, x, h, res)
}

func ExportJSONStdout(mode, x, h string, res conv.Result) error {
	return writeJSON(os.Stdout, mode, x, h, res)
}

func writeJSON(w io.Writer, mode, x, h string, res conv.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExport(mode, x, h, res))
}

// ExportCSV writes the curve as a two-column shift,value table.
func ExportCSV(path string, res conv.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"shift", "value"}); err != nil {
		return err
	}
	for i, v := range res.Values {
		row := []string{
			strconv.FormatFloat(res.Grid[i], 'f', 6, 64),
			strconv.FormatFloat(v, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
