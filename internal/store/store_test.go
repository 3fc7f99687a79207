package store

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/convsim/internal/conv"
	"github.com/san-kum/convsim/internal/signal"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New()

	id := st.Save(Record{
		Mode:  "discrete",
		X:     "[1, 2, 1]",
		H:     "[1, 1]",
		Speed: 1,
	})
	if id == "" {
		t.Error("expected non-empty record id")
	}

	rec, ok := st.Load(id)
	if !ok {
		t.Fatalf("load failed for %s", id)
	}
	if rec.Mode != "discrete" {
		t.Errorf("expected mode 'discrete', got '%s'", rec.Mode)
	}
	if rec.X != "[1, 2, 1]" {
		t.Errorf("expected x '[1, 2, 1]', got '%s'", rec.X)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
}

func TestStoreList(t *testing.T) {
	st := New()

	runs := st.List()
	if len(runs) != 0 {
		t.Errorf("expected 0 records, got %d", len(runs))
	}

	first := st.Save(Record{Mode: "continuous", X: "rect(t)", H: "rect(t)"})
	second := st.Save(Record{Mode: "discrete", X: "[1]", H: "[1]"})

	runs = st.List()
	if len(runs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("expected oldest-first order, got %s then %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreDelete(t *testing.T) {
	st := New()
	id := st.Save(Record{Mode: "continuous", X: "u(t)", H: "u(t)"})

	if !st.Delete(id) {
		t.Error("delete of existing record should succeed")
	}
	if st.Delete(id) {
		t.Error("second delete should report missing")
	}
	if st.Len() != 0 {
		t.Errorf("expected empty store, got %d records", st.Len())
	}
}

func sampleResult(t *testing.T) conv.Result {
	t.Helper()
	x, err := signal.ParseSequence("[1, 2, 1]", conv.DefaultIndexWindow)
	if err != nil {
		t.Fatal(err)
	}
	h, err := signal.ParseSequence("[1, 1]", conv.DefaultIndexWindow)
	if err != nil {
		t.Fatal(err)
	}
	return conv.NewDiscrete(x, h, conv.DefaultIndexWindow).Full()
}

func TestExportCSV(t *testing.T) {
	res := sampleResult(t)
	path := filepath.Join(t.TempDir(), "curve.csv")

	if err := ExportCSV(path, res); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != len(res.Values)+1 {
		t.Errorf("expected %d rows, got %d", len(res.Values)+1, len(records))
	}
	if records[0][0] != "shift" || records[0][1] != "value" {
		t.Errorf("unexpected header %v", records[0])
	}
}

func TestExportJSON(t *testing.T) {
	res := sampleResult(t)
	path := filepath.Join(t.TempDir(), "curve.json")

	if err := ExportJSON(path, "discrete", "[1, 2, 1]", "[1, 1]", res); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out ExportData
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Mode != "discrete" {
		t.Errorf("expected mode 'discrete', got '%s'", out.Mode)
	}
	if out.Points != len(res.Values) {
		t.Errorf("expected %d points, got %d", len(res.Values), out.Points)
	}
	if len(out.Shifts) != len(out.Values) {
		t.Errorf("shifts and values lengths differ: %d vs %d", len(out.Shifts), len(out.Values))
	}
}
