package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/kinwave/internal/wave"
)

func testParams() wave.Params {
	return wave.Params{
		Length: 500, Spacing: 100, TimeStep: 10,
		UpstreamDepth: 1, UpstreamDischarge: 10,
		DownstreamDepth: 0.5,
	}
}

func testProfile(t *testing.T) *wave.Profile {
	t.Helper()
	prof, err := wave.Solve(testParams())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	return prof
}

func TestWriteCSV(t *testing.T) {
	prof := testProfile(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, prof); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}

	if len(records) != prof.Len()+1 {
		t.Fatalf("expected %d records, got %d", prof.Len()+1, len(records))
	}
	if strings.Join(records[0], ",") != "distance_m,depth_m,discharge_m3s" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "0.000000" || records[1][1] != "1.000000" || records[1][2] != "10.000000" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	last := records[len(records)-1]
	if last[0] != "500.000000" || last[1] != "0.500000" || last[2] != "0.000000" {
		t.Errorf("unexpected last row: %v", last)
	}
}

func TestWriteJSON(t *testing.T) {
	prof := testProfile(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, testParams(), prof, map[string]float64{"depth_max": 1}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if data.Cells != 5 {
		t.Errorf("expected 5 cells, got %d", data.Cells)
	}
	if data.Params.TimeStep != 10 {
		t.Errorf("expected time step 10, got %v", data.Params.TimeStep)
	}
	if len(data.Depth) != 5 || data.Depth[4] != 0.5 {
		t.Errorf("unexpected depth: %v", data.Depth)
	}
	if data.Metrics["depth_max"] != 1 {
		t.Errorf("expected metric to survive, got %v", data.Metrics)
	}
}

func TestWriteSVG(t *testing.T) {
	prof := testProfile(t)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, prof, 800, 400); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"<svg", "Kinematic Wave Equation", "Distance (m)", "Water depth (m)", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if n := strings.Count(out, " L"); n < prof.Len()-1 {
		t.Errorf("expected at least %d segments, got %d", prof.Len()-1, n)
	}
}

func TestWriteSVGEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, &wave.Profile{}, 800, 400); err == nil {
		t.Error("expected error for empty profile")
	}
}
