package ui

import (
	"image/color"
	"math"
	"testing"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/fire"
)

func TestPanelLinesFromFireParameters(t *testing.T) {
	w := fire.New(16)
	lines := PanelLines(w.Parameters())
	if len(lines) == 0 || !lines[0].Header || lines[0].Text != "Grid" {
		t.Fatalf("expected Grid header first, got %+v", lines)
	}
	want := map[string]bool{
		"Grid size: 16":                false,
		"Wind speed (m/s): 5":          false,
		"Base spread probability: 0.3": false,
		"strongest spread towards NE":  false,
	}
	headers := 0
	for _, l := range lines {
		if l.Header {
			headers++
		}
		if _, ok := want[l.Text]; ok {
			want[l.Text] = true
		}
	}
	if headers != 3 {
		t.Fatalf("expected 3 group headers, got %d", headers)
	}
	for text, seen := range want {
		if !seen {
			t.Errorf("missing panel line %q", text)
		}
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		p    core.Parameter
		want string
	}{
		{core.Parameter{Type: core.ParamTypeFloat, Value: "0.30000000000000004"}, "0.3"},
		{core.Parameter{Type: core.ParamTypeFloat, Value: "45"}, "45"},
		{core.Parameter{Type: core.ParamTypeFloat, Value: "bogus"}, "bogus"},
		{core.Parameter{Type: core.ParamTypeInt, Value: "64"}, "64"},
		{core.Parameter{Type: core.ParamTypeBool, Value: "true"}, "true"},
	}
	for _, tc := range cases {
		if got := formatValue(tc.p); got != tc.want {
			t.Errorf("formatValue(%q) = %q, want %q", tc.p.Value, got, tc.want)
		}
	}
}

func TestFillMask(t *testing.T) {
	buf := make([]byte, 12)
	tint := color.RGBA{R: 200, G: 100, B: 0}
	if !FillMask(buf, []float64{0, 1, 2}, tint) {
		t.Fatal("FillMask rejected a buffer of the right size")
	}
	for i := 0; i < 4; i++ {
		if buf[i] != 0 {
			t.Fatalf("zero intensity should be transparent, got %v", buf[:4])
		}
	}
	if buf[4] != 200 || buf[5] != 100 || buf[6] != 0 || buf[7] != 140 {
		t.Fatalf("full intensity pixel = %v", buf[4:8])
	}
	for i := 0; i < 4; i++ {
		if buf[8+i] != buf[4+i] {
			t.Fatalf("intensity above 1 should clamp, got %v vs %v", buf[8:12], buf[4:8])
		}
	}
	if FillMask(make([]byte, 4), []float64{1, 1}, tint) {
		t.Fatal("FillMask should reject a short buffer")
	}
}

func TestWindArrowFollowsFireWind(t *testing.T) {
	cfg := fire.DefaultConfig()
	cfg.Params.GridSize = 8
	cfg.Params.WindSpeed = 20
	cfg.Params.WindDirection = 90
	w, err := fire.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	vx, vy := w.WindVector()
	a, ok := windArrow(50, 50, vx, vy, 40)
	if !ok {
		t.Fatal("expected an arrow for a 20 m/s wind")
	}
	if a.tipX <= a.tailX || math.Abs(a.tipY-a.tailY) > 1e-9 {
		t.Fatalf("easterly bearing should point right, got tail (%.2f,%.2f) tip (%.2f,%.2f)", a.tailX, a.tailY, a.tipX, a.tipY)
	}
	if math.Abs((a.tipX-a.tailX)-40) > 1e-9 {
		t.Fatalf("full strength arrow should span 40px, got %.3f", a.tipX-a.tailX)
	}
	if _, ok := windArrow(0, 0, 0.01, 0, 40); ok {
		t.Fatal("calm air should not draw an arrow")
	}
}
