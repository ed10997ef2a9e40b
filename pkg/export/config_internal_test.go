package export

import (
	"math"
	"testing"
)

func TestParseLengthInches(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "10mm", want: 10 / 25.4},
		{in: "10", want: 10 / 25.4},
		{in: " 1cm ", want: 1 / 2.54},
		{in: "0.5in", want: 0.5},
		{in: "72pt", want: 1},
		{in: "96px", want: 1},
		{in: "10em", wantErr: true},
		{in: "-1mm", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLengthInches(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				if KindFromError(err) != KindValidation {
					t.Fatalf("kind = %q", KindFromError(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrintParams(t *testing.T) {
	cfg := DefaultConfig()
	params, err := printParams(cfg)
	if err != nil {
		t.Fatalf("print params: %v", err)
	}
	if params.PaperWidth != 8.27 || params.PaperHeight != 11.69 {
		t.Fatalf("paper = %vx%v", params.PaperWidth, params.PaperHeight)
	}
	margin := 10 / 25.4
	for name, got := range map[string]float64{
		"top":    params.MarginTop,
		"bottom": params.MarginBottom,
		"left":   params.MarginLeft,
		"right":  params.MarginRight,
	} {
		if math.Abs(got-margin) > 1e-9 {
			t.Fatalf("margin %s = %v", name, got)
		}
	}
	if !params.PrintBackground || params.Scale != 1 {
		t.Fatalf("unexpected params: %+v", params)
	}

	cfg.Orientation = "landscape"
	params, err = printParams(cfg)
	if err != nil {
		t.Fatalf("print params: %v", err)
	}
	if params.PaperWidth != 11.69 || params.PaperHeight != 8.27 {
		t.Fatalf("landscape paper = %vx%v", params.PaperWidth, params.PaperHeight)
	}
}

func TestAllocatorOptionsFromArgs(t *testing.T) {
	got := allocatorOptionsFromArgs([]string{"--no-sandbox", " ", "window-size=800,600"})
	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %d", len(got))
	}
}
