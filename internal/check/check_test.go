package check

import (
	"errors"
	"strings"
	"testing"

	"github.com/obfm/ncd/internal/compute"
)

var res = compute.Result{
	Sizes:  compute.Sizes{X: 60, Y: 100, XY: 130},
	DeltaK: 40,
	NCD:    0.7,
}

func TestParse_Valid(t *testing.T) {
	c, err := Parse("", "ncd <= 0.3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Name != "ncd <= 0.3" || c.Field != "ncd" || c.Op != "<=" || c.Threshold != 0.3 {
		t.Errorf("Parse = %+v", c)
	}

	c, err = Parse("small-drift", "delta_k < 64")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Name != "small-drift" {
		t.Errorf("Name = %q, want small-drift", c.Name)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"too few parts":  "ncd <",
		"too many parts": "ncd < 0.3 extra",
		"unknown field":  "entropy > 1",
		"unknown op":     "ncd => 0.3",
		"bad number":     "ncd < low",
		"nan":            "ncd < NaN",
		"infinity":       "ncd != +Inf",
		"neg infinity":   "delta_k > -inf",
		"empty":          "",
	}
	for name, expr := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse("", expr); !errors.Is(err, ErrInvalidCondition) {
				t.Errorf("Parse(%q) err = %v, want ErrInvalidCondition", expr, err)
			}
		})
	}
}

func TestHolds(t *testing.T) {
	tests := []struct {
		expr      string
		wantOK    bool
		wantValue float64
	}{
		{"ncd > 0.5", true, 0.7},
		{"ncd < 0.5", false, 0.7},
		{"ncd >= 0.7", true, 0.7},
		{"ncd <= 0.69", false, 0.7},
		{"delta_k == 40", true, 40},
		{"delta_k != 40", false, 40},
		{"size_x < 61", true, 60},
		{"size_y > 100", false, 100},
		{"size_xy >= 130", true, 130},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			c, err := Parse("", tc.expr)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			ok, v := c.Holds(res)
			if ok != tc.wantOK || v != tc.wantValue {
				t.Errorf("Holds = (%v, %v), want (%v, %v)", ok, v, tc.wantOK, tc.wantValue)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	var checks []Check
	for _, expr := range []string{"ncd < 0.9", "ncd < 0.3", "delta_k <= 10"} {
		c, err := Parse("", expr)
		if err != nil {
			t.Fatalf("Parse(%q): %v", expr, err)
		}
		checks = append(checks, c)
	}

	failed := Evaluate(checks, res)
	if len(failed) != 2 {
		t.Fatalf("Evaluate: %d failures, want 2: %v", len(failed), failed)
	}
	if failed[0].Check.Name != "ncd < 0.3" || failed[0].Value != 0.7 {
		t.Errorf("failed[0] = %+v", failed[0])
	}
	if !strings.Contains(failed[1].String(), "delta_k = 40") {
		t.Errorf("failure message = %q", failed[1].String())
	}
}

func TestEvaluate_NoChecks(t *testing.T) {
	if got := Evaluate(nil, res); len(got) != 0 {
		t.Errorf("Evaluate(nil) = %v, want none", got)
	}
}
