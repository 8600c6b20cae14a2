package check

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/obfm/ncd/internal/compute"
)

// ErrInvalidCondition is returned by Parse for a malformed expression.
var ErrInvalidCondition = errors.New("invalid condition")

// Check is a parsed, named condition.
type Check struct {
	Name      string
	Field     string
	Op        string
	Threshold float64
}

// Failure describes a check whose condition did not hold.
type Failure struct {
	Check Check
	Value float64
}

func (f Failure) String() string {
	return fmt.Sprintf("check %q failed: %s = %v, want %s %v",
		f.Check.Name, f.Check.Field, f.Value, f.Check.Op, f.Check.Threshold)
}

// Parse validates expr and returns a Check. name defaults to expr.
func Parse(name, expr string) (Check, error) {
	parts := strings.Fields(expr)
	if len(parts) != 3 {
		return Check{}, fmt.Errorf("check: %w %q: want \"field op value\"", ErrInvalidCondition, expr)
	}
	field, op, rhs := parts[0], parts[1], parts[2]

	if _, ok := fieldValue(field, compute.Result{}); !ok {
		return Check{}, fmt.Errorf("check: %w %q: unknown field %q", ErrInvalidCondition, expr, field)
	}
	if _, ok := compareFloat(0, op, 0); !ok {
		return Check{}, fmt.Errorf("check: %w %q: unknown operator %q", ErrInvalidCondition, expr, op)
	}
	threshold, err := strconv.ParseFloat(rhs, 64)
	if err != nil {
		return Check{}, fmt.Errorf("check: %w %q: value: %w", ErrInvalidCondition, expr, err)
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return Check{}, fmt.Errorf("check: %w %q: value must be finite", ErrInvalidCondition, expr)
	}

	if name == "" {
		name = expr
	}
	return Check{Name: name, Field: field, Op: op, Threshold: threshold}, nil
}

// Holds reports whether the condition is true for res, and the field value.
func (c Check) Holds(res compute.Result) (bool, float64) {
	v, _ := fieldValue(c.Field, res)
	ok, _ := compareFloat(v, c.Op, c.Threshold)
	return ok, v
}

// Evaluate runs every check against res and returns the ones that did not hold.
func Evaluate(checks []Check, res compute.Result) []Failure {
	var failed []Failure
	for _, c := range checks {
		if ok, v := c.Holds(res); !ok {
			failed = append(failed, Failure{Check: c, Value: v})
		}
	}
	return failed
}

// fieldValue maps a field name to its value in res.
func fieldValue(field string, res compute.Result) (float64, bool) {
	switch field {
	case "ncd":
		return res.NCD, true
	case "delta_k":
		return float64(res.DeltaK), true
	case "size_x":
		return float64(res.X), true
	case "size_y":
		return float64(res.Y), true
	case "size_xy":
		return float64(res.XY), true
	default:
		return 0, false
	}
}

// compareFloat applies op; the second result is false for an unknown operator.
func compareFloat(v float64, op string, threshold float64) (bool, bool) {
	switch op {
	case ">":
		return v > threshold, true
	case ">=":
		return v >= threshold, true
	case "<":
		return v < threshold, true
	case "<=":
		return v <= threshold, true
	case "==":
		return v == threshold, true
	case "!=":
		return v != threshold, true
	default:
		return false, false
	}
}
