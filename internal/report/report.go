package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/obfm/ncd/internal/compute"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatProm = "prom"
)

// Formats returns every supported format name.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatProm}
}

// Report is a measurement together with what produced it.
type Report struct {
	compute.Result

	Algorithm string
	Level     int
	PathX     string
	PathY     string
}

// Write renders r to w in the given format. diagnostic adds the raw
// compressed sizes to text output; json and prom always include them.
func Write(w io.Writer, format string, diagnostic bool, r Report) error {
	switch format {
	case FormatText, "":
		return writeText(w, diagnostic, r)
	case FormatJSON:
		return writeJSON(w, r)
	case FormatProm:
		return writeProm(w, r)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

func writeText(w io.Writer, diagnostic bool, r Report) error {
	var b strings.Builder
	if diagnostic {
		fmt.Fprintf(&b, "ncBytesXY: %d\n", r.XY)
		fmt.Fprintf(&b, "ncBytesX: %d\n", r.X)
		fmt.Fprintf(&b, "ncBytesY: %d\n", r.Y)
	}
	fmt.Fprintf(&b, "ΔK: %d\n", r.DeltaK)
	fmt.Fprintf(&b, "NCD: %s\n", FormatFloat(r.NCD))
	_, err := io.WriteString(w, b.String())
	return err
}

// jsonReport is the wire shape of the json format.
type jsonReport struct {
	X         string  `json:"x"`
	Y         string  `json:"y"`
	Algorithm string  `json:"algorithm"`
	Level     int     `json:"level"`
	SizeX     int     `json:"size_x"`
	SizeY     int     `json:"size_y"`
	SizeXY    int     `json:"size_xy"`
	DeltaK    int     `json:"delta_k"`
	NCD       float64 `json:"ncd"`
}

func writeJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonReport{
		X:         r.PathX,
		Y:         r.PathY,
		Algorithm: r.Algorithm,
		Level:     r.Level,
		SizeX:     r.X,
		SizeY:     r.Y,
		SizeXY:    r.XY,
		DeltaK:    r.DeltaK,
		NCD:       r.NCD,
	})
}

// FormatFloat renders v the way Python's repr does: shortest round-trip
// digits, positional with at least one fractional digit when the decimal
// exponent is in [-4, 16), scientific with a two-digit exponent otherwise.
func FormatFloat(v float64) string {
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
