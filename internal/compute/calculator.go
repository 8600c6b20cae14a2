package compute

import (
	"fmt"
	"log/slog"

	"github.com/obfm/ncd/internal/codec"
)

// Calculator measures pairs of inputs with a single codec.
type Calculator struct {
	codec codec.Codec
}

// NewCalculator returns a Calculator that compresses every buffer with c.
func NewCalculator(c codec.Codec) *Calculator {
	return &Calculator{codec: c}
}

// Codec returns the codec used for every compression.
func (c *Calculator) Codec() codec.Codec {
	return c.codec
}

// Measure compresses x, y and x‖y and returns the derived result.
// Neither x nor y is modified.
func (c *Calculator) Measure(x, y []byte) (Result, error) {
	xy := make([]byte, 0, len(x)+len(y))
	xy = append(xy, x...)
	xy = append(xy, y...)

	var s Sizes
	var err error
	if s.XY, err = c.codec.CompressedSize(xy); err != nil {
		return Result{}, fmt.Errorf("compute: compress x‖y: %w", err)
	}
	if s.X, err = c.codec.CompressedSize(x); err != nil {
		return Result{}, fmt.Errorf("compute: compress x: %w", err)
	}
	if s.Y, err = c.codec.CompressedSize(y); err != nil {
		return Result{}, fmt.Errorf("compute: compress y: %w", err)
	}

	slog.Debug("compute: compressed sizes",
		"algorithm", c.codec.Name(),
		"level", c.codec.Level(),
		"len_x", len(x),
		"len_y", len(y),
		"c_x", s.X,
		"c_y", s.Y,
		"c_xy", s.XY,
	)

	res, err := FromSizes(s)
	if err != nil {
		return res, fmt.Errorf("compute: %w", err)
	}
	return res, nil
}
