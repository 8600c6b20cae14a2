package codec

import (
	"errors"
	"fmt"
	"io"
	"slices"
)

// Algorithm names accepted by New.
const (
	Bzip2   = "bzip2"
	Gzip    = "gzip"
	Zlib    = "zlib"
	Deflate = "deflate"
	Zstd    = "zstd"
	Brotli  = "brotli"
	XZ      = "xz"
)

// Default codec: zlib at its best compression level. bzip2 and xz round
// short inputs up to the same compressed size, so a one-byte edit to a
// ten-byte file goes unseen by them.
const (
	DefaultAlgorithm = Zlib
	DefaultLevel     = 9
)

var (
	// ErrUnknownAlgorithm is returned by New for an unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrLevelOutOfRange is returned by New when level is outside the
	// algorithm's supported range.
	ErrLevelOutOfRange = errors.New("level out of range")
)

// Codec compresses byte buffers with one fixed algorithm and level.
type Codec interface {
	// Name returns the algorithm name, e.g. "zlib".
	Name() string
	// Level returns the pinned compression level.
	Level() int
	// CompressedSize returns the length of the complete compressed stream
	// for p, trailer included, without keeping the output.
	CompressedSize(p []byte) (int, error)
}

// encodeFunc writes the full compressed stream for p to w, including any
// trailer, and returns once the stream is complete.
type encodeFunc func(w io.Writer, p []byte) error

// levelRange is the inclusive range of levels an algorithm accepts.
type levelRange struct {
	min, max int
}

type factory struct {
	levels levelRange
	build  func(level int) (encodeFunc, error)
}

var registry = map[string]factory{
	Bzip2:   {levelRange{1, 9}, newBzip2},
	Gzip:    {levelRange{1, 9}, newGzip},
	Zlib:    {levelRange{1, 9}, newZlib},
	Deflate: {levelRange{1, 9}, newDeflate},
	Zstd:    {levelRange{1, 22}, newZstd},
	Brotli:  {levelRange{0, 11}, newBrotli},
	XZ:      {levelRange{0, 9}, newXZ},
}

// Algorithms returns the supported algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Levels returns the inclusive level range accepted by algorithm.
func Levels(algorithm string) (lo, hi int, err error) {
	f, ok := registry[algorithm]
	if !ok {
		return 0, 0, fmt.Errorf("codec: %w %q", ErrUnknownAlgorithm, algorithm)
	}
	return f.levels.min, f.levels.max, nil
}

// New returns a Codec for algorithm at level.
func New(algorithm string, level int) (Codec, error) {
	f, ok := registry[algorithm]
	if !ok {
		return nil, fmt.Errorf("codec: %w %q (supported: %v)", ErrUnknownAlgorithm, algorithm, Algorithms())
	}
	if level < f.levels.min || level > f.levels.max {
		return nil, fmt.Errorf("codec: %s: %w: %d not in [%d, %d]",
			algorithm, ErrLevelOutOfRange, level, f.levels.min, f.levels.max)
	}
	enc, err := f.build(level)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", algorithm, err)
	}
	return &codec{name: algorithm, level: level, encode: enc}, nil
}

type codec struct {
	name   string
	level  int
	encode encodeFunc
}

func (c *codec) Name() string { return c.name }
func (c *codec) Level() int   { return c.level }

func (c *codec) CompressedSize(p []byte) (int, error) {
	var cw countingWriter
	if err := c.encode(&cw, p); err != nil {
		return 0, fmt.Errorf("codec: %s: %w", c.name, err)
	}
	return int(cw.n), nil
}

// countingWriter discards everything written to it and records the byte count.
type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}
