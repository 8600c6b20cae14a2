package codec

import (
	"io"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// xzDictCap maps a level to the dictionary capacity used by the xz(1)
// presets of the same number.
var xzDictCap = [10]int{
	256 << 10,
	1 << 20,
	2 << 20,
	4 << 20,
	4 << 20,
	8 << 20,
	8 << 20,
	16 << 20,
	32 << 20,
	64 << 20,
}

// streamEncoder wraps a WriteCloser constructor into an encodeFunc. A fresh
// writer is built for every call so no state leaks between inputs.
func streamEncoder(open func(w io.Writer) (io.WriteCloser, error)) encodeFunc {
	return func(w io.Writer, p []byte) error {
		zw, err := open(w)
		if err != nil {
			return err
		}
		if _, err := zw.Write(p); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	}
}

func newBzip2(level int) (encodeFunc, error) {
	cfg := &bzip2.WriterConfig{Level: level}
	return streamEncoder(func(w io.Writer) (io.WriteCloser, error) {
		return bzip2.NewWriter(w, cfg)
	}), nil
}

func newGzip(level int) (encodeFunc, error) {
	return streamEncoder(func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriterLevel(w, level)
	}), nil
}

func newZlib(level int) (encodeFunc, error) {
	return streamEncoder(func(w io.Writer) (io.WriteCloser, error) {
		return zlib.NewWriterLevel(w, level)
	}), nil
}

func newDeflate(level int) (encodeFunc, error) {
	return streamEncoder(func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, level)
	}), nil
}

func newBrotli(level int) (encodeFunc, error) {
	return streamEncoder(func(w io.Writer) (io.WriteCloser, error) {
		return brotli.NewWriterLevel(w, level), nil
	}), nil
}

func newXZ(level int) (encodeFunc, error) {
	cfg := xz.WriterConfig{DictCap: xzDictCap[level]}
	return streamEncoder(func(w io.Writer) (io.WriteCloser, error) {
		return cfg.NewWriter(w)
	}), nil
}

// newZstd builds one single-threaded encoder shared by every call.
// EncodeAll keeps no state between calls. Zero frames are enabled so an
// empty input still produces a frame header instead of zero bytes.
func newZstd(level int) (encodeFunc, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, err
	}
	return func(w io.Writer, p []byte) error {
		_, err := w.Write(enc.EncodeAll(p, nil))
		return err
	}, nil
}
