// Package codec provides the pinned compressors used as a stand-in for
// Kolmogorov complexity.
//
// A Codec is an algorithm-and-level pair. New(algorithm, level) validates both
// and returns a Codec whose settings never change, so the three compressions
// of one measurement (X, Y and X‖Y) are comparable.
//
// Supported algorithms:
//   - bzip2   (github.com/dsnet/compress/bzip2), levels 1–9
//   - gzip    (github.com/klauspost/compress/gzip), levels 1–9
//   - zlib    (github.com/klauspost/compress/zlib), levels 1–9, default 9
//   - deflate (github.com/klauspost/compress/flate), levels 1–9, raw stream
//   - zstd    (github.com/klauspost/compress/zstd), levels 1–22
//   - brotli  (github.com/andybalholm/brotli), levels 0–11
//   - xz      (github.com/ulikunitz/xz), levels 0–9 select the dictionary size
//
// CompressedSize counts the encoder output without buffering it. Sizes are
// those of the pinned encoder implementation: the bzip2 writer here is not
// libbz2 and emits different sizes for the same input and level, so results
// are only comparable between runs of this tool with the same codec.
package codec
