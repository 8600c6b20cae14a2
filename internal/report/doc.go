// Package report renders a measurement to an io.Writer.
//
// Formats:
//   - text: the two result lines "ΔK: <int>" and "NCD: <float>". With the
//     diagnostic flag the three compressed sizes are printed first as
//     ncBytesXY, ncBytesX and ncBytesY.
//   - json: one object per measurement, including the codec identity and the
//     input paths.
//   - prom: Prometheus text exposition built with prometheus/common/expfmt,
//     suitable for the node_exporter textfile collector.
//
// Floats in text output use the shortest representation that round-trips and
// always carry a decimal point, so 0 prints as "0.0".
package report
