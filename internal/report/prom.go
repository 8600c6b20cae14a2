package report

import (
	"fmt"
	"io"
	"strconv"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Metric names written by the prom format.
const (
	MetricNCD        = "ncd_normalized_compression_distance"
	MetricDeltaK     = "ncd_complexity_delta_bytes"
	MetricCompressed = "ncd_compressed_bytes"
)

func writeProm(w io.Writer, r Report) error {
	base := []*dto.LabelPair{
		label("algorithm", r.Algorithm),
		label("level", strconv.Itoa(r.Level)),
		label("x", r.PathX),
		label("y", r.PathY),
	}

	families := []*dto.MetricFamily{
		gaugeFamily(MetricNCD,
			"Normalized compression distance between x and y.",
			gauge(r.NCD, base)),
		gaugeFamily(MetricDeltaK,
			"Compressed size of y minus compressed size of x.",
			gauge(float64(r.DeltaK), base)),
		gaugeFamily(MetricCompressed,
			"Compressed size of each input and of their concatenation.",
			gauge(float64(r.X), withLabel(base, "input", "x")),
			gauge(float64(r.Y), withLabel(base, "input", "y")),
			gauge(float64(r.XY), withLabel(base, "input", "xy")),
		),
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("report: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func label(name, value string) *dto.LabelPair {
	return &dto.LabelPair{Name: proto.String(name), Value: proto.String(value)}
}

// withLabel returns a copy of base with one extra label appended.
func withLabel(base []*dto.LabelPair, name, value string) []*dto.LabelPair {
	out := make([]*dto.LabelPair, 0, len(base)+1)
	out = append(out, base...)
	return append(out, label(name, value))
}

func gauge(v float64, labels []*dto.LabelPair) *dto.Metric {
	return &dto.Metric{
		Label: labels,
		Gauge: &dto.Gauge{Value: proto.Float64(v)},
	}
}

func gaugeFamily(name, help string, metrics ...*dto.Metric) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_GAUGE.Enum(),
		Metric: metrics,
	}
}
