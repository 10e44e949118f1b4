package model

import (
	"iter"
	"strings"
)

// Metric is a single measurable property of a text content. The numeric order
// of the constants is the order in which metrics are rendered.
type Metric uint8

const (
	Lines Metric = iota
	Words
	Bytes
	Chars

	numMetrics
)

var metricNames = [numMetrics]string{
	Lines: "lines",
	Words: "words",
	Bytes: "bytes",
	Chars: "chars",
}

func (m Metric) String() string {
	if m >= numMetrics {
		return "unknown"
	}
	return metricNames[m]
}

// Metrics is a set of requested metrics.
type Metrics uint8

// DefaultMetrics is used when no metric was explicitly requested.
var DefaultMetrics = NewMetrics(Lines, Words, Bytes)

func NewMetrics(ms ...Metric) Metrics {
	var s Metrics
	for _, m := range ms {
		s = s.With(m)
	}
	return s
}

func (s Metrics) With(m Metric) Metrics {
	if m >= numMetrics {
		return s
	}
	return s | 1<<m
}

func (s Metrics) Has(m Metric) bool {
	return m < numMetrics && s&(1<<m) != 0
}

func (s Metrics) IsZero() bool {
	return s == 0
}

// All iterates over metrics in the set in rendering order: lines, words, bytes, chars.
func (s Metrics) All() iter.Seq[Metric] {
	return func(yield func(Metric) bool) {
		for m := range numMetrics {
			if !s.Has(m) {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

func (s Metrics) String() string {
	names := make([]string, 0, numMetrics)
	for m := range s.All() {
		names = append(names, m.String())
	}
	return strings.Join(names, ",")
}
