package model

// TotalLabel is the label of the aggregate record printed after multiple sources.
const TotalLabel = "total"

// Record holds the counts of one input source. A metric is present only if it
// has been set, so records built for the same requested set always agree on
// which fields they carry.
type Record struct {
	Label   string
	present Metrics
	values  [numMetrics]int
}

func NewRecord(label string) Record {
	return Record{Label: label}
}

// Set stores the value of metric m and marks it as present.
func (r *Record) Set(m Metric, v int) {
	if m >= numMetrics {
		return
	}
	r.present = r.present.With(m)
	r.values[m] = v
}

// Get returns the value of m and whether it is present.
func (r Record) Get(m Metric) (int, bool) {
	if !r.present.Has(m) {
		return 0, false
	}
	return r.values[m], true
}

// Metrics returns the set of present metrics.
func (r Record) Metrics() Metrics {
	return r.present
}

// Add sums every metric present in other into r. A metric absent in r counts
// as zero, metrics absent in other are left untouched.
func (r *Record) Add(other Record) {
	for m := range other.present.All() {
		r.Set(m, r.values[m]+other.values[m])
	}
}
