package stats

import (
	"expvar"
	"iter"
	"maps"
	"slices"

	"github.com/CZERTAINLY/cwc/internal/model"
)

// Stats holds expvar-backed counters of a counting run and publishes them
// under a common key prefix. All counters are expvar.Map and are safe for
// concurrent updates.
//
// - <prefix>_sources_total - input sources processed, stdin included
// - <prefix>_sources_errors - sources which could not be validated or read
// - <prefix>_sources_stdin - number of times stdin was read
// - <prefix>_counts_{lines,words,bytes,chars} - sums of counted metrics
type Stats struct {
	prefix  string
	root    *expvar.Map
	sources *expvar.Map
	counts  *expvar.Map
}

// New publishes new set of metrics. Registering the same metrics twice causes panic, so for tests, the prefix should be unique.
func New(prefix string) *Stats {
	root := expvar.NewMap(prefix)
	sources := new(expvar.Map).Init()
	counts := new(expvar.Map).Init()

	sources.Add("total", 0)
	sources.Add("errors", 0)
	sources.Add("stdin", 0)

	for _, m := range []model.Metric{model.Lines, model.Words, model.Bytes, model.Chars} {
		counts.Add(m.String(), 0)
	}

	root.Set("sources", sources)
	root.Set("counts", counts)

	return &Stats{
		prefix:  prefix,
		root:    root,
		sources: sources,
		counts:  counts,
	}
}

func (s *Stats) IncSources() {
	s.sources.Add("total", 1)
}
func (s *Stats) IncErrSources() {
	s.sources.Add("errors", 1)
}
func (s *Stats) IncStdin() {
	s.sources.Add("stdin", 1)
}

// AddCounts adds every metric present in r to the counted sums.
func (s *Stats) AddCounts(r model.Record) {
	for m := range r.Metrics().All() {
		v, _ := r.Get(m)
		s.counts.Add(m.String(), int64(v))
	}
}

// Stats returns a name, value iterator across registered metrics. This uses expvar.Do under the hood, so is safe to be called concurrently.
// Stats are returned in an alphabetic order.
func (s *Stats) Stats() iter.Seq2[string, string] {
	stats := make(map[string]string, 7)
	s.sources.Do(func(kv expvar.KeyValue) {
		stats["sources_"+kv.Key] = kv.Value.String()
	})
	s.counts.Do(func(kv expvar.KeyValue) {
		stats["counts_"+kv.Key] = kv.Value.String()
	})

	keys := slices.Sorted(maps.Keys(stats))
	return func(yield func(string, string) bool) {
		for _, key := range keys {
			if !yield(s.prefix+"_"+key, stats[key]) {
				return
			}
		}
	}
}
