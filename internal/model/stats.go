package model

import "iter"

const (
	StatsSourcesTotal = "_sources_total"
	StatsErrSources   = "_sources_errors"
	StatsStdinTotal   = "_sources_stdin"
	StatsCountsBytes  = "_counts_bytes"
	StatsCountsLines  = "_counts_lines"
	StatsCountsWords  = "_counts_words"
	StatsCountsChars  = "_counts_chars"
)

type Stats interface {
	IncSources()
	IncErrSources()
	IncStdin()
	AddCounts(Record)
	Stats() iter.Seq2[string, string]
}
