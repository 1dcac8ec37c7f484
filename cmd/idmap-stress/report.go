package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	idmap "github.com/andrewhickman/id-map"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Population int
	Churn      float64

	// Results
	TotalRounds   int64
	TotalTime     time.Duration
	RoundTime     Stats
	Metrics       *idmap.BasicMetricsCollector
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# IdMap Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Population:** {{.Population}}
- **Churn Fraction:** {{.Churn}}

## Performance Results
- **Total Rounds:** {{.TotalRounds}}
- **Total Test Time:** {{.TotalTime}}
- **Round Time:**
  - **Avg:** {{.RoundTime.Avg}}
  - **Min:** {{.RoundTime.Min}}
  - **Max:** {{.RoundTime.Max}}

## Operation Metrics
- **Inserts:** {{.Metrics.Inserts}} (avg {{.Metrics.AvgInsert}})
- **Removes:** {{.Metrics.Removes}} (avg {{.Metrics.AvgRemove}}, {{.Metrics.Misses}} misses)
- **Full Traversals:** {{.Metrics.Traversals}} ({{.Metrics.TraversedItems}} values visited)

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
