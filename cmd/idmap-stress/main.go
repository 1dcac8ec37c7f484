// Command idmap-stress drives an IdMap through sustained insert/remove
// churn and reports throughput, latency, and memory behavior.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"time"

	idmap "github.com/andrewhickman/id-map"
	"github.com/andrewhickman/id-map/idset"
)

// entity is a deliberately pointer-bearing payload so the stress run
// also exercises slot clearing under GC pressure.
type entity struct {
	name    string
	hp      int
	tags    []string
	created time.Time
}

func newEntity(r *rand.Rand) entity {
	return entity{
		name:    fmt.Sprintf("entity-%08x", r.Uint32()),
		hp:      r.Intn(100),
		tags:    []string{"stress"},
		created: time.Now(),
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Total duration the test should run for.")
	population := flag.Int("population", 100000, "Number of live entities to maintain.")
	churn := flag.Float64("churn", 0.25, "Fraction of the population removed and reinserted per round.")
	seed := flag.Int64("seed", 1, "PRNG seed.")
	verbose := flag.Bool("verbose", false, "Enable debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := idmap.NewTextLogger(level)

	logger.Info("starting idmap stress test",
		"duration", *duration,
		"population", *population,
		"churn", *churn,
	)

	r := rand.New(rand.NewSource(*seed))
	metrics := &idmap.BasicMetricsCollector{}

	m := idmap.WithCapacity[entity](*population)
	for i := 0; i < *population; i++ {
		m.Insert(newEntity(r))
	}
	logger.WithCount(m.Len()).Info("population complete")

	report := &Report{
		Duration:   *duration,
		Population: *population,
		Churn:      *churn,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	removeCount := int(float64(*population) * *churn)

loop:
	for round := 0; ; round++ {
		select {
		case <-ctx.Done():
			break loop
		default:
		}

		roundStart := time.Now()
		runRound(m, r, removeCount, metrics)
		report.RoundTime.Samples = append(report.RoundTime.Samples, time.Since(roundStart))

		if m.Len() != *population {
			logger.Error("population drifted", "len", m.Len(), "want", *population)
			os.Exit(1)
		}
		logger.Debug("round complete", "round", round, "next_id", m.NextID())
	}

	report.TotalTime = time.Since(start)
	report.TotalRounds = int64(len(report.RoundTime.Samples))
	report.RoundTime.Finalize()
	report.Metrics = metrics
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.WithCount(int(report.TotalRounds)).Info("stress test finished")

	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "error", err)
		os.Exit(1)
	}
}

// runRound removes a random batch of entities, verifies reuse of the
// freed identifiers, and visits every survivor once.
func runRound(m *idmap.IdMap[entity], r *rand.Rand, removeCount int, metrics idmap.MetricsCollector) {
	// Pick ids to remove; misses are counted, not errors.
	doomed := idset.New()
	bound := m.NextID() + m.Len()
	for doomed.Len() < removeCount {
		doomed.Insert(r.Intn(bound + 1))
	}

	removed := 0
	for id := range doomed.All() {
		start := time.Now()
		_, ok := m.Remove(id)
		metrics.RecordRemove(time.Since(start), ok)
		if ok {
			removed++
		}
	}

	// Refill; freed slots must be reused smallest-first.
	for i := 0; i < removed; i++ {
		start := time.Now()
		m.Insert(newEntity(r))
		metrics.RecordInsert(time.Since(start))
	}

	// A mutating pass over every live entity.
	start := time.Now()
	count := 0
	for _, e := range m.Refs() {
		e.hp++
		count++
	}
	metrics.RecordIterate(count, time.Since(start))
}
