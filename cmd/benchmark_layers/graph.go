package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/dirtycheck/scope"
)

type graphResult struct {
	sum        int
	watchCalls int64
	duration   time.Duration
	checksum   uint64
}

type benchmarkGraph struct {
	scope   *scope.Scope
	sources []string
	layers  [][]string
}

func nodeKey(layer, dex int) string {
	return fmt.Sprintf("n%d_%d", layer, dex)
}

// runGraph builds a fresh layered graph, then repeatedly writes one source,
// digests and reads some or all of the leaves.
func runGraph(sc *layerScenario) (*graphResult, error) {
	if err := sc.validate(); err != nil {
		return nil, err
	}
	counter := new(int64)
	graph := makeGraph(sc, counter)
	if err := graph.scope.Digest(); err != nil {
		return nil, err
	}
	*counter = 0

	random := rand.New(rand.NewSource(0))
	leaves := graph.layers[len(graph.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - sc.Read)))
	readLeaves := removeElems(leaves, skipCount, random)

	h := xxhash.New()
	var buf [8]byte
	start := time.Now()
	for i := 0; i < sc.Digests; i++ {
		sourceDex := i % len(graph.sources)
		graph.scope.Set(graph.sources[sourceDex], i+sourceDex)
		if err := graph.scope.Digest(); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}

		sum := 0
		for _, leaf := range readLeaves {
			sum += scope.Value[int](graph.scope, leaf)
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(sum))
		h.Write(buf[:])
	}
	duration := time.Since(start)

	sum := 0
	for _, leaf := range readLeaves {
		sum += scope.Value[int](graph.scope, leaf)
	}
	return &graphResult{
		sum:        sum,
		watchCalls: *counter,
		duration:   duration,
		checksum:   h.Sum64(),
	}, nil
}

func makeGraph(sc *layerScenario, counter *int64) *benchmarkGraph {
	s := scope.New(scope.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	sources := make([]string, sc.Width)
	for i := range sources {
		sources[i] = nodeKey(0, i)
		s.Set(sources[i], i)
	}

	random := rand.New(rand.NewSource(0))
	graph := &benchmarkGraph{scope: s, sources: sources}
	prevRow := sources
	for l := 1; l < sc.Layers; l++ {
		row := makeRow(s, l, prevRow, sc, counter, random)
		graph.layers = append(graph.layers, row)
		prevRow = row
	}
	return graph
}

func makeRow(s *scope.Scope, layer int, prevRow []string, sc *layerScenario, counter *int64, random *rand.Rand) []string {
	row := make([]string, len(prevRow))
	for myDex := range prevRow {
		key := nodeKey(layer, myDex)
		row[myDex] = key

		// a node never reads the same source twice
		seen := mapset.NewThreadUnsafeSet[string]()
		mySources := make([]string, 0, sc.Fanin)
		for sourceDex := 0; sourceDex < sc.Fanin; sourceDex++ {
			src := prevRow[(myDex+sourceDex)%len(prevRow)]
			if seen.Add(src) {
				mySources = append(mySources, src)
			}
		}

		var fn scope.WatchFunc
		if random.Float64() >= sc.Conditional {
			fn = func(s *scope.Scope) any {
				*counter++
				sum := 0
				for _, src := range mySources {
					sum += scope.Value[int](s, src)
				}
				return sum
			}
		} else {
			first := mySources[0]
			tail := mySources[1:]
			fn = func(s *scope.Scope) any {
				*counter++
				sum := scope.Value[int](s, first)
				if len(tail) == 0 {
					return sum
				}
				shouldDrop := sum&0x1 > 0
				dropDex := sum % len(tail)
				if dropDex < 0 {
					dropDex += len(tail)
				}
				for i := 0; i < len(tail); i++ {
					if shouldDrop && i == dropDex {
						continue
					}
					sum += scope.Value[int](s, tail[i])
				}
				return sum
			}
		}

		opts := []scope.WatchOption{scope.Named(key)}
		if sc.ByValue {
			opts = append(opts, scope.ByValue())
		}
		s.Watch(fn, func(newValue, oldValue any, s *scope.Scope) error {
			s.Set(key, newValue)
			return nil
		}, opts...)
	}
	return row
}

func removeElems[T comparable](src []T, rmCount int, rand *rand.Rand) []T {
	copyWithRemovals := make([]T, len(src))
	copy(copyWithRemovals, src)
	for i := 0; i < rmCount; i++ {
		rmDex := rand.Intn(len(copyWithRemovals))
		copyWithRemovals[rmDex] = copyWithRemovals[len(copyWithRemovals)-1]
		copyWithRemovals = copyWithRemovals[:len(copyWithRemovals)-1]
	}
	return copyWithRemovals
}
