package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

const repeats = 5

func main() {
	log.Print("Starting layered digest benchmark, please wait...")
	defer log.Print("Finished layered digest benchmark")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"scenario", "size", "fan-in", "traits", "digests", "best", "watch calls", "calls/ms", "checksum"})

	for _, sc := range defaultScenarios() {
		best, err := bestOf(&sc, repeats)
		if err != nil {
			log.Fatal(err)
		}

		perMs := float64(best.watchCalls) / (float64(best.duration) / float64(time.Millisecond))
		table.Append([]string{
			sc.Name,
			sc.size(),
			fmt.Sprint(sc.Fanin),
			sc.traits(),
			humanize.Comma(int64(sc.Digests)),
			best.duration.String(),
			humanize.Comma(best.watchCalls),
			humanize.Comma(int64(perMs)),
			fmt.Sprintf("%016x", best.checksum),
		})
	}
	table.Render()
}

// bestOf runs sc n times and keeps the fastest run. Every run must produce
// the same checksum.
func bestOf(sc *layerScenario, n int) (*graphResult, error) {
	var best *graphResult
	for i := 0; i < n; i++ {
		log.Printf("%s: run %d/%d", sc.Name, i+1, n)
		res, err := runGraph(sc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sc.Name, err)
		}
		if best != nil && best.checksum != res.checksum {
			return nil, fmt.Errorf("%s: checksum changed between runs", sc.Name)
		}
		if best == nil || res.duration < best.duration {
			best = res
		}
	}
	return best, nil
}
