/*
File: pool.go
Description: Optional worker pool for probing many files concurrently.
Per-file work is side-effect-free apart from its own reads, so fan-out is
safe; results land in a slice indexed by position, keeping report order equal
to scan order regardless of which worker finishes first.
*/

package probe

import (
	"sync"

	"github.com/fleetalytics/jsonprobe/pkg/interfaces"
)

// ProbeAll probes every path using up to workers goroutines. workers <= 1
// runs the plain sequential loop.
func ProbeAll(prober interfaces.Prober, paths []string, workers int) []interfaces.ProbeResult {
	results := make([]interfaces.ProbeResult, len(paths))

	if workers <= 1 {
		for i, path := range paths {
			results[i] = prober.Probe(path)
		}
		return results
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	type job struct {
		index int
		path  string
	}
	jobs := make(chan job)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = prober.Probe(j.path)
			}
		}()
	}

	for i, path := range paths {
		jobs <- job{index: i, path: path}
	}
	close(jobs)
	wg.Wait()

	return results
}
