package search

import (
	"context"
	"sync"

	"github.com/davidpaquet/archive-browser/internal/model"
)

// parallelThreshold is the collection size above which body text is scanned
// by the worker pool instead of inline
const parallelThreshold = 2048

// ContentEngine decides body-text matches
type ContentEngine interface {
	// MatchContent reports text matches per entry. Entries already marked in
	// skip are not scanned and report false.
	MatchContent(ctx context.Context, q Query, entries model.Collection, texts model.TextMap, skip []bool) ([]bool, error)
}

type contentEngine struct {
	maxWorkers int
	threshold  int
}

func NewContentEngine() ContentEngine {
	return &contentEngine{
		maxWorkers: 4,
		threshold:  parallelThreshold,
	}
}

type searchJob struct {
	start, end int
}

func (c *contentEngine) MatchContent(ctx context.Context, q Query, entries model.Collection, texts model.TextMap, skip []bool) ([]bool, error) {
	matched := make([]bool, len(entries))

	scan := func(start, end int) {
		for i := start; i < end; i++ {
			if skip != nil && skip[i] {
				continue
			}
			matched[i] = MatchesText(texts.Lookup(entries[i].FileName), q)
		}
	}

	if len(entries) < c.threshold || c.maxWorkers < 2 {
		scan(0, len(entries))
		return matched, ctx.Err()
	}

	chunk := (len(entries) + c.maxWorkers*4 - 1) / (c.maxWorkers * 4)
	jobs := make(chan searchJob)

	var wg sync.WaitGroup
	for i := 0; i < c.maxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if ctx.Err() != nil {
					continue
				}
				scan(job.start, job.end)
			}
		}()
	}

	// each job owns a disjoint index range of matched
queue:
	for start := 0; start < len(entries); start += chunk {
		end := min(start+chunk, len(entries))
		select {
		case <-ctx.Done():
			break queue
		case jobs <- searchJob{start: start, end: end}:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return matched, nil
}
