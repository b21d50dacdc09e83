package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Job is one unit of work with its outcome.
type Job[T any, R any] struct {
	Input  T
	Result R
	Err    error
}

// ConvertFunc processes one input.
type ConvertFunc[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool fans work out over a fixed number of goroutines. Each conversion is
// independent, so the only shared state is the results slice, written at
// disjoint indexes.
type Pool[T any, R any] struct {
	workers int
	fn      ConvertFunc[T, R]
}

func NewPool[T any, R any](workers int, fn ConvertFunc[T, R]) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{workers: workers, fn: fn}
}

// Run processes all inputs and returns one Job per input, in input order.
// Cancelling the context stops workers from picking up further inputs.
func (p *Pool[T, R]) Run(ctx context.Context, inputs []T) []Job[T, R] {
	results := make([]Job[T, R], len(inputs))
	indexes := make(chan int, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-indexes:
					if !ok {
						return
					}
					result, err := p.fn(ctx, inputs[i])
					results[i] = Job[T, R]{Input: inputs[i], Result: result, Err: err}
					if err != nil {
						log.Error().Err(err).Int("index", i).Msg("job failed")
					}
				}
			}
		}()
	}

	for i := range inputs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	return results
}
