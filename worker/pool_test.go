package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunKeepsInputOrder(t *testing.T) {
	pool := NewPool(4, func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	})
	jobs := pool.Run(context.Background(), []int{1, 2, 3, 4, 5})

	assert := assert.New(t)
	assert.Len(jobs, 5)
	for i, job := range jobs {
		assert.Equal(i+1, job.Input)
		assert.Equal((i+1)*2, job.Result)
		assert.NoError(job.Err)
	}
}

func TestRunCapturesErrors(t *testing.T) {
	boom := errors.New("boom")
	pool := NewPool(2, func(ctx context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	jobs := pool.Run(context.Background(), []int{1, 2, 3})

	assert := assert.New(t)
	assert.NoError(jobs[0].Err)
	assert.ErrorIs(jobs[1].Err, boom)
	assert.NoError(jobs[2].Err)
}

func TestZeroWorkersStillRuns(t *testing.T) {
	pool := NewPool(0, func(ctx context.Context, n int) (int, error) {
		return n, nil
	})
	jobs := pool.Run(context.Background(), []int{7})
	assert.Equal(t, 7, jobs[0].Result)
}
