package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropmatch/pkg/rop"
)

func queue(values ...int) <-chan rop.Result[int, string] {
	in := make(chan rop.Result[int, string], len(values))
	for _, v := range values {
		in <- rop.Success[int, string](v)
	}
	close(in)
	return in
}

func square(ctx context.Context, in rop.Result[int, string]) <-chan rop.Result[int, string] {
	out := make(chan rop.Result[int, string], 1)
	out <- rop.Map(in, func(v int) int { return v * v })
	close(out)
	return out
}

func TestLocomotive_DeliversAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := make(chan rop.Result[int, string], 3)
	delivered := 0
	wg := &sync.WaitGroup{}
	wg.Add(1)

	Locomotive(ctx, queue(1, 2, 3), out, square, CancellationHandlers[int, int, string]{},
		func(ctx context.Context, r rop.Result[int, string]) { delivered++ }, wg)
	wg.Wait()
	close(out)

	var got []int
	for r := range out {
		got = append(got, r.Value())
	}
	assert.Equal(t, []int{1, 4, 9}, got)
	assert.Equal(t, 3, delivered)
}

func TestLocomotive_CancelHandsEveryResultToOneHandler(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var remaining, unprocessed, processed int
	handlers := CancellationHandlers[int, int, string]{
		OnCancel: func(ctx context.Context, inputCh <-chan rop.Result[int, string], outCh chan<- rop.Result[int, string]) {
			for range inputCh {
				remaining++
			}
		},
		OnCancelUnprocessed: func(ctx context.Context, in rop.Result[int, string], outCh chan<- rop.Result[int, string]) {
			unprocessed++
		},
		OnCancelProcessed: func(ctx context.Context, in rop.Result[int, string], pr rop.Result[int, string], outCh chan<- rop.Result[int, string]) {
			processed++
		},
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	// nobody reads out, so a processed result can never be delivered
	Locomotive(ctx, queue(1, 2, 3, 4), make(chan rop.Result[int, string]), square, handlers, nil, wg)
	wg.Wait()

	assert.Equal(t, 4, remaining+unprocessed+processed)
	assert.LessOrEqual(t, unprocessed+processed, 1)
}
