package domain

import (
	"context"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/dataobj/internal/model"
)

// Dispatch runs v over every object of seq in order.
func Dispatch(seq m.Sequence, v m.Visitor) {
	seq.Each(func(_ int, o m.DataObject) {
		o.Accept(v)
	})
}

// DispatchParallel splits seq into at most workers contiguous chunks and runs
// each chunk through its own operation built by newOp. newOp receives the
// position of the chunk's first object. Operations are never shared between
// goroutines; the caller merges the returned operations, which are ordered by
// chunk.
//
// An empty sequence yields no operations.
func DispatchParallel[V m.Visitor](ctx context.Context, seq m.Sequence, workers int, newOp func(offset int) V) ([]V, error) {
	chunks := splitChunks(seq.Len(), workers)
	ops := make([]V, len(chunks))

	g, ctx := errgroup.WithContext(ctx)

	for i, c := range chunks {
		ops[i] = newOp(c.start)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			Dispatch(seq.Slice(c.start, c.end), ops[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ops, nil
}

type chunk struct {
	start int
	end   int
}

// splitChunks divides n items into at most workers ranges whose sizes differ
// by at most one.
func splitChunks(n, workers int) []chunk {
	if n == 0 {
		return nil
	}

	if workers <= 0 {
		workers = 1
	}

	if workers > n {
		workers = n
	}

	chunks := make([]chunk, 0, workers)
	size, extra := n/workers, n%workers
	start := 0

	for i := range workers {
		end := start + size
		if i < extra {
			end++
		}

		chunks = append(chunks, chunk{start: start, end: end})
		start = end
	}

	return chunks
}
