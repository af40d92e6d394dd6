// Package batch evaluates many mix designs concurrently. The engine is
// stateless, so designs only need a bound on parallelism, not locking.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aman-choudhary9785/iscode/internal/mix"
)

// DefaultWorkers bounds concurrent evaluations when the caller does not.
const DefaultWorkers = 8

// Item is one named design in a batch.
type Item struct {
	Name  string
	Input mix.Input
}

// Outcome is the evaluation of one item. Err carries that item's own
// validation failure; it never aborts the rest of the batch.
type Outcome struct {
	Index  int         `json:"index"`
	Name   string      `json:"name"`
	Result *mix.Result `json:"result,omitempty"`
	Err    error       `json:"-"`
}

// Evaluate runs every design and returns the outcomes in input order.
// Only context cancellation returns an error.
func Evaluate(ctx context.Context, items []Item, workers int) ([]Outcome, error) {
	if workers < 1 {
		workers = DefaultWorkers
	}

	outcomes := make([]Outcome, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := mix.Design(item.Input)
			outcomes[i] = Outcome{Index: i, Name: item.Name, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
