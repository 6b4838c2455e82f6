package rollup

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Input is one encoded rollup and its optional viewing key stream.
type Input struct {
	ProofData      []byte
	ViewingKeyData []byte
}

// ParseAll parses independent rollups concurrently with at most workers in flight.
// Results keep the order of inputs. The first failure cancels the remaining work.
func ParseAll(ctx context.Context, format Format, inputs []Input, workers int) ([]*RollupProofData, error) {
	if workers <= 0 {
		workers = 1
	}
	out := make([]*RollupProofData, len(inputs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, in := range inputs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := Parse(format, in.ProofData, in.ViewingKeyData)
			if err != nil {
				return fmt.Errorf("rollup %d: %w", i, err)
			}
			out[i] = p
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
