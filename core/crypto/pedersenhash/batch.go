package pedersenhash

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/iter"
)

// Pair is one (x, y) input of a batch.
type Pair struct {
	X, Y []byte
}

// HashBatch hashes every pair on at most maxGoroutines goroutines and returns
// the hashes in input order. A non-positive maxGoroutines means GOMAXPROCS.
//
// If any pair fails, or ctx is done before all pairs were started, no result
// is returned and the error wraps every failure.
func HashBatch(ctx context.Context, pairs []Pair, maxGoroutines int) ([][InputSize]byte, error) {
	if maxGoroutines <= 0 {
		maxGoroutines = runtime.GOMAXPROCS(0)
	}

	mapper := iter.Mapper[Pair, [InputSize]byte]{MaxGoroutines: maxGoroutines}
	hashes, err := mapper.MapErr(pairs, func(p *Pair) ([InputSize]byte, error) {
		return HashContext(ctx, p.X, p.Y)
	})
	if err != nil {
		return nil, errors.Wrap(err, "batch hash")
	}
	return hashes, nil
}
