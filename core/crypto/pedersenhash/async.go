package pedersenhash

import "context"

// HashContext is Hash for callers that thread a context through their
// pipeline. It returns ctx.Err() if ctx is already done and otherwise computes
// the hash synchronously on the calling goroutine, with the same output as
// Hash.
//
// The work is CPU bound and never blocks on I/O, so it is not interrupted once
// started.
func HashContext(ctx context.Context, x, y []byte) ([InputSize]byte, error) {
	if err := ctx.Err(); err != nil {
		return [InputSize]byte{}, err
	}
	return Hash(x, y)
}
