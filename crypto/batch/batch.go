// Package batch checks many signatures against one crypto.Verifier
// concurrently.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cometbft/sigverify/crypto"
)

// Item is one signature to check.
type Item struct {
	PubKey string
	Msg    []byte
	Sig    string
}

// Verifier accumulates items with Add and checks them all with Verify.
// It is not safe for concurrent use; the wrapped crypto.Verifier must be.
type Verifier struct {
	v           crypto.Verifier
	items       []Item
	concurrency int
}

type Option func(*Verifier)

// WithConcurrency caps the number of signatures checked at once. n < 1
// means GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(b *Verifier) { b.concurrency = n }
}

// NewVerifier returns an empty batch over v.
func NewVerifier(v crypto.Verifier, opts ...Option) *Verifier {
	b := &Verifier{v: v}
	for _, opt := range opts {
		opt(b)
	}
	if b.concurrency < 1 {
		b.concurrency = runtime.GOMAXPROCS(0)
	}
	return b
}

// Add queues a signature. msg is not copied.
func (b *Verifier) Add(pubKey string, msg []byte, sig string) {
	b.items = append(b.items, Item{PubKey: pubKey, Msg: msg, Sig: sig})
}

// Len returns the number of queued items.
func (b *Verifier) Len() int {
	return len(b.items)
}

// Verify checks every queued item. It returns true when all of them are
// valid, plus the result of each item in the order they were added. The
// first error, such as an undecodable public key, stops the batch and is
// returned with a nil slice. An empty batch is not valid.
func (b *Verifier) Verify(ctx context.Context) (bool, []bool, error) {
	if len(b.items) == 0 {
		return false, nil, nil
	}

	results := make([]bool, len(b.items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, item := range b.items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := b.v.VerifySignature(item.PubKey, item.Msg, item.Sig)
			if err != nil {
				return ItemError{Index: i, Err: err}
			}
			results[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, nil, err
	}

	for _, ok := range results {
		if !ok {
			return false, results, nil
		}
	}
	return true, results, nil
}
