// Package batch fans independent incognito.Convert/Verify calls out
// across goroutines. It performs no cryptography of its own: every call
// it makes is delegated verbatim to an incognito.Params, matching the
// "many-task cooperative scheduler" the core module is meant to be
// embeddable under.
package batch

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/ringproofs/incognito/curve"
	"github.com/ringproofs/incognito/incognito"
	"github.com/ringproofs/incognito/schnorr"
)

// ConvertTask is one independent Convert call to run as part of a
// batch: a ring, a message, the underlying Schnorr signature, and the
// claimed signer index.
type ConvertTask struct {
	Ring    []curve.Point
	Message []byte
	Sig     *schnorr.Signature
	Index   int
}

// ConvertAll runs Convert for every task concurrently, bounded by
// concurrency goroutines at a time (concurrency <= 0 means unbounded).
// On success it returns one *incognito.Signature per task, in the same
// order as tasks. If any task fails it returns nil and the first error;
// tasks that have not started by then return without converting, while
// tasks already running finish their Convert call.
func ConvertAll(ctx context.Context, params *incognito.Params, rand io.Reader, tasks []ConvertTask, concurrency int) ([]*incognito.Signature, error) {
	results := make([]*incognito.Signature, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sig, err := params.Convert(rand, task.Ring, task.Message, task.Sig, task.Index)
			if err != nil {
				return err
			}
			results[i] = sig
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// VerifyTask is one independent Verify call to run as part of a batch.
type VerifyTask struct {
	Ring      []curve.Point
	Message   []byte
	Signature *incognito.Signature
}

// VerifyAll runs Verify for every task concurrently, bounded by
// concurrency goroutines at a time. Unlike ConvertAll, a single task's
// verification failure does not cancel the others: every task runs to
// completion, and its outcome is reported at its own index.
func VerifyAll(ctx context.Context, params *incognito.Params, tasks []VerifyTask, concurrency int) []error {
	results := make([]error, len(tasks))

	g, _ := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			results[i] = params.Verify(task.Ring, task.Message, task.Signature)
			return nil
		})
	}

	// Every goroutine above always returns nil; g.Wait() cannot fail
	// here, so its error is deliberately discarded.
	_ = g.Wait()
	return results
}
