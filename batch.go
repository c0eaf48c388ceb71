// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package hm

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Result of inference for a single expression within a batch.
type Result struct {
	Index   int        // index of the expression within the batch
	Type    types.Type // inferred type, or nil if inference failed
	Err     error
	Invalid ast.Expr // sub-expression which caused inference to fail
}

// InferAll infers the type of each expression within env, concurrently. Results are returned in the order
// of exprs; failure for one expression does not affect inference for the others.
//
// Each goroutine uses its own inference context, created with newContext (or NewContext, if newContext is nil).
// If ctx is cancelled, expressions which have not yet been inferred fail with the context's error.
func InferAll(ctx context.Context, env *TypeEnv, exprs []ast.Expr, newContext func() *InferenceContext) []Result {
	return InferAllN(ctx, env, exprs, newContext, 0)
}

// InferAllN is InferAll with at most workers expressions inferred concurrently. If workers <= 0,
// the limit is GOMAXPROCS.
func InferAllN(ctx context.Context, env *TypeEnv, exprs []ast.Expr, newContext func() *InferenceContext, workers int) []Result {
	if newContext == nil {
		newContext = NewContext
	}
	results := make([]Result, len(exprs))
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(exprs) {
		workers = len(exprs)
	}
	if workers == 0 {
		return results
	}

	next := make(chan int)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers + 1)

	g.Go(func() error {
		defer close(next)
		for i := range exprs {
			select {
			case next <- i:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			ti := newContext()
			for i := range next {
				t, err := ti.Infer(exprs[i], env)
				results[i] = Result{Index: i, Type: t, Err: err}
				if err != nil {
					results[i].Invalid = ti.InvalidExpr()
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Type == nil && results[i].Err == nil {
				results[i] = Result{Index: i, Err: err}
			}
		}
	}
	return results
}
