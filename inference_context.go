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
	"errors"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/internal/astutil"
	"github.com/wdamron/hm/internal/linked"
	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

// DefaultMaxDepth bounds the nesting depth of expressions and types during inference, unless another
// limit is set with SetMaxDepth.
const DefaultMaxDepth = typeutil.DefaultMaxUnifyDepth

// ErrEmptyExpression is returned when inference is invoked on a nil expression.
var ErrEmptyExpression = errors.New("Empty expression")

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	linked     bool
	needsReset bool
	maxDepth   int

	varTracker typeutil.VarTracker
	analysis   astutil.Analysis

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
//
// Fresh type-variables are allocated from types.GlobalNames unless another source is set with SetNameSource.
func NewContext() *InferenceContext {
	return &InferenceContext{maxDepth: DefaultMaxDepth}
}

func (ti *InferenceContext) reset() {
	ti.analysis.Reset()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Set the source of fresh type-variables for subsequent inference. A nil source selects types.GlobalNames.
//
// Names from any source, including types.GlobalNames, must not collide with free type-variables in the
// type-environment.
func (ti *InferenceContext) SetNameSource(names types.NameSource) { ti.varTracker.Names = names }

// Set the maximum nesting depth of expressions and types. A limit <= 0 disables the limit.
//
// Inference fails with *types.DepthError when the limit is exceeded.
func (ti *InferenceContext) SetMaxDepth(limit int) { ti.maxDepth = limit }

// Linked unification binds type-variables in place, rather than extending a substitution. Inferred types and
// errors are identical to those of substitution-based inference, though fresh names in inferred types may differ.
//
// By default, linked unification is disabled.
func (ti *InferenceContext) EnableLinkedUnification(enabled bool) { ti.linked = enabled }

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the type of expr within env.
//
// Type-environments are immutable, so a single environment may be shared by contexts on separate threads.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	if expr == nil {
		return nil, ErrEmptyExpression
	}
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true
	if env == nil {
		env = NewTypeEnv()
	}
	if err := ti.analysis.Analyze(expr, ti.maxDepth); err != nil {
		ti.invalid, ti.err = expr, err
		return nil, err
	}

	if ti.linked {
		engine := linked.NewEngine(env, &ti.varTracker, ti.maxDepth)
		t, err := engine.Infer(expr)
		if err != nil {
			ti.invalid, ti.err = engine.InvalidExpr(), err
			return nil, err
		}
		return t, nil
	}

	a := ti.varTracker.NewVar()
	s, err := ti.tp(env, expr, a, types.EmptySubst())
	if err != nil {
		return nil, err
	}
	return s.Apply(a), nil
}

// Infer the type of expr within env, then generalize the type relative to env.
func (ti *InferenceContext) InferScheme(expr ast.Expr, env *TypeEnv) (*types.Scheme, error) {
	if env == nil {
		env = NewTypeEnv()
	}
	t, err := ti.Infer(expr, env)
	if err != nil {
		return nil, err
	}
	return env.Generalize(t), nil
}

// TypeOf infers the type of expr within env with a new inference context.
func TypeOf(env *TypeEnv, expr ast.Expr) (types.Type, error) {
	return NewContext().Infer(expr, env)
}
