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

package typeutil

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/hm/types"
)

// Generalize quantifies all type-variables of t which are not contained in envFree. Quantified
// type-variables are ordered by first appearance in t.
func Generalize(envFree *set.Set[string], t types.Type) *types.Scheme {
	vars := types.FreeVars(t)
	quantified := vars[:0]
	for _, v := range vars {
		if !envFree.Contains(v.Name) {
			quantified = append(quantified, v)
		}
	}
	if len(quantified) == 0 {
		return types.Mono(t)
	}
	return types.NewScheme(quantified, t)
}
