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

// hm provides type inference for a let-polymorphic lambda calculus, using the Hindley-Milner type-system.
//
// Terms are built from variables, abstractions, applications, and (recursive) let-bindings. The principal
// type of a term is reconstructed relative to a type-environment of primitive bindings. Type-variables bound
// by let-bindings are generalized; each use of a let-bound variable instantiates a fresh copy of its type.
//
//
// Inference Engines:
//
//   * Substitution-passing (default): each step checks a sub-term against an expected type,
//     extending a persistent substitution
//   * Linked (see InferenceContext.EnableLinkedUnification): type-variables are bound in place,
//     with path compression and level-based generalization
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Efficient Generalization with Levels (Oleg Kiselyov): http://okmij.org/ftp/ML/generalization.html#levels
//
// Principal type-schemes for functional programs (Damas, Milner, 1982): https://doi.org/10.1145/582153.582176
package hm
