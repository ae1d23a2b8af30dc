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

// rankn provides bidirectional type inference for a type-system with arbitrary-rank polymorphism.
//
// The type-system extends Hindley-Milner with foralls nested anywhere within a type, including the argument
// positions of function types. Types are inferred or checked against annotations; polymorphic arguments must be
// annotated (or checked against a known polymorphic type), while everything else is inferred.
//
// The implementation is based on the paper Practical Type Inference for Arbitrary-Rank Types
// (Peyton Jones, Vytiniotis, Weirich and Shields).
//
// Links:
//
// * Practical Type Inference for Arbitrary-Rank Types: https://www.microsoft.com/en-us/research/publication/practical-type-inference-for-arbitrary-rank-types/
//
// * Hindley-Milner type system (Wikipedia): https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
//
// Supported Features:
//
// * Rank-N types: `fun (f : forall a. a -> a) -> & (f 1) (f true)`
//
// * Deep skolemization and subsumption: `forall a. a -> a` is at least as polymorphic as `int -> int`
//
// * Generalization of let-bindings and recursive let-groups, with optional declared types
//
// * Dependency analysis for recursive let-groups (see InferenceContext.EnableDependencyAnalysis)
//
// * Elaboration into explicitly-typed terms, in which every instantiation and generalization is a coercion
// (see package core)
//
//
// Type-environments are persistent: extending an environment never modifies it. All environments derived from
// a common root share a counter for minting meta-slots and Skolem constants.
package rankn
