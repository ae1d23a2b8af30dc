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

package util

import (
	"reflect"
	"testing"
)

func TestSCCTopologicalOrder(t *testing.T) {
	// 0 -> 1 <-> 2 -> 3, 4 isolated
	g := NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)
	g.AddEdge(2, 3)

	if len(g[2]) != 2 {
		t.Fatalf("expected duplicate edges to be ignored, got %v", g[2])
	}

	sccs := g.SCC()
	pos := make(map[int]int)
	for i, c := range sccs {
		for _, v := range c {
			pos[v] = i
		}
	}
	if len(sccs) != 4 {
		t.Fatalf("expected 4 components, got %v", sccs)
	}
	if pos[1] != pos[2] {
		t.Fatalf("expected 1 and 2 in one component, got %v", sccs)
	}
	if !reflect.DeepEqual(sccs[pos[1]], []int{1, 2}) {
		t.Fatalf("expected sorted component, got %v", sccs[pos[1]])
	}
	if !(pos[0] < pos[1] && pos[1] < pos[3]) {
		t.Fatalf("expected topological order, got %v", sccs)
	}
}

func TestSCCSelfLoop(t *testing.T) {
	g := NewGraph(2)
	g.AddEdge(0, 0)
	g.AddEdge(1, 0)
	if !g.HasEdge(0, 0) || g.HasEdge(0, 1) {
		t.Fatalf("unexpected edges: %v", g)
	}
	sccs := g.SCC()
	if !reflect.DeepEqual(sccs, [][]int{{1}, {0}}) {
		t.Fatalf("components: %v", sccs)
	}
}
