// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourbasic/graph"
)

func build(order int, edges ...[2]int) *graph.Immutable {
	g := graph.New(order)
	for _, e := range edges {
		g.Add(e[0], e[1])
	}
	return graph.Sort(g)
}

func TestBFSWithDepthReportsDepths(t *testing.T) {
	// 0 -> 1 -> 2 -> 3 with a shortcut 0 -> 2
	g := build(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 2})

	depths := map[int]int{}
	BFSWithDepth(g, 0, func(node int, depth int) bool {
		depths[node] = depth
		return false
	})

	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2}, depths)
}

func TestBFSWithDepthStopsPastLimit(t *testing.T) {
	g := build(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	var visited []int
	BFSWithDepth(g, 0, func(node int, depth int) bool {
		if depth > 1 {
			return true
		}
		visited = append(visited, node)
		return false
	})

	assert.Equal(t, []int{0, 1}, visited)
}

func TestBFSWithDepthSkipsUnreachable(t *testing.T) {
	g := build(3, [2]int{0, 1})

	var visited []int
	BFSWithDepth(g, 0, func(node int, depth int) bool {
		visited = append(visited, node)
		return false
	})

	assert.NotContains(t, visited, 2)
}

func TestGraphHash(t *testing.T) {
	a := build(3, [2]int{0, 1})
	b := build(3, [2]int{0, 1})
	c := build(3, [2]int{1, 2})

	assert.Equal(t, GraphHash(a), GraphHash(b))
	assert.NotEqual(t, GraphHash(a), GraphHash(c))
}
