// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package utils

import (
	"encoding/base64"

	"github.com/yourbasic/graph"
	"github.com/zeebo/blake3"
)

// BFSWithDepth performs a breadth-first search on the graph, passing the
// current depth to the visit function as a second argument. Returning true
// from the visit function stops the traversal. The start node has depth 0.
func BFSWithDepth(g *graph.Immutable, start int, visit func(int, int) bool) {
	queue := make([]int, 0)
	visited := make(map[int]bool)
	depths := make(map[int]int)

	visited[start] = true
	queue = append(queue, start)
	depths[start] = 0

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if stop := visit(node, depths[node]); stop {
			break
		}

		g.Visit(node, func(adj int, _ int64) bool {
			if _, ok := visited[adj]; !ok {
				visited[adj] = true
				depths[adj] = depths[node] + 1
				queue = append(queue, adj)
			}
			return false
		})
	}
}

func GraphHash(g *graph.Immutable) string {
	hashBytes := blake3.Sum256([]byte(g.String()))
	return base64.StdEncoding.EncodeToString(hashBytes[:])
}
