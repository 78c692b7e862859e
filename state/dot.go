// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package state

import (
	"errors"
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	yb "github.com/yourbasic/graph"
)

// WriteDOTFromGraph renders a dependency graph snapshot in the DOT format,
// coloring placed packages green and unresolved ones red. It takes the
// graph rather than reading the universe's Depends sets so that it can run
// after resolution has consumed them.
func WriteDOTFromGraph(u *Universe, snapshot *yb.Immutable, unresolved map[int]bool, w io.Writer) error {
	g := graph.New(graph.IntHash, graph.Directed())

	for pkgIdx := range u.Packages() {
		pkg := u.Package(pkgIdx)
		attrsFunc := func(p *graph.VertexProperties) {
			p.Attributes["label"] = pkg.Show(true, false)
			p.Attributes["style"] = "filled"
			if unresolved[pkgIdx] {
				p.Attributes["colorscheme"] = "reds3"
			} else {
				p.Attributes["colorscheme"] = "greens3"
			}
			p.Attributes["color"] = "2"
			p.Attributes["fillcolor"] = "1"
		}

		if err := g.AddVertex(pkgIdx, attrsFunc); err != nil {
			return fmt.Errorf("failed to add vertex for %s: %w", pkg.Name, err)
		}
	}

	var visitErr error
	for pkgIdx := 0; pkgIdx < snapshot.Order(); pkgIdx++ {
		snapshot.Visit(pkgIdx, func(adj int, _ int64) (skip bool) {
			err := g.AddEdge(pkgIdx, adj, graph.EdgeWeight(1))
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				visitErr = fmt.Errorf("failed to create edge from %s to %s: %w",
					u.Package(pkgIdx).Name, u.Package(adj).Name, err)
				return true
			}
			return false
		})
		if visitErr != nil {
			return visitErr
		}
	}

	return draw.DOT(g, w)
}
