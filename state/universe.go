// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package state

import (
	"fmt"

	"github.com/DataDrake/waterlog"
	"github.com/alpine-ros/repobuild/common"
	"github.com/yourbasic/graph"
)

// Universe owns every package of one run. The slice order is the order
// packages were handed in (ReadPackages sorts by name), and it is the
// resolver's tie-break order among simultaneously ready packages.
type Universe struct {
	packages    []common.Package
	pvdToPkgIdx map[string]int
	depGraph    *graph.Immutable
}

func NewUniverse(pkgs []common.Package) (u *Universe, err error) {
	u = &Universe{
		packages:    pkgs,
		pvdToPkgIdx: make(map[string]int),
	}

	for idx, pkg := range u.packages {
		if prev, ok := u.pvdToPkgIdx[pkg.Name]; ok {
			err = fmt.Errorf("duplicate package name %s at %s and %s", pkg.Name, u.packages[prev].Path, pkg.Path)
			return
		}
		u.pvdToPkgIdx[pkg.Name] = idx
	}

	// A subpackage artifact may only be claimed by one provider. The own
	// name wins over another package's subpackage of the same name.
	for idx, pkg := range u.packages {
		for _, name := range pkg.Provides {
			if prev, ok := u.pvdToPkgIdx[name]; ok && prev != idx {
				waterlog.Warnf("Duplicate provider for %s from %s, currently %s\n", name, pkg.Name, u.packages[prev].Name)
				continue
			}
			u.pvdToPkgIdx[name] = idx
		}
	}

	return
}

func (u *Universe) Packages() []common.Package {
	return u.packages
}

func (u *Universe) Package(idx int) *common.Package {
	return &u.packages[idx]
}

func (u *Universe) Len() int {
	return len(u.packages)
}

// Lookup resolves a package name or provided artifact name to its package
// index, or -1.
func (u *Universe) Lookup(name string) int {
	idx, ok := u.pvdToPkgIdx[name]
	if !ok {
		return -1
	}
	return idx
}

// DepGraph returns the dependency graph over the current live Depends sets,
// with an edge from provider to dependent. It is built on first use; build
// it before resolving if you want it to reflect the unresolved input.
// Dependencies with no provider in the universe contribute no edge.
func (u *Universe) DepGraph() *graph.Immutable {
	if u.depGraph != nil {
		return u.depGraph
	}

	g := graph.New(len(u.packages))
	for pkgIdx := range u.packages {
		for dep := range u.packages[pkgIdx].Depends.Iter() {
			depIdx, found := u.pvdToPkgIdx[dep]
			if found && depIdx != pkgIdx {
				g.Add(depIdx, pkgIdx)
			}
		}
	}

	u.depGraph = graph.Sort(g)
	return u.depGraph
}
