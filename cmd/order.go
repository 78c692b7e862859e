// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/DataDrake/waterlog"
	"github.com/alpine-ros/repobuild/state"
	"github.com/alpine-ros/repobuild/utils"
	"github.com/spf13/cobra"
	"github.com/yourbasic/graph"
)

var (
	dotPath string
	tiers   bool
	forward int
	reverse int
	showSub bool

	cmdOrder = &cobra.Command{
		Use:   "order <recipes-dir> [names/artifacts]",
		Short: "Compute and print the build order of a recipe tree",
		Long: `Compute the build order of the recipes applicable to the given platform
version. With package or artifact names as extra arguments, only the matching
packages (and, with --forward/--reverse, their neighborhood) are shown.

Be aware that bare names match the "name" field of the recipe; subpackage
artifact names match their providing recipe.`,
		Run:  runOrder,
		Args: cobra.MinimumNArgs(1),
	}
)

func init() {
	cmdOrder.Flags().StringVar(&dotPath, "dot", "", "store the dependency graph at the specified location in the DOT format")
	cmdOrder.Flags().BoolVarP(&tiers, "tiers", "t", false, "output tier-ed build order")
	cmdOrder.Flags().IntVarP(&forward, "forward", "F", 0, "extra level(s) of packages that depend on the list provided")
	cmdOrder.Flags().IntVarP(&reverse, "reverse", "R", 0, "extra level(s) of packages that the list provided depends on")
	cmdOrder.Flags().BoolVar(&showSub, "show-sub", false, "show the subpackage artifacts a package provides instead of just its name")
	targetInit(cmdOrder)
}

// querySet expands the queried names to the displayed package set, walking
// the dependency graph forward and backward by the requested levels.
func querySet(universe *state.Universe, queries []string) (map[int]bool, error) {
	depGraph := universe.DepGraph()
	revGraph := graph.Sort(graph.Transpose(depGraph))
	qset := map[int]bool{}

	for _, query := range queries {
		idx := universe.Lookup(query)
		if idx == -1 {
			return nil, fmt.Errorf("unable to find package or artifact %s", query)
		}

		qset[idx] = true
		utils.BFSWithDepth(depGraph, idx, func(node int, depth int) bool {
			if depth > forward {
				return true
			}
			qset[node] = true
			return false
		})
		if reverse > 0 {
			utils.BFSWithDepth(revGraph, idx, func(node int, depth int) bool {
				if depth > reverse {
					return true
				}
				qset[node] = true
				return false
			})
		}
	}

	return qset, nil
}

func runOrder(cmd *cobra.Command, args []string) {
	universe := loadUniverse(args[0])

	show := func(int) bool { return true }
	if len(args) > 1 {
		qset, err := querySet(universe, utils.Uniq(args[1:]))
		if err != nil {
			waterlog.Fatalf("Failed to resolve query: %s\n", err)
		}
		show = func(i int) bool { return qset[i] }
	}

	depGraph := universe.DepGraph()
	waterlog.Debugf("Dependency graph hash: %s\n", utils.GraphHash(depGraph))

	plan := state.Resolve(universe)

	if dotPath != "" {
		unresolved := map[int]bool{}
		for _, idx := range plan.Unresolved {
			unresolved[idx] = true
		}

		dotFile, err := os.Create(dotPath)
		if err != nil {
			waterlog.Fatalf("Failed to create DOT file at %s: %s\n", dotPath, err)
		}
		defer dotFile.Close()

		// Depends sets are consumed by now; the graph snapshot taken
		// above still reflects the input, so render from that.
		if err := state.WriteDOTFromGraph(universe, depGraph, unresolved, dotFile); err != nil {
			waterlog.Fatalf("Failed to export dependency graph to %s: %s\n", dotPath, err)
		}
	}

	if err := plan.Err(universe); err != nil {
		reportStall(universe, plan)
		waterlog.Fatalf("Failed to compute build order: %s\n", err)
	}

	if tiers {
		for tierIdx, tier := range plan.Tiers {
			waterlog.Goodf("Tier %d: ", tierIdx+1)
			for _, idx := range tier {
				if show(idx) {
					fmt.Printf("%s ", universe.Package(idx).Show(showSub, true))
				}
			}
			fmt.Println()
		}
	} else {
		waterlog.Good("Build order: ")
		for _, idx := range plan.Ordered {
			if show(idx) {
				fmt.Printf("%s ", universe.Package(idx).Show(showSub, true))
			}
		}
		fmt.Println()
	}
}

// reportStall prints every package the resolver could not place, then the
// dependency cycles among them as a hint. The cycle list is a diagnostic
// aid only: packages merely blocked behind a cycle are just as unresolved.
func reportStall(universe *state.Universe, plan state.Plan) {
	waterlog.Errorln("Some packages cannot be ordered:")
	for _, idx := range plan.Unresolved {
		pkg := universe.Package(idx)
		waterlog.Errorf("%s:", pkg.Name)
		for dep := range pkg.Depends.Iter() {
			waterlog.Printf(" %s", dep)
		}
		waterlog.Println()
	}

	stalled := map[int]bool{}
	for _, idx := range plan.Unresolved {
		stalled[idx] = true
	}

	cycles := utils.Filter(graph.StrongComponents(universe.DepGraph()), func(comp []int) bool {
		return len(comp) > 1 && stalled[comp[0]]
	})
	for cycleIdx, cycle := range cycles {
		waterlog.Warnf("Cycle %d:", cycleIdx+1)
		for _, idx := range cycle {
			waterlog.Printf(" %s", universe.Package(idx).Show(showSub, true))
		}
		waterlog.Println()
	}
}
