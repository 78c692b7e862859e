// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"

	"github.com/DataDrake/waterlog"
	"github.com/alpine-ros/repobuild/builder"
	"github.com/alpine-ros/repobuild/common"
	"github.com/alpine-ros/repobuild/repo"
	"github.com/alpine-ros/repobuild/state"
	"github.com/alpine-ros/repobuild/utils"
	"github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"
)

var (
	repoLocator string
	builderCmd  string
	dryRun      bool

	cmdBuild = &cobra.Command{
		Use:   "build <recipes-dir>",
		Short: "Build every out-of-date recipe in dependency order",
		Long: `Compute the build order of the recipes applicable to the given platform
version, skip the packages whose artifacts all exist in the target repository
already, and run the build command for the rest.

A package failing to build does not stop the run; the failures are reported
together at the end. If you get a cycles output, run repobuild order on the
cycle members for a more detailed view.`,
		Run:  runBuild,
		Args: cobra.ExactArgs(1),
	}
)

func init() {
	cmdBuild.Flags().StringVarP(&repoLocator, "repo", "r", "", "target repository: a local directory or an http(s) index URL")
	cmdBuild.MarkFlagRequired("repo")
	cmdBuild.Flags().StringVarP(&builderCmd, "builder", "b", "abuild -r", "build command to run in each recipe directory")
	cmdBuild.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print what would be built without building")
	targetInit(cmdBuild)
}

func runBuild(cmd *cobra.Command, args []string) {
	universe := loadUniverse(args[0])
	logHead(args[0])

	plan := state.Resolve(universe)
	if err := plan.Err(universe); err != nil {
		reportStall(universe, plan)
		waterlog.Fatalf("Failed to compute build order: %s\n", err)
	}
	waterlog.Goodf("Resolved a build order for all %d package(s)\n", universe.Len())

	repository := repo.Open(repoLocator)

	var toBuild []*common.Package
	for _, idx := range plan.Ordered {
		pkg := universe.Package(idx)
		if repo.UpToDate(pkg, repository, distribution, arch) {
			waterlog.Infof("Package %s is up to date, skipping\n", pkg.Name)
			continue
		}
		toBuild = append(toBuild, pkg)
	}

	if len(toBuild) == 0 {
		waterlog.Goodln("Everything is up to date, nothing to build.")
		return
	}

	waterlog.Good("Will build:")
	for _, pkg := range toBuild {
		waterlog.Printf(" %s", pkg.Name)
	}
	waterlog.Println()

	jobs := builder.Run(toBuild, &builder.Builder{Command: builderCmd, DryRun: dryRun})

	failed := builder.Failed(jobs)
	if len(failed) > 0 {
		waterlog.Errorf("%d of %d package(s) failed to build:", len(failed), len(jobs))
		for _, job := range failed {
			waterlog.Printf(" %s", job.Pkg)
		}
		waterlog.Println()
		os.Exit(1)
	}

	waterlog.Goodf("All %d package(s) built successfully!\n", len(jobs))
}

// logHead records which source revision this run built from, when the
// recipe tree is a git work tree.
func logHead(path string) {
	if !utils.PathExists(filepath.Join(path, ".git")) {
		return
	}

	gitRepo, err := git.PlainOpen(path)
	if err != nil {
		waterlog.Debugf("Failed to open git repository at %s: %s\n", path, err)
		return
	}

	ref, err := gitRepo.Head()
	if err != nil {
		waterlog.Debugf("Failed to get HEAD of repository at %s: %s\n", path, err)
		return
	}

	waterlog.Infof("Building from %s at %s\n", ref.Name().Short(), ref.Hash().String()[:8])
}
