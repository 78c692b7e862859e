// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/DataDrake/waterlog"
	"github.com/alpine-ros/repobuild/common"
	"github.com/alpine-ros/repobuild/state"
	"github.com/alpine-ros/repobuild/system"
	"github.com/spf13/cobra"
)

var (
	quiet   bool
	verbose bool

	distribution    string
	arch            string
	platformVersion string
	pkgMgrCmd       string
)

func targetInit(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&distribution, "distribution", "d", "alpine", "distribution name of the target repository")
	cmd.Flags().StringVarP(&arch, "arch", "a", "x86_64", "architecture of the target repository")
	cmd.Flags().StringVar(&platformVersion, "platform-version", "", "platform version to select recipes for")
	cmd.MarkFlagRequired("platform-version")
	cmd.Flags().StringVar(&pkgMgrCmd, "pkgmgr", "apk info -e", "command that exits zero when its last argument is an installed package")
}

// loadUniverse runs discovery, the platform filter, and the availability
// classifier, and hands back the universe ready for resolution.
func loadUniverse(path string) *state.Universe {
	pkgs, err := common.ReadPackages(path)
	if err != nil {
		waterlog.Fatalf("Failed to read recipes from %s: %s\n", path, err)
	}
	waterlog.Goodf("Found %d recipe(s) in %s\n", len(pkgs), path)

	pkgs = common.FilterPlatform(pkgs, platformVersion)
	waterlog.Infof("%d recipe(s) apply to platform version %s\n", len(pkgs), platformVersion)

	system.Classify(pkgs, system.PkgMgr(pkgMgrCmd))

	universe, err := state.NewUniverse(pkgs)
	if err != nil {
		waterlog.Fatalf("Failed to assemble package universe: %s\n", err)
	}

	return universe
}
