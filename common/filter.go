// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package common

import (
	"path"

	"github.com/DataDrake/waterlog"
	"github.com/alpine-ros/repobuild/utils"
)

// Applies reports whether the package applies to the given platform version.
// No versions list means the package applies everywhere. A malformed glob
// fails open: the package is kept rather than dropped from the run.
func (p *Package) Applies(version string) bool {
	if len(p.Versions) == 0 {
		return true
	}

	for _, pattern := range p.Versions {
		ok, err := path.Match(pattern, version)
		if err != nil {
			waterlog.Warnf("Package %s has bad version pattern %q, assuming it applies: %s\n", p.Name, pattern, err)
			return true
		}
		if ok {
			return true
		}
	}

	return false
}

// FilterPlatform keeps the packages applicable to the given platform version.
func FilterPlatform(pkgs []Package, version string) []Package {
	return utils.Filter(pkgs, func(pkg Package) bool {
		if !pkg.Applies(version) {
			waterlog.Debugf("Skipping %s: not applicable to platform version %s\n", pkg.Name, version)
			return false
		}
		return true
	})
}
