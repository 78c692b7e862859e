// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package repo

import (
	"github.com/DataDrake/waterlog"
	"github.com/alpine-ros/repobuild/common"
)

// UpToDate reports whether every artifact the package provides already
// exists in the repository for the given distribution and architecture.
// This is a presence check only, no version or content comparison: an
// artifact of the same name counts, whatever release produced it.
//
// An oracle failure counts as not up to date, so an unreachable repository
// causes a rebuild instead of a silent skip.
func UpToDate(pkg *common.Package, r Repository, dist string, arch string) bool {
	for _, name := range pkg.Provides {
		ok, err := r.Exists(dist, arch, name)
		if err != nil {
			waterlog.Warnf("Failed to check repository for %s of package %s, will rebuild: %s\n", name, pkg.Name, err)
			return false
		}
		if !ok {
			return false
		}
	}

	return true
}
