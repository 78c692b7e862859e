// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package repo

import "strings"

// Repository answers whether an artifact of the given name already exists
// for a (distribution, architecture) pair. Implementations answer from a
// point-in-time snapshot; callers must not expect a later query to observe
// artifacts added mid-run.
type Repository interface {
	Exists(dist string, arch string, name string) (bool, error)
}

// Open picks a repository implementation from its locator: an http(s) URL
// gives the remote index client, anything else is a local directory.
func Open(locator string) Repository {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return NewRemote(locator)
	}
	return NewDir(locator)
}
