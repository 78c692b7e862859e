// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package system

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/DataDrake/waterlog"
	"github.com/alpine-ros/repobuild/common"
	mapset "github.com/deckarep/golang-set/v2"
)

// Available reports whether the named artifact is already present on the
// build host, i.e. it does not need to be produced by this run.
type Available func(name string) (bool, error)

// PkgMgr wraps the system package manager into an Available predicate. The
// command is invoked once per queried name with the name appended to its
// arguments; exit status zero means installed. The default is the apk
// installed-check, `apk info -e`.
func PkgMgr(command string) Available {
	parts := strings.Fields(command)

	return func(name string) (bool, error) {
		if len(parts) == 0 {
			return false, fmt.Errorf("no package manager command configured")
		}

		cmd := exec.Command(parts[0], append(parts[1:], name)...)
		err := cmd.Run()
		if err == nil {
			return true, nil
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}

		return false, err
	}
}

// Classify fills each package's live Depends set with the build dependencies
// that are not already available on the system. Each (package, dependency)
// pair queries the predicate exactly once. An oracle error keeps the
// dependency, so a flaky oracle can only delay a package, never build it
// before its dependencies.
func Classify(pkgs []common.Package, avail Available) {
	for idx := range pkgs {
		pkg := &pkgs[idx]
		pkg.Depends = mapset.NewThreadUnsafeSet[string]()

		for _, dep := range pkg.BuildDeps {
			ok, err := avail(dep)
			if err != nil {
				waterlog.Warnf("Failed to check whether %s is available, keeping it as a dependency of %s: %s\n", dep, pkg.Name, err)
				pkg.Depends.Add(dep)
				continue
			}
			if !ok {
				pkg.Depends.Add(dep)
			}
		}
	}
}
