// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/alpine-ros/repobuild/common"
)

// Builder invokes the external build command in a recipe directory. The
// command is split on whitespace; no shell is involved.
type Builder struct {
	Command string
	DryRun  bool
}

// Build runs the build command for one package with the recipe directory as
// working directory. The error carries the command output, which is all the
// build tool gives us on failure.
func (b *Builder) Build(pkg *common.Package) error {
	if b.DryRun {
		return nil
	}

	parts := strings.Fields(b.Command)
	if len(parts) == 0 {
		return fmt.Errorf("no build command configured for %s", pkg.Name)
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Dir = pkg.Path
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("build command %q failed for %s: %w, output: %s", b.Command, pkg.Name, err, tail(output, 2048))
	}

	return nil
}

func tail(b []byte, n int) string {
	if len(b) > n {
		b = b[len(b)-n:]
	}
	return string(b)
}
