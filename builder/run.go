// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"fmt"
	"time"

	"github.com/alpine-ros/repobuild/common"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

// Run builds every package in order and records one Job per package. A
// failed build is recorded and the run moves on to the next package; nothing
// here aborts the batch.
func Run(pkgs []*common.Package, b *Builder) (jobs []Job) {
	for _, pkg := range pkgs {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Prefix = " "
		s.Suffix = fmt.Sprintf("  Building %s", pkg.Name)
		s.Color("yellow")
		s.Start()

		job := Job{Pkg: pkg.Name, Started: time.Now()}
		job.Err = b.Build(pkg)
		job.Duration = time.Since(job.Started)

		if job.Err != nil {
			s.FinalMSG = fmt.Sprintf("%s %s failed to build: %s\n", red("[x]"), pkg.Name, job.Err)
		} else {
			s.FinalMSG = fmt.Sprintf("%s %s built successfully!\n", green("[✓]"), pkg.Name)
		}
		s.Stop()

		jobs = append(jobs, job)
	}

	return
}
