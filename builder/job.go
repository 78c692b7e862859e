// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package builder

import "time"

// Job records the outcome of one package's build invocation.
type Job struct {
	Pkg      string
	Started  time.Time
	Duration time.Duration
	Err      error
}

func (j Job) Failed() bool {
	return j.Err != nil
}

// Failed filters a run's jobs down to the failures.
func Failed(jobs []Job) (res []Job) {
	for _, job := range jobs {
		if job.Failed() {
			res = append(res, job)
		}
	}
	return
}
