// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package state

import "github.com/alpine-ros/repobuild/utils"

// Resolve computes a dependency-respecting build order by repeated passes
// over the universe: every pass collects the packages whose live Depends set
// is empty (the ready batch), places them, and subtracts everything they
// provide from the Depends sets of the packages still waiting. A dependency
// is satisfied by any artifact of its provider, so the subtraction sweeps
// the full Provides set, not just the provider's name.
//
// A pass with an empty ready batch while packages remain means no order
// exists for the remainder; the whole remainder is reported as Unresolved
// rather than guessing a partial order among it.
//
// Resolution is destructive: the universe's Depends sets are consumed. The
// output order among simultaneously ready packages is the universe order,
// so equal inputs give equal plans.
func Resolve(u *Universe) (plan Plan) {
	remaining := make([]int, 0, u.Len())
	for idx := 0; idx < u.Len(); idx++ {
		remaining = append(remaining, idx)
	}

	for len(remaining) > 0 {
		ready := make([]int, 0, len(remaining))
		waiting := make([]int, 0, len(remaining))

		for _, idx := range remaining {
			if u.Package(idx).Depends.IsEmpty() {
				ready = append(ready, idx)
			} else {
				waiting = append(waiting, idx)
			}
		}

		if len(ready) == 0 {
			plan.Unresolved = remaining
			break
		}

		for _, idx := range ready {
			provides := u.Package(idx).Provides
			for _, waitIdx := range waiting {
				u.Package(waitIdx).Depends.RemoveAll(provides...)
			}
		}

		plan.Tiers = append(plan.Tiers, ready)
		remaining = waiting
	}

	plan.Ordered = utils.Flatten(plan.Tiers)
	return
}
