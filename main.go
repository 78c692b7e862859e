// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/alpine-ros/repobuild/cmd"
)

func main() {
	cmd.Execute()
}
