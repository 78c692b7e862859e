// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package config

type SolverConfig struct {
	// Ignore holds regexes; build dependencies matching one of them are
	// dropped at extraction time.
	Ignore []string `yaml:"ignore"`
}
