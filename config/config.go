// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RepobuildConfig is the optional per-recipe override file (repobuild.yml)
// sitting next to recipe.yml.
type RepobuildConfig struct {
	Ignore bool         `yaml:"ignore"`
	Solver SolverConfig `yaml:"solver"`
}

func Load(path string) (cfg RepobuildConfig, err error) {
	raw, err := os.Open(path)
	if err != nil {
		return
	}
	defer raw.Close()
	dec := yaml.NewDecoder(raw)
	err = dec.Decode(&cfg)
	return
}
