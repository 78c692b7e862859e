// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RecipeYML is the on-disk schema of a recipe.yml file. The list-valued
// fields are kept as raw yaml nodes so that a malformed list degrades to an
// empty one instead of failing the whole recipe.
type RecipeYML struct {
	Name        string    `yaml:"name"`
	Version     string    `yaml:"version"`
	Release     int       `yaml:"release"`
	BuildDeps   yaml.Node `yaml:"builddeps"`
	SubPackages yaml.Node `yaml:"subpackages"`
	Versions    yaml.Node `yaml:"versions"`
	Setup       string    `yaml:"setup"`
	Build       string    `yaml:"build"`
	Install     string    `yaml:"install"`
}

func Load(path string) (rml RecipeYML, err error) {
	raw, err := os.Open(path)
	if err != nil {
		return
	}
	defer raw.Close()
	dec := yaml.NewDecoder(raw)
	err = dec.Decode(&rml)
	return
}

// Strings extracts the scalar entries of a sequence node. Anything that is
// not a sequence of scalars yields nothing; whitespace-only entries are
// dropped.
func Strings(node yaml.Node) (res []string) {
	if node.Kind != yaml.SequenceNode {
		return
	}

	for _, child := range node.Content {
		if child.Kind != yaml.ScalarNode {
			continue
		}
		val := strings.TrimSpace(child.Value)
		if val == "" {
			continue
		}
		res = append(res, val)
	}

	return
}
