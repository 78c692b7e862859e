// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package common

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/DataDrake/waterlog"
	"github.com/alpine-ros/repobuild/config"
	"github.com/alpine-ros/repobuild/recipe"
	"github.com/alpine-ros/repobuild/utils"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/jwalton/gchalk"
)

// Package is one unit of build work for a run.
//
// BuildDeps and Provides are fixed once the recipe is parsed. Depends is the
// live set the resolver consumes: it starts as the unsatisfied subset of
// BuildDeps and only ever shrinks.
type Package struct {
	Path      string
	Root      string
	Name      string
	Version   string
	Release   int
	Versions  []string
	BuildDeps []string
	Provides  []string
	Depends   mapset.Set[string]
}

// Show is the toString method for a package.
//
// When `sub` is true, show the subpackage artifacts this package provides.
// When `color` is true, show them in gray for easier viewing.
func (p *Package) Show(sub bool, color bool) string {
	if !sub {
		return p.Name
	} else if color {
		return p.Name + gchalk.Gray(fmt.Sprintf("{%s}", strings.Join(p.Provides, ", ")))
	} else {
		return fmt.Sprintf("%s{%s}", p.Name, strings.Join(p.Provides, ", "))
	}
}

// ParsePackage parses the source package within the given `dir` directory.
// A `recipe.yml` file must be located at `dir/recipe.yml`; a `repobuild.yml`
// next to it may adjust extraction.
func ParsePackage(dir string) (pkg Package, err error) {
	rml, err := recipe.Load(filepath.Join(dir, "recipe.yml"))
	if err != nil {
		err = fmt.Errorf("failed to load recipe.yml for %s: %w", dir, err)
		return
	}

	pkg = Package{
		Path:     dir,
		Name:     rml.Name,
		Version:  rml.Version,
		Release:  rml.Release,
		Versions: recipe.Strings(rml.Versions),
	}

	pkg.BuildDeps = recipe.Strings(rml.BuildDeps)
	pkg.Provides = append(pkg.Provides, pkg.Name)
	pkg.Provides = append(pkg.Provides, recipe.Strings(rml.SubPackages)...)
	pkg.Provides = utils.Uniq(pkg.Provides)

	cfgFile := filepath.Join(dir, "repobuild.yml")
	if utils.PathExists(cfgFile) {
		var cfg config.RepobuildConfig
		if cfg, err = config.Load(cfgFile); err != nil {
			err = fmt.Errorf("failed to load repobuild config file for %s: %w", dir, err)
			return
		}

		for _, ignore := range cfg.Solver.Ignore {
			regex, rerr := regexp.Compile(ignore)
			if rerr != nil {
				waterlog.Warnf("Ignoring bad solver ignore pattern %q for %s: %s\n", ignore, pkg.Name, rerr)
				continue
			}
			pkg.BuildDeps = utils.Filter(pkg.BuildDeps, func(dep string) bool {
				if regex.FindString(dep) == dep {
					waterlog.Debugf("Dropping builddep %s from %s due to ignore regex %s\n", dep, pkg.Name, regex.String())
					return false
				}
				return true
			})
		}
	}

	slices.Sort(pkg.BuildDeps)
	pkg.BuildDeps = utils.Uniq(pkg.BuildDeps)
	slices.Sort(pkg.Provides)

	return
}
