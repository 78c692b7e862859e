// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package common

import (
	"cmp"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sync"

	"github.com/alpine-ros/repobuild/config"
	"github.com/alpine-ros/repobuild/utils"
	"github.com/charlievieth/fastwalk"
)

// ReadPackages walks the recipe tree rooted at `path` and parses every
// directory containing a recipe.yml. Directories whose repobuild.yml sets
// `ignore: true` are skipped entirely. The result is sorted by name; this
// order is the resolver's tie-break order, so it must be stable.
func ReadPackages(path string) (pkgs []Package, err error) {
	walkConf := fastwalk.Config{
		Follow: false,
	}
	var mutex sync.Mutex

	err = fastwalk.Walk(&walkConf, path, func(pkgpath string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}

		cfgFile := filepath.Join(pkgpath, "repobuild.yml")
		if utils.PathExists(cfgFile) {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load repobuild config file at %s: %w", cfgFile, err)
			}

			if cfg.Ignore {
				return filepath.SkipDir
			}
		}

		if !utils.PathExists(filepath.Join(pkgpath, "recipe.yml")) {
			return nil
		}

		pkg, err := ParsePackage(pkgpath)
		if err != nil {
			return err
		}
		pkg.Root = path

		mutex.Lock()
		pkgs = append(pkgs, pkg)
		mutex.Unlock()

		return filepath.SkipDir
	})
	if err != nil {
		return
	}

	slices.SortFunc(pkgs, func(a, b Package) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return
}
