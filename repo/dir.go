// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package repo

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Dir is a repository laid out as <root>/<dist>/<arch>/<name>-<ver>-r<rel>.apk.
type Dir struct {
	root string

	// listing cache per dist/arch, one snapshot per run
	entries map[string][]string
}

func NewDir(root string) *Dir {
	return &Dir{
		root:    root,
		entries: make(map[string][]string),
	}
}

func (d *Dir) list(dist string, arch string) ([]string, error) {
	key := dist + "/" + arch
	if cached, ok := d.entries[key]; ok {
		return cached, nil
	}

	files, err := os.ReadDir(filepath.Join(d.root, dist, arch))
	if err != nil {
		if os.IsNotExist(err) {
			// An absent repository directory has no artifacts in it.
			d.entries[key] = nil
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list repository %s/%s: %w", dist, arch, err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if !file.IsDir() {
			names = append(names, file.Name())
		}
	}
	d.entries[key] = names

	return names, nil
}

// Exists reports whether an artifact of the given name is present,
// regardless of version or release: the file stem up to the version part
// must equal the name exactly, so `foo` never matches `foo-doc`'s files.
func (d *Dir) Exists(dist string, arch string, name string) (bool, error) {
	files, err := d.list(dist, arch)
	if err != nil {
		return false, err
	}

	for _, file := range files {
		if ok, _ := path.Match(name+"-[0-9]*.apk", file); ok {
			return true, nil
		}
	}

	return false, nil
}
