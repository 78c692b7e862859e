// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirExists(t *testing.T) {
	root := t.TempDir()
	archDir := filepath.Join(root, "alpine", "x86_64")
	require.NoError(t, os.MkdirAll(archDir, 0o755))
	for _, file := range []string{"foo-1.0.0-r2.apk", "foo-doc-1.0.0-r2.apk"} {
		require.NoError(t, os.WriteFile(filepath.Join(archDir, file), nil, 0o644))
	}

	d := NewDir(root)

	tests := []struct {
		name string
		want bool
	}{
		{"foo", true},
		{"foo-doc", true},
		{"foo-dev", false},
		{"fo", false},
		{"bar", false},
	}
	for _, tt := range tests {
		got, err := d.Exists("alpine", "x86_64", tt.name)
		require.NoError(t, err)
		assert.Equalf(t, tt.want, got, "artifact %s", tt.name)
	}
}

func TestDirMissingRepositoryHasNoArtifacts(t *testing.T) {
	d := NewDir(t.TempDir())

	got, err := d.Exists("alpine", "aarch64", "foo")
	require.NoError(t, err)
	assert.False(t, got)
}
