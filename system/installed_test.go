// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package system

import (
	"errors"
	"testing"

	"github.com/alpine-ros/repobuild/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKeepsOnlyUnsatisfied(t *testing.T) {
	pkgs := []common.Package{
		{Name: "a", BuildDeps: []string{"cmake", "libfoo"}},
		{Name: "b", BuildDeps: []string{"libfoo", "libbar"}},
		{Name: "c"},
	}

	installed := map[string]bool{"cmake": true, "libbar": true}
	queries := 0
	Classify(pkgs, func(name string) (bool, error) {
		queries++
		return installed[name], nil
	})

	assert.ElementsMatch(t, []string{"libfoo"}, pkgs[0].Depends.ToSlice())
	assert.ElementsMatch(t, []string{"libfoo"}, pkgs[1].Depends.ToSlice())
	assert.True(t, pkgs[2].Depends.IsEmpty())

	// one query per (package, dependency) pair
	assert.Equal(t, 4, queries)
}

func TestClassifyOracleErrorKeepsDependency(t *testing.T) {
	pkgs := []common.Package{
		{Name: "a", BuildDeps: []string{"flaky"}},
	}

	Classify(pkgs, func(name string) (bool, error) {
		return true, errors.New("oracle down")
	})

	assert.True(t, pkgs[0].Depends.Contains("flaky"))
}

func TestPkgMgrExitStatus(t *testing.T) {
	installed, err := PkgMgr("true")("anything")
	require.NoError(t, err)
	assert.True(t, installed)

	installed, err = PkgMgr("false")("anything")
	require.NoError(t, err)
	assert.False(t, installed)
}

func TestPkgMgrMissingCommand(t *testing.T) {
	_, err := PkgMgr("definitely-not-a-command-9000")("anything")
	assert.Error(t, err)
}

func TestPkgMgrEmptyCommand(t *testing.T) {
	_, err := PkgMgr("")("anything")
	assert.Error(t, err)

	_, err = PkgMgr("   ")("anything")
	assert.Error(t, err)
}
