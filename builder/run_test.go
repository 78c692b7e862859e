// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"testing"

	"github.com/alpine-ros/repobuild/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPkg(t *testing.T, name string) *common.Package {
	t.Helper()
	return &common.Package{Name: name, Path: t.TempDir()}
}

func TestBuildSuccess(t *testing.T) {
	b := &Builder{Command: "true"}
	assert.NoError(t, b.Build(testPkg(t, "ok")))
}

func TestBuildFailure(t *testing.T) {
	b := &Builder{Command: "false"}
	err := b.Build(testPkg(t, "broken"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestBuildDryRunNeverExecutes(t *testing.T) {
	b := &Builder{Command: "definitely-not-a-command-9000", DryRun: true}
	assert.NoError(t, b.Build(testPkg(t, "dry")))
}

func TestRunContinuesPastFailures(t *testing.T) {
	pkgs := []*common.Package{
		testPkg(t, "first"),
		testPkg(t, "second"),
		testPkg(t, "third"),
	}

	jobs := Run(pkgs, &Builder{Command: "false"})

	require.Len(t, jobs, 3)
	failed := Failed(jobs)
	require.Len(t, failed, 3)
	assert.Equal(t, "first", failed[0].Pkg)
	assert.Equal(t, "third", failed[2].Pkg)
}

func TestRunReportsNoFailuresOnSuccess(t *testing.T) {
	pkgs := []*common.Package{
		testPkg(t, "a"),
		testPkg(t, "b"),
	}

	jobs := Run(pkgs, &Builder{Command: "true"})

	require.Len(t, jobs, 2)
	assert.Empty(t, Failed(jobs))
}
