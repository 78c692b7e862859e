// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package repo

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func xzIndex(t *testing.T, lines string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(lines))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRemoteExists(t *testing.T) {
	index := xzIndex(t, "ros-noetic-roscpp\nros-noetic-roscpp-doc\n\nros-noetic-rospy\n")
	fetches := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/alpine/x86_64/index.txt.xz" {
			http.NotFound(w, r)
			return
		}
		fetches++
		w.Write(index)
	}))
	defer srv.Close()

	remote := NewRemote(srv.URL)

	for name, want := range map[string]bool{
		"ros-noetic-roscpp":     true,
		"ros-noetic-roscpp-doc": true,
		"ros-noetic-rospy":      true,
		"ros-noetic-navigation": false,
	} {
		got, err := remote.Exists("alpine", "x86_64", name)
		require.NoError(t, err)
		assert.Equalf(t, want, got, "artifact %s", name)
	}

	// one snapshot per (dist, arch), however many queries
	assert.Equal(t, 1, fetches)
}

func TestRemoteMissingIndexIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	remote := NewRemote(srv.URL)

	_, err := remote.Exists("alpine", "x86_64", "foo")
	assert.Error(t, err)
}
