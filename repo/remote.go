// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package repo

import (
	"bufio"
	"fmt"
	"net/http"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ulikunitz/xz"
)

// Remote answers existence queries from an xz-compressed artifact name list
// published at <base>/<dist>/<arch>/index.txt.xz. The index is fetched once
// per (dist, arch) and reused for the rest of the run.
type Remote struct {
	base    string
	client  *http.Client
	indices map[string]mapset.Set[string]
}

func NewRemote(base string) *Remote {
	return &Remote{
		base:    strings.TrimRight(base, "/"),
		client:  http.DefaultClient,
		indices: make(map[string]mapset.Set[string]),
	}
}

func (r *Remote) index(dist string, arch string) (mapset.Set[string], error) {
	key := dist + "/" + arch
	if cached, ok := r.indices[key]; ok {
		return cached, nil
	}

	indexURL := fmt.Sprintf("%s/%s/%s/index.txt.xz", r.base, dist, arch)
	resp, err := r.client.Get(indexURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository index from url %s: %w", indexURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch repository index from url %s: %s", indexURL, resp.Status)
	}

	xzr, err := xz.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to create XZ reader for repository index from url %s: %w", indexURL, err)
	}

	names := mapset.NewThreadUnsafeSet[string]()
	scanner := bufio.NewScanner(xzr)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			names.Add(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read repository index from url %s: %w", indexURL, err)
	}

	r.indices[key] = names
	return names, nil
}

func (r *Remote) Exists(dist string, arch string, name string) (bool, error) {
	names, err := r.index(dist, arch)
	if err != nil {
		return false, err
	}
	return names.Contains(name), nil
}
