// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package udrdiscovery

import (
	"testing"

	"github.com/omec-project/pcf/policymodels"
)

func TestDiscoverUdrSelectsLowestPriority(t *testing.T) {
	candidates := []*policymodels.UdrInstance{
		{Id: "udr-a", Priority: 10},
		{Id: "udr-b", Priority: 20},
		{Id: "udr-c", Priority: 5},
	}
	selected := DiscoverUdr(candidates, "imsi-208930000000001", nil, "internet")
	if selected == nil || selected.Id != "udr-c" {
		t.Errorf("expected udr-c, got %+v", selected)
	}
}

func TestDiscoverUdrTieBreakFirstEncountered(t *testing.T) {
	candidates := []*policymodels.UdrInstance{
		{Id: "udr-first", Priority: 10},
		{Id: "udr-second", Priority: 10},
	}
	selected := DiscoverUdr(candidates, "imsi-208930000000001", nil, "internet")
	if selected == nil || selected.Id != "udr-first" {
		t.Errorf("expected first-encountered winner, got %+v", selected)
	}
}

func TestDiscoverUdrSliceAffinity(t *testing.T) {
	sst1 := int32(1)
	candidates := []*policymodels.UdrInstance{
		{Id: "udr-general", Priority: 10},
		{Id: "udr-slice", Priority: 5, RequiredSliceSst: &sst1},
	}

	testCases := []struct {
		name      string
		sliceInfo *policymodels.Snssai
		expected  string
	}{
		{name: "MatchingSlice", sliceInfo: &policymodels.Snssai{Sst: 1}, expected: "udr-slice"},
		{name: "MismatchedSlice", sliceInfo: &policymodels.Snssai{Sst: 2}, expected: "udr-general"},
		{name: "NoSliceInfo", sliceInfo: nil, expected: "udr-general"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			selected := DiscoverUdr(candidates, "imsi-208930000000001", tc.sliceInfo, "internet")
			if selected == nil || selected.Id != tc.expected {
				t.Errorf("expected %s, got %+v", tc.expected, selected)
			}
		})
	}
}

func TestDiscoverUdrNoneAvailable(t *testing.T) {
	sst1 := int32(1)
	candidates := []*policymodels.UdrInstance{
		{Id: "udr-slice", Priority: 5, RequiredSliceSst: &sst1},
	}
	if selected := DiscoverUdr(candidates, "imsi-208930000000001", &policymodels.Snssai{Sst: 2}, "internet"); selected != nil {
		t.Errorf("expected nil for no available candidates, got %+v", selected)
	}
	if selected := DiscoverUdr(nil, "imsi-208930000000001", nil, "internet"); selected != nil {
		t.Errorf("expected nil for empty candidate set, got %+v", selected)
	}
}

func TestDefaultCandidatesSliceSpecificWinsForSst1(t *testing.T) {
	selected := DiscoverUdr(DefaultCandidates(), "imsi-208930000000001",
		&policymodels.Snssai{Sst: 1, Sd: "000001"}, "internet")
	if selected == nil || selected.Id != "udr-slice-specific" {
		t.Errorf("expected udr-slice-specific, got %+v", selected)
	}
}
