// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package udrdiscovery

import (
	"context"

	"github.com/omec-project/pcf/backend/factory"
	"github.com/omec-project/pcf/policymodels"
)

// CandidateProvider supplies the UDR candidate set, normally sourced from an
// NRF or from static configuration.
type CandidateProvider interface {
	ListUdrCandidates(ctx context.Context) ([]*policymodels.UdrInstance, error)
}

// SubscriptionFetcher retrieves policy-relevant subscription data from a
// selected UDR instance (Nudr_DataRepository).
type SubscriptionFetcher interface {
	FetchSubscriptionData(ctx context.Context, udr *policymodels.UdrInstance, supi, dnn string) (*policymodels.SubscriptionData, error)
}

// StaticProvider serves candidates and canned subscription data without any
// network access. It backs deployments without a subscriber store and the
// test suite.
type StaticProvider struct {
	Candidates []*policymodels.UdrInstance
}

// NewStaticProvider builds a provider from configured UDR profiles, falling
// back to the built-in candidate set when none are configured.
func NewStaticProvider(profiles []*factory.UdrProfile) *StaticProvider {
	if len(profiles) == 0 {
		return &StaticProvider{Candidates: DefaultCandidates()}
	}
	candidates := make([]*policymodels.UdrInstance, 0, len(profiles))
	for _, p := range profiles {
		candidates = append(candidates, &policymodels.UdrInstance{
			Id:                p.Id,
			Address:           p.Address,
			Priority:          p.Priority,
			Capacity:          p.Capacity,
			SupportedFeatures: p.SupportedFeatures,
			RequiredSliceSst:  p.SliceSst,
		})
	}
	return &StaticProvider{Candidates: candidates}
}

// DefaultCandidates is the built-in UDR candidate set: two general-purpose
// instances and one slice-specialized instance bound to SST 1.
func DefaultCandidates() []*policymodels.UdrInstance {
	sliceSst := int32(1)
	return []*policymodels.UdrInstance{
		{
			Id:                "udr-instance-1",
			Address:           "https://udr-1.5gc.example.com",
			Priority:          10,
			Capacity:          100,
			SupportedFeatures: []string{"Rel16", "SliceSelection", "StructuredDataStorage"},
		},
		{
			Id:                "udr-instance-2",
			Address:           "https://udr-2.5gc.example.com",
			Priority:          20,
			Capacity:          80,
			SupportedFeatures: []string{"Rel16", "SliceSelection"},
		},
		{
			Id:                "udr-slice-specific",
			Address:           "https://udr-slice.5gc.example.com",
			Priority:          5,
			Capacity:          100,
			SupportedFeatures: []string{"Rel16", "SliceSelection", "StructuredDataStorage"},
			RequiredSliceSst:  &sliceSst,
		},
	}
}

func (p *StaticProvider) ListUdrCandidates(ctx context.Context) ([]*policymodels.UdrInstance, error) {
	return p.Candidates, nil
}

// FetchSubscriptionData returns the canned subscription tree a real UDR would
// serve for a provisioned subscriber.
func (p *StaticProvider) FetchSubscriptionData(ctx context.Context, udr *policymodels.UdrInstance, supi, dnn string) (*policymodels.SubscriptionData, error) {
	if dnn == "" {
		dnn = "internet"
	}
	return &policymodels.SubscriptionData{
		PolicyData: &policymodels.PolicyData{
			SmPolicyData: &policymodels.SmPolicyData{
				SmPolicySnssaiData: map[string]*policymodels.SmPolicySnssaiData{
					"1-000001": {
						SmPolicyDnnData: map[string]*policymodels.SmPolicyDnnData{
							dnn: {
								AllowedServices:    []string{"service-1", "service-2"},
								SubscCats:          []string{"cat-1", "cat-2"},
								GbrUl:              "10 Mbps",
								GbrDl:              "50 Mbps",
								MaxBrUl:            "100 Mbps",
								MaxBrDl:            "500 Mbps",
								QosClassIdentifier: 9,
								RatingGroup:        10,
								Online:             true,
								Offline:            true,
							},
						},
					},
				},
			},
			UePolicy: &policymodels.UePolicy{
				SubscCats: []string{"premium", "streaming"},
			},
		},
	}, nil
}
