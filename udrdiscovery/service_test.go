// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package udrdiscovery

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/omec-project/pcf/policymodels"
)

type failingFetcher struct{}

func (f *failingFetcher) FetchSubscriptionData(ctx context.Context, udr *policymodels.UdrInstance, supi, dnn string) (*policymodels.SubscriptionData, error) {
	return nil, errors.New("connection refused")
}

type panickingFetcher struct{}

func (f *panickingFetcher) FetchSubscriptionData(ctx context.Context, udr *policymodels.UdrInstance, supi, dnn string) (*policymodels.SubscriptionData, error) {
	panic("fetcher blew up")
}

func testContextData() *policymodels.SmPolicyContextData {
	pduSessionId := int32(1)
	return &policymodels.SmPolicyContextData{
		Supi:            "imsi-208930000000001",
		PduSessionId:    &pduSessionId,
		PduSessionType:  policymodels.PduSessionTypeIPv4,
		Dnn:             "internet",
		NotificationUri: "https://smf.5gc.example.com/callback",
		SliceInfo:       &policymodels.Snssai{Sst: 1, Sd: "000001"},
	}
}

func TestRetrievePolicyDataSuccess(t *testing.T) {
	provider := NewStaticProvider(nil)
	service := NewService(provider, provider)

	response := service.RetrievePolicyData(context.Background(), testContextData())
	if !response.Success {
		t.Fatalf("expected success, got error %q", response.Error)
	}
	if response.SelectedUdr == nil || response.SelectedUdr.Id != "udr-slice-specific" {
		t.Errorf("unexpected selected UDR %+v", response.SelectedUdr)
	}
	subData := response.SubscriptionData
	if subData == nil || subData.PolicyData == nil || subData.PolicyData.UePolicy == nil {
		t.Fatal("expected subscription data with UE policy")
	}
	dnnData := subData.PolicyData.SmPolicyData.SmPolicySnssaiData["1-000001"].SmPolicyDnnData["internet"]
	if dnnData == nil || dnnData.MaxBrUl != "100 Mbps" {
		t.Errorf("unexpected DNN policy data %+v", dnnData)
	}
}

func TestRetrievePolicyDataNoCandidates(t *testing.T) {
	service := NewService(&StaticProvider{}, &StaticProvider{})

	response := service.RetrievePolicyData(context.Background(), testContextData())
	if response.Success {
		t.Fatal("expected failure for empty candidate set")
	}
	if response.Error != "no suitable UDR instance found" {
		t.Errorf("unexpected error %q", response.Error)
	}
}

func TestRetrievePolicyDataFetcherError(t *testing.T) {
	service := NewService(NewStaticProvider(nil), &failingFetcher{})

	response := service.RetrievePolicyData(context.Background(), testContextData())
	if response.Success {
		t.Fatal("expected failure when fetcher errors")
	}
	if response.SelectedUdr == nil {
		t.Error("expected selected UDR to be reported even on query failure")
	}
	if !strings.Contains(response.Error, "connection refused") {
		t.Errorf("expected fetcher error to be surfaced, got %q", response.Error)
	}
}

func TestRetrievePolicyDataFetcherPanic(t *testing.T) {
	service := NewService(NewStaticProvider(nil), &panickingFetcher{})

	response := service.RetrievePolicyData(context.Background(), testContextData())
	if response.Success {
		t.Fatal("expected failure when fetcher panics")
	}
	if !strings.Contains(response.Error, "unexpected fault") {
		t.Errorf("expected recovered fault in error, got %q", response.Error)
	}
}

func TestStaticProviderConfiguredCandidates(t *testing.T) {
	provider := NewStaticProvider(nil)
	candidates, err := provider.ListUdrCandidates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 3 {
		t.Errorf("expected 3 built-in candidates, got %d", len(candidates))
	}
}
