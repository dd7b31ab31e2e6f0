// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package udrdiscovery

import (
	"context"
	"fmt"

	"github.com/omec-project/pcf/backend/logger"
	"github.com/omec-project/pcf/policymodels"
)

// Service runs the discover-then-query sequence against an injected data
// source. Any fault is converted into a failed UdrQueryResponse so that
// policy creation can degrade instead of aborting.
type Service struct {
	Candidates CandidateProvider
	Fetcher    SubscriptionFetcher
}

func NewService(candidates CandidateProvider, fetcher SubscriptionFetcher) *Service {
	return &Service{Candidates: candidates, Fetcher: fetcher}
}

// RetrievePolicyData discovers the best UDR for the session and queries it for
// subscription data. The query depends on the discovery result, so the two
// steps run sequentially.
func (s *Service) RetrievePolicyData(ctx context.Context, ctxData *policymodels.SmPolicyContextData) (response *policymodels.UdrQueryResponse) {
	defer func() {
		if r := recover(); r != nil {
			logger.UdrLog.Errorf("panic while retrieving policy data from UDR: %v", r)
			response = &policymodels.UdrQueryResponse{
				Success: false,
				Error:   fmt.Sprintf("unexpected fault during UDR interaction: %v", r),
			}
		}
	}()

	candidates, err := s.Candidates.ListUdrCandidates(ctx)
	if err != nil {
		logger.UdrLog.Errorf("error listing UDR candidates: %v", err)
		return &policymodels.UdrQueryResponse{
			Success: false,
			Error:   fmt.Sprintf("error listing UDR candidates: %v", err),
		}
	}

	udr := DiscoverUdr(candidates, ctxData.Supi, ctxData.SliceInfo, ctxData.Dnn)
	if udr == nil {
		return &policymodels.UdrQueryResponse{
			Success: false,
			Error:   "no suitable UDR instance found",
		}
	}

	logger.UdrLog.Infof("querying UDR %s for policy data, SUPI %s, DNN %s", udr.Id, ctxData.Supi, ctxData.Dnn)
	subData, err := s.Fetcher.FetchSubscriptionData(ctx, udr, ctxData.Supi, ctxData.Dnn)
	if err != nil {
		logger.UdrLog.Errorf("error querying UDR %s: %v", udr.Id, err)
		return &policymodels.UdrQueryResponse{
			Success:     false,
			SelectedUdr: udr,
			Error:       err.Error(),
		}
	}

	return &policymodels.UdrQueryResponse{
		Success:          true,
		SelectedUdr:      udr,
		SubscriptionData: subData,
	}
}
