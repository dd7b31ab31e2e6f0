// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package smpolicy

import (
	"context"
	"fmt"

	"github.com/omec-project/pcf/backend/logger"
	"github.com/omec-project/pcf/policymodels"
)

// PolicyDataRetriever fetches subscription-shaped policy data for a PDU
// session context. Implementations live in udrdiscovery.
type PolicyDataRetriever interface {
	RetrievePolicyData(ctx context.Context, ctxData *policymodels.SmPolicyContextData) *policymodels.UdrQueryResponse
}

// Processor handles the Npcf_SMPolicyControl operations. A nil Retriever means
// every decision is derived from defaults only.
type Processor struct {
	Retriever PolicyDataRetriever
}

func NewProcessor(retriever PolicyDataRetriever) *Processor {
	return &Processor{Retriever: retriever}
}

// ProcessSmPolicyCreate runs the full create pipeline: validate, discover and
// query the UDR, derive rules, build the decision sub-maps and wrap the result
// in a success/failure envelope. UDR unavailability degrades to a default-only
// decision; it never fails session establishment. No error escapes to the
// caller.
func (p *Processor) ProcessSmPolicyCreate(ctx context.Context, request *policymodels.SmPolicyCreateRequest) (response *policymodels.SmPolicyResponse) {
	defer func() {
		if r := recover(); r != nil {
			logger.SmPolicyLog.Errorf("panic while processing SM policy create: %v", r)
			response = &policymodels.SmPolicyResponse{
				Status: policymodels.StatusFailure,
				Error: &policymodels.ProblemDetail{
					Code:    policymodels.SmPolicyErrorCode,
					Message: "Unknown error occurred",
					Details: fmt.Sprint(r),
				},
			}
		}
	}()

	if err := ValidateSmPolicyRequest(request); err != nil {
		logger.SmPolicyLog.Warnf("SM policy create request rejected: %v", err)
		return &policymodels.SmPolicyResponse{
			Status: policymodels.StatusFailure,
			Error: &policymodels.ProblemDetail{
				Code:    policymodels.SmPolicyErrorCode,
				Message: err.Error(),
				Details: err.Error(),
			},
		}
	}
	ctxData := request.SmPolicyContextData

	policyId := GeneratePolicyId()
	logger.SmPolicyLog.Infof("processing SM policy create for SUPI %s, PDU session %d, DNN %s",
		ctxData.Supi, *ctxData.PduSessionId, ctxData.Dnn)

	var subData *policymodels.SubscriptionData
	if p.Retriever != nil {
		udrResponse := p.Retriever.RetrievePolicyData(ctx, ctxData)
		if udrResponse == nil || !udrResponse.Success {
			errMsg := "no response"
			if udrResponse != nil {
				errMsg = udrResponse.Error
			}
			logger.SmPolicyLog.Warnf("UDR data retrieval issue: %s. Proceeding with default policies", errMsg)
		} else {
			subData = udrResponse.SubscriptionData
		}
	}

	decision := CreatePolicyDecision(ctxData, policyId, subData)
	decision.QosDecs = CreateQosDecisions(decision.PccRules)
	decision.ChgDecs = CreateChargingDecisions(decision.PccRules)
	decision.TraffContDecs = CreateTrafficControlDecisions(decision.PccRules)
	decision.Online, decision.Offline = chargingMethods(decision)
	decision.RevalidationTime = RevalidationTime()
	decision.UdrInfo = policymodels.UdrInfo{
		Accessed:    subData != nil,
		DataApplied: subData != nil,
	}

	logger.SmPolicyLog.Infof("SM policy decision %s created with %d PCC rule(s)",
		decision.Id, len(decision.PccRules))
	return &policymodels.SmPolicyResponse{
		Status: policymodels.StatusSuccess,
		Data:   decision,
	}
}

// chargingMethods reports whether any charging decision referenced by a PCC
// rule enables online respectively offline charging.
func chargingMethods(decision *policymodels.SmPolicyDecision) (online, offline bool) {
	for _, rule := range decision.PccRules {
		for _, chgId := range rule.RefChgData {
			chgData, ok := decision.ChgDecs[chgId]
			if !ok {
				continue
			}
			online = online || chgData.Online
			offline = offline || chgData.Offline
		}
	}
	return online, offline
}

// UpdatePolicyBasedOnTrigger accepts a reported trigger list for an existing
// policy. Decision logic for updates is not implemented yet.
func (p *Processor) UpdatePolicyBasedOnTrigger(policyId string, triggers []policymodels.PolicyControlRequestTrigger) {
	logger.SmPolicyLog.Infof("update requested for policy %s with triggers %v", policyId, triggers)
}

// TerminatePolicy releases an existing policy association.
func (p *Processor) TerminatePolicy(policyId string) {
	logger.SmPolicyLog.Infof("terminating policy %s", policyId)
}
