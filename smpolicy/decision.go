// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package smpolicy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/omec-project/pcf/backend/logger"
	"github.com/omec-project/pcf/policymodels"
)

const (
	DefaultSessRuleId = "sess-rule-1"

	PccRuleInternet  = "pcc-rule-internet"
	PccRuleIms       = "pcc-rule-ims"
	PccRuleMms       = "pcc-rule-mms"
	PccRulePremium   = "pcc-rule-premium"
	PccRuleStreaming = "pcc-rule-streaming"

	QosInternet  = "qos-internet"
	QosIms       = "qos-ims"
	QosMms       = "qos-mms"
	QosPremium   = "qos-premium"
	QosStreaming = "qos-streaming"

	ChgInternet  = "chg-internet"
	ChgIms       = "chg-ims"
	ChgMms       = "chg-mms"
	ChgPremium   = "chg-premium"
	ChgStreaming = "chg-streaming"

	TcStreaming = "tc-streaming"

	subscCatPremium   = "premium"
	subscCatStreaming = "streaming"
)

// defaultSessionRule builds the session-level rule applied when no
// subscription override exists. Callers get a fresh value each time.
func defaultSessionRule() *policymodels.SessionRule {
	return &policymodels.SessionRule{
		SessRuleId: DefaultSessRuleId,
		AuthSessAmbr: &policymodels.Ambr{
			Uplink:   "100 Mbps",
			Downlink: "500 Mbps",
		},
		AuthDefQos: &policymodels.AuthorizedDefaultQos{
			QosId: 1,
			Arp: &policymodels.Arp{
				PriorityLevel: 1,
				PreemptCap:    policymodels.PreemptionCapabilityNotPreempt,
				PreemptVuln:   policymodels.PreemptionVulnerabilityNotPreemptable,
			},
			Qnc:             false,
			PriorityLevel:   10,
			AverWindow:      2000,
			MaxDataBurstVol: 4000,
		},
	}
}

// SliceKey renders the "{sst}-{sd}" key used by the UDR subscription tree.
// Absent slice info falls back to SST 1 / SD "000001".
func SliceKey(sliceInfo *policymodels.Snssai) string {
	sst := int32(1)
	sd := "000001"
	if sliceInfo != nil {
		if sliceInfo.Sst != 0 {
			sst = sliceInfo.Sst
		}
		if sliceInfo.Sd != "" {
			sd = sliceInfo.Sd
		}
	}
	return fmt.Sprintf("%d-%s", sst, sd)
}

// dnnPolicy walks the subscription tree to the DNN-scoped policy entry,
// returning nil when any segment of the path is absent.
func dnnPolicy(subData *policymodels.SubscriptionData, sliceKey, dnn string) *policymodels.SmPolicyDnnData {
	if subData == nil || subData.PolicyData == nil || subData.PolicyData.SmPolicyData == nil {
		return nil
	}
	sliceData := subData.PolicyData.SmPolicyData.SmPolicySnssaiData[sliceKey]
	if sliceData == nil {
		return nil
	}
	return sliceData.SmPolicyDnnData[dnn]
}

// LookupSubscriberCategories resolves subscriber category tags from the
// subscription tree: UE policy categories win, then the slice/DNN scoped ones,
// then empty. Never returns an error; an absent path yields an empty list.
func LookupSubscriberCategories(subData *policymodels.SubscriptionData, sliceKey, dnn string) []string {
	if subData == nil || subData.PolicyData == nil {
		return nil
	}
	if uePolicy := subData.PolicyData.UePolicy; uePolicy != nil && len(uePolicy.SubscCats) > 0 {
		return uePolicy.SubscCats
	}
	if dnnData := dnnPolicy(subData, sliceKey, dnn); dnnData != nil {
		return dnnData.SubscCats
	}
	return nil
}

// CreatePolicyDecision derives the session rule, the PCC rule set and the
// policy control request triggers for one create request. Subscription data is
// optional; when absent the decision carries defaults only.
func CreatePolicyDecision(
	ctxData *policymodels.SmPolicyContextData,
	policyId string,
	subData *policymodels.SubscriptionData,
) *policymodels.SmPolicyDecision {
	sliceKey := SliceKey(ctxData.SliceInfo)

	sessionRule := defaultSessionRule()
	if dnnData := dnnPolicy(subData, sliceKey, ctxData.Dnn); dnnData != nil {
		if dnnData.MaxBrUl != "" && dnnData.MaxBrDl != "" {
			sessionRule.AuthSessAmbr = &policymodels.Ambr{
				Uplink:   dnnData.MaxBrUl,
				Downlink: dnnData.MaxBrDl,
			}
			logger.SmPolicyLog.Infof("applied subscription AMBR from UDR: UL=%s, DL=%s",
				dnnData.MaxBrUl, dnnData.MaxBrDl)
		}
	}

	pccRules := make(map[string]*policymodels.PccRule)

	// DNN branches are mutually exclusive; the exact "internet" match wins
	// over the substring matches.
	switch {
	case ctxData.Dnn == "internet":
		pccRules[PccRuleInternet] = &policymodels.PccRule{
			PccRuleId: PccRuleInternet,
			FlowInfos: []*policymodels.FlowInformation{
				{FlowDescription: "permit out ip from any to any"},
			},
			Precedence: 1000,
			RefQosData: []string{QosInternet},
			RefChgData: []string{ChgInternet},
		}
	case strings.Contains(ctxData.Dnn, "ims"):
		pccRules[PccRuleIms] = &policymodels.PccRule{
			PccRuleId:  PccRuleIms,
			AppId:      "ims-signaling",
			Precedence: 100,
			RefQosData: []string{QosIms},
			RefChgData: []string{ChgIms},
		}
	case strings.Contains(ctxData.Dnn, "mms"):
		pccRules[PccRuleMms] = &policymodels.PccRule{
			PccRuleId:  PccRuleMms,
			AppId:      "mms",
			Precedence: 500,
			RefQosData: []string{QosMms},
			RefChgData: []string{ChgMms},
		}
	}

	subscriberCategories := LookupSubscriberCategories(subData, sliceKey, ctxData.Dnn)
	if slices.Contains(subscriberCategories, subscCatPremium) {
		pccRules[PccRulePremium] = &policymodels.PccRule{
			PccRuleId:  PccRulePremium,
			AppId:      "premium-services",
			Precedence: 50,
			RefQosData: []string{QosPremium},
			RefChgData: []string{ChgPremium},
		}
		logger.SmPolicyLog.Infoln("applied premium subscriber policy from UDR data")
	}
	if slices.Contains(subscriberCategories, subscCatStreaming) {
		pccRules[PccRuleStreaming] = &policymodels.PccRule{
			PccRuleId:  PccRuleStreaming,
			AppId:      "video-streaming",
			Precedence: 200,
			RefQosData: []string{QosStreaming},
			RefChgData: []string{ChgStreaming},
			RefTcData:  []string{TcStreaming},
		}
		logger.SmPolicyLog.Infoln("applied streaming subscriber policy from UDR data")
	}

	triggers := []policymodels.PolicyControlRequestTrigger{
		policymodels.TriggerPlmnCh,
		policymodels.TriggerRatTyCh,
		policymodels.TriggerUeIpCh,
	}
	if strings.Contains(ctxData.Dnn, "ims") {
		triggers = append(triggers,
			policymodels.TriggerQosMonitoring,
			policymodels.TriggerQosNotif)
	}

	return &policymodels.SmPolicyDecision{
		Id: policyId,
		SessionRules: map[string]*policymodels.SessionRule{
			DefaultSessRuleId: sessionRule,
		},
		PccRules:              pccRules,
		PolicyCtrlReqTriggers: triggers,
	}
}
