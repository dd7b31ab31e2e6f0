// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package smpolicy

import (
	"github.com/omec-project/pcf/policymodels"
)

// CreateQosDecisions emits one QoS decision per recognized PCC rule present in
// the rule set. Unrecognized rule ids are skipped.
func CreateQosDecisions(pccRules map[string]*policymodels.PccRule) map[string]*policymodels.QosData {
	qosDecs := make(map[string]*policymodels.QosData)

	if _, ok := pccRules[PccRuleInternet]; ok {
		qosDecs[QosInternet] = &policymodels.QosData{
			QosId: QosInternet,
			QosParams: &policymodels.QosParameters{
				Qos5qi:  9,
				MaxbrUl: "50 Mbps",
				MaxbrDl: "200 Mbps",
				Arp: &policymodels.Arp{
					PriorityLevel: 8,
					PreemptCap:    policymodels.PreemptionCapabilityNotPreempt,
					PreemptVuln:   policymodels.PreemptionVulnerabilityPreemptable,
				},
			},
		}
	}

	if _, ok := pccRules[PccRuleIms]; ok {
		qosDecs[QosIms] = &policymodels.QosData{
			QosId: QosIms,
			QosParams: &policymodels.QosParameters{
				Qos5qi:  5,
				MaxbrUl: "2 Mbps",
				MaxbrDl: "2 Mbps",
				GbrUl:   "500 kbps",
				GbrDl:   "500 kbps",
				Arp: &policymodels.Arp{
					PriorityLevel: 1,
					PreemptCap:    policymodels.PreemptionCapabilityNotPreempt,
					PreemptVuln:   policymodels.PreemptionVulnerabilityNotPreemptable,
				},
			},
		}
	}

	if _, ok := pccRules[PccRuleMms]; ok {
		qosDecs[QosMms] = &policymodels.QosData{
			QosId: QosMms,
			QosParams: &policymodels.QosParameters{
				Qos5qi:  6,
				MaxbrUl: "10 Mbps",
				MaxbrDl: "10 Mbps",
				Arp: &policymodels.Arp{
					PriorityLevel: 6,
					PreemptCap:    policymodels.PreemptionCapabilityNotPreempt,
					PreemptVuln:   policymodels.PreemptionVulnerabilityPreemptable,
				},
			},
		}
	}

	if _, ok := pccRules[PccRulePremium]; ok {
		qosDecs[QosPremium] = &policymodels.QosData{
			QosId: QosPremium,
			QosParams: &policymodels.QosParameters{
				Qos5qi:  7,
				MaxbrUl: "100 Mbps",
				MaxbrDl: "500 Mbps",
				GbrUl:   "20 Mbps",
				GbrDl:   "50 Mbps",
				Arp: &policymodels.Arp{
					PriorityLevel: 1,
					PreemptCap:    policymodels.PreemptionCapabilityNotPreempt,
					PreemptVuln:   policymodels.PreemptionVulnerabilityNotPreemptable,
				},
			},
		}
	}

	if _, ok := pccRules[PccRuleStreaming]; ok {
		qosDecs[QosStreaming] = &policymodels.QosData{
			QosId: QosStreaming,
			QosParams: &policymodels.QosParameters{
				Qos5qi:  2,
				MaxbrUl: "5 Mbps",
				MaxbrDl: "50 Mbps",
				GbrUl:   "2 Mbps",
				GbrDl:   "25 Mbps",
				Arp: &policymodels.Arp{
					PriorityLevel: 4,
					PreemptCap:    policymodels.PreemptionCapabilityNotPreempt,
					PreemptVuln:   policymodels.PreemptionVulnerabilityPreemptable,
				},
			},
		}
	}

	return qosDecs
}
