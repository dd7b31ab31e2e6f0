// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package smpolicy

import (
	"github.com/omec-project/pcf/policymodels"
)

// CreateChargingDecisions emits one charging decision per recognized PCC rule
// present in the rule set. Unrecognized rule ids are skipped.
func CreateChargingDecisions(pccRules map[string]*policymodels.PccRule) map[string]*policymodels.ChargingData {
	chgDecs := make(map[string]*policymodels.ChargingData)

	if _, ok := pccRules[PccRuleInternet]; ok {
		chgDecs[ChgInternet] = &policymodels.ChargingData{
			ChgId:          ChgInternet,
			Offline:        true,
			Online:         true,
			RatingGroup:    100,
			ReportingLevel: "SERVICE_IDENTIFIER_LEVEL",
			ServiceId:      1,
		}
	}

	if _, ok := pccRules[PccRuleIms]; ok {
		chgDecs[ChgIms] = &policymodels.ChargingData{
			ChgId:       ChgIms,
			Offline:     true,
			Online:      false,
			RatingGroup: 200,
			ServiceId:   2,
		}
	}

	if _, ok := pccRules[PccRuleMms]; ok {
		chgDecs[ChgMms] = &policymodels.ChargingData{
			ChgId:       ChgMms,
			Offline:     true,
			Online:      true,
			RatingGroup: 300,
			ServiceId:   3,
		}
	}

	if _, ok := pccRules[PccRulePremium]; ok {
		chgDecs[ChgPremium] = &policymodels.ChargingData{
			ChgId:       ChgPremium,
			Offline:     true,
			Online:      true,
			RatingGroup: 900,
			ServiceId:   9,
		}
	}

	if _, ok := pccRules[PccRuleStreaming]; ok {
		chgDecs[ChgStreaming] = &policymodels.ChargingData{
			ChgId:       ChgStreaming,
			Offline:     true,
			Online:      true,
			RatingGroup: 400,
			ServiceId:   4,
		}
	}

	return chgDecs
}
