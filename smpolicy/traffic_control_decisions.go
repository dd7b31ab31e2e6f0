// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package smpolicy

import (
	"github.com/omec-project/pcf/policymodels"
)

// CreateTrafficControlDecisions emits traffic-control decisions for the PCC
// rules that steer traffic. Only the streaming rule carries one today.
func CreateTrafficControlDecisions(pccRules map[string]*policymodels.PccRule) map[string]*policymodels.TrafficControlData {
	traffContDecs := make(map[string]*policymodels.TrafficControlData)

	if _, ok := pccRules[PccRuleStreaming]; ok {
		traffContDecs[TcStreaming] = &policymodels.TrafficControlData{
			TcId:                   TcStreaming,
			FlowStatus:             policymodels.FlowStatusEnabled,
			TrafficSteeringPolIdDl: "video-steering-policy",
		}
	}

	return traffContDecs
}
