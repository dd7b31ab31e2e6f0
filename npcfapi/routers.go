// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 * Npcf HTTP binding: routes the SM policy control and policy authorization
 * services onto a gin engine. Wire-format concerns live here; the decision
 * engines stay transport-agnostic.
 */

package npcfapi

import (
	"github.com/gin-gonic/gin"
	"github.com/omec-project/pcf/smpolicy"
)

var smPolicyProcessor *smpolicy.Processor

// AddSmPolicyService registers the Npcf_SMPolicyControl routes (N7).
func AddSmPolicyService(engine *gin.Engine, processor *smpolicy.Processor) {
	smPolicyProcessor = processor
	group := engine.Group("/npcf-smpolicycontrol/v1")
	group.POST("/sm-policies", PostSmPolicies)
	group.POST("/sm-policies/:smPolicyId/update", PostSmPolicyUpdate)
	group.POST("/sm-policies/:smPolicyId/delete", PostSmPolicyDelete)
}

// AddPolicyAuthService registers the Rx-derived policy authorization routes (N5).
func AddPolicyAuthService(engine *gin.Engine) {
	group := engine.Group("/npcf-policyauthorization/v1")
	group.POST("/rx-sessions", PostRxSession)
}

func setPolicyCorsHeader(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, DELETE")
}
