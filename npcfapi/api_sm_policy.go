// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package npcfapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/pcf/backend/logger"
	"github.com/omec-project/pcf/backend/metrics"
	"github.com/omec-project/pcf/policymodels"
)

// PostSmPolicies handles Npcf_SMPolicyControl_Create. A FAILURE envelope maps
// to 400; the envelope itself is always the response body.
func PostSmPolicies(c *gin.Context) {
	setPolicyCorsHeader(c)
	logger.SmPolicyLog.Infoln("received an SM policy create request")

	var request policymodels.SmPolicyCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.SmPolicyLog.Errorf("malformed SM policy create request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	response := smPolicyProcessor.ProcessSmPolicyCreate(c.Request.Context(), &request)
	metrics.IncrSmPolicyDecision(response.Status)
	if response.Status == policymodels.StatusSuccess {
		c.JSON(http.StatusCreated, response)
		return
	}
	c.JSON(http.StatusBadRequest, response)
}

type smPolicyUpdateRequest struct {
	Triggers []policymodels.PolicyControlRequestTrigger `json:"triggers"`
}

// PostSmPolicyUpdate accepts a trigger report for an existing policy.
func PostSmPolicyUpdate(c *gin.Context) {
	setPolicyCorsHeader(c)
	smPolicyId := c.Param("smPolicyId")

	var request smPolicyUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.SmPolicyLog.Errorf("malformed SM policy update request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	smPolicyProcessor.UpdatePolicyBasedOnTrigger(smPolicyId, request.Triggers)
	c.JSON(http.StatusOK, gin.H{})
}

// PostSmPolicyDelete releases an existing policy association.
func PostSmPolicyDelete(c *gin.Context) {
	setPolicyCorsHeader(c)
	smPolicyId := c.Param("smPolicyId")
	smPolicyProcessor.TerminatePolicy(smPolicyId)
	c.Status(http.StatusNoContent)
}
