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
	"github.com/omec-project/pcf/rxadmission"
)

// PostRxSession handles an AF media-session admission request delivered in
// SBI form. A denied admission is still a 200; it is a business verdict, not
// a transport error.
func PostRxSession(c *gin.Context) {
	setPolicyCorsHeader(c)
	logger.RxLog.Infoln("received an Rx session admission request")

	var sbiMessage policymodels.SbiMessage
	if err := c.ShouldBindJSON(&sbiMessage); err != nil {
		logger.RxLog.Errorf("malformed Rx session request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	rxMessage := rxadmission.DecodeSbiToDiameter(&sbiMessage)
	result := rxadmission.ProcessRx(rxMessage)
	metrics.IncrRxDecision(sbiMessage.Media.Type, result.Allowed)
	c.JSON(http.StatusOK, result)
}
