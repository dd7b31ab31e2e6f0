// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package smpolicy

import (
	"github.com/omec-project/pcf/policymodels"
)

// ValidationError marks a client-fault request defect. It is surfaced to the
// SMF in the failure envelope and never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ValidateSmPolicyRequest checks the mandatory fields of an N7 create request,
// short-circuiting on the first defect. Nil return means the request is valid.
func ValidateSmPolicyRequest(request *policymodels.SmPolicyCreateRequest) *ValidationError {
	if request == nil || request.SmPolicyContextData == nil {
		return &ValidationError{Reason: "Missing SM Policy Context Data"}
	}
	ctxData := request.SmPolicyContextData

	if ctxData.Supi == "" {
		return &ValidationError{Reason: "Missing SUPI in the request"}
	}
	if ctxData.PduSessionId == nil {
		return &ValidationError{Reason: "Missing PDU Session ID in the request"}
	}
	if ctxData.PduSessionType == "" {
		return &ValidationError{Reason: "Missing PDU Session Type in the request"}
	}
	if ctxData.Dnn == "" {
		return &ValidationError{Reason: "Missing DNN in the request"}
	}
	if ctxData.NotificationUri == "" {
		return &ValidationError{Reason: "Missing Notification URI in the request"}
	}
	if *ctxData.PduSessionId < 1 || *ctxData.PduSessionId > 255 {
		return &ValidationError{Reason: "PDU Session ID must be between 1 and 255"}
	}
	return nil
}
