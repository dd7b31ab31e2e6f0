// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package policymodels

const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"

	SmPolicyErrorCode = "PCF_SM_ERROR"
)

// SmPolicyCreateRequest is the N7 create envelope received from the SMF.
type SmPolicyCreateRequest struct {
	SmPolicyContextData *SmPolicyContextData `json:"smPolicyContextData"`
}

// SmPolicyResponse wraps the outcome of a create operation. Exactly one of
// Data or Error is set, depending on Status.
type SmPolicyResponse struct {
	Status string            `json:"status"`
	Data   *SmPolicyDecision `json:"data,omitempty"`
	Error  *ProblemDetail    `json:"error,omitempty"`
}

type ProblemDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
