// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package npcfapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/pcf/policymodels"
	"github.com/omec-project/pcf/smpolicy"
)

func setupSmPolicyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	AddSmPolicyService(engine, smpolicy.NewProcessor(nil))
	return engine
}

func TestPostSmPoliciesCreated(t *testing.T) {
	router := setupSmPolicyRouter()
	body := `{
		"smPolicyContextData": {
			"supi": "imsi-208930000000001",
			"pduSessionId": 1,
			"pduSessionType": "IPv4",
			"dnn": "internet",
			"notificationUri": "https://smf.5gc.example.com/callback"
		}
	}`

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost,
		"/npcf-smpolicycontrol/v1/sm-policies", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var response policymodels.SmPolicyResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != policymodels.StatusSuccess {
		t.Errorf("expected SUCCESS, got %s", response.Status)
	}
	if response.Data == nil || response.Data.Id == "" {
		t.Error("expected a decision with a policy id")
	}
	if _, ok := response.Data.SessionRules[smpolicy.DefaultSessRuleId]; !ok {
		t.Error("expected default session rule in the decision")
	}
	if recorder.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header on policy responses")
	}
}

func TestPostSmPoliciesValidationFailure(t *testing.T) {
	router := setupSmPolicyRouter()

	testCases := []struct {
		name        string
		body        string
		messagePart string
	}{
		{
			name:        "MissingSupi",
			body:        `{"smPolicyContextData": {"pduSessionId": 1, "pduSessionType": "IPv4", "dnn": "internet", "notificationUri": "https://smf.5gc.example.com/callback"}}`,
			messagePart: "Missing SUPI in the request",
		},
		{
			name:        "MissingContextData",
			body:        `{}`,
			messagePart: "Missing SM Policy Context Data",
		},
		{
			name:        "PduSessionIdOutOfRange",
			body:        `{"smPolicyContextData": {"supi": "imsi-208930000000001", "pduSessionId": 0, "pduSessionType": "IPv4", "dnn": "internet", "notificationUri": "https://smf.5gc.example.com/callback"}}`,
			messagePart: "PDU Session ID must be between 1 and 255",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost,
				"/npcf-smpolicycontrol/v1/sm-policies", strings.NewReader(tc.body))
			request.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(recorder, request)

			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
			}
			var response policymodels.SmPolicyResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Status != policymodels.StatusFailure {
				t.Errorf("expected FAILURE, got %s", response.Status)
			}
			if response.Error == nil || response.Error.Message != tc.messagePart {
				t.Errorf("expected error message %q, got %+v", tc.messagePart, response.Error)
			}
		})
	}
}

func TestPostSmPoliciesMalformedBody(t *testing.T) {
	router := setupSmPolicyRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost,
		"/npcf-smpolicycontrol/v1/sm-policies", strings.NewReader(`{"smPolicyContextData": `))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "malformed request body") {
		t.Errorf("unexpected body %s", recorder.Body.String())
	}
}

func TestPostSmPolicyUpdate(t *testing.T) {
	router := setupSmPolicyRouter()
	body := `{"triggers": ["PLMN_CH", "RAT_TY_CH"]}`

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost,
		"/npcf-smpolicycontrol/v1/sm-policies/sm-policy-123/update", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestPostSmPolicyDelete(t *testing.T) {
	router := setupSmPolicyRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost,
		"/npcf-smpolicycontrol/v1/sm-policies/sm-policy-123/delete", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", recorder.Code)
	}
}
