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
)

func setupPolicyAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	AddPolicyAuthService(engine)
	return engine
}

func postRxSession(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, *policymodels.RxProcessingResult) {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost,
		"/npcf-policyauthorization/v1/rx-sessions", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	var result policymodels.RxProcessingResult
	if recorder.Code == http.StatusOK {
		if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return recorder, &result
}

func TestPostRxSessionAllowed(t *testing.T) {
	router := setupPolicyAuthRouter()
	body := `{
		"session": "rx-session-1",
		"sourceHost": "af.ims.example.com",
		"subscriber": "imsi-208930000000001",
		"media": {"type": "voice", "uplinkKbps": 128, "downlinkKbps": 128, "qosClassId": 1}
	}`

	recorder, result := postRxSession(t, router, body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if !result.Allowed {
		t.Fatalf("expected allow, got %s", result.Message)
	}
	if result.PolicyContext == nil || result.PolicyContext.PolicyType != "voice" {
		t.Errorf("unexpected policy context %+v", result.PolicyContext)
	}
}

// A deny is a business verdict and still travels as a 200.
func TestPostRxSessionDeniedIs200(t *testing.T) {
	router := setupPolicyAuthRouter()
	body := `{
		"session": "rx-session-2",
		"subscriber": "imsi-208930000000001",
		"media": {"type": "voice", "uplinkKbps": 300, "downlinkKbps": 300}
	}`

	recorder, result := postRxSession(t, router, body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if result.Allowed {
		t.Fatal("expected deny for over-limit voice request")
	}
	if !strings.Contains(result.Message, "256 kbps") {
		t.Errorf("unexpected deny message %q", result.Message)
	}
}

func TestPostRxSessionConference(t *testing.T) {
	router := setupPolicyAuthRouter()
	body := `{
		"session": "rx-session-3",
		"subscriber": "imsi-208930000000001",
		"conferenceType": "CONFERENCE",
		"media": {"type": "video", "uplinkKbps": 4000, "downlinkKbps": 8000}
	}`

	recorder, result := postRxSession(t, router, body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if !result.Allowed {
		t.Fatalf("expected allow within conference headroom, got %s", result.Message)
	}
	if result.PolicyContext.PolicyType != "video-conference" {
		t.Errorf("unexpected policy type %q", result.PolicyContext.PolicyType)
	}
}

func TestPostRxSessionMcpttPriority(t *testing.T) {
	router := setupPolicyAuthRouter()
	body := `{
		"session": "rx-session-4",
		"subscriber": "imsi-208930000000001",
		"media": {"type": "mcptt", "uplinkKbps": 512, "downlinkKbps": 512, "priority": 5}
	}`

	recorder, result := postRxSession(t, router, body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if !result.Allowed {
		t.Fatalf("expected allow, got %s", result.Message)
	}
	if !result.PolicyContext.PrioritySharing {
		t.Error("expected priority sharing forced for MCPTT")
	}
}

func TestPostRxSessionMalformedBody(t *testing.T) {
	router := setupPolicyAuthRouter()

	recorder, _ := postRxSession(t, router, `{"media": `)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "malformed request body") {
		t.Errorf("unexpected body %s", recorder.Body.String())
	}
}
