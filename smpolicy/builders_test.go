// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package smpolicy

import (
	"reflect"
	"testing"

	"github.com/omec-project/pcf/policymodels"
)

func ruleSet(ids ...string) map[string]*policymodels.PccRule {
	rules := make(map[string]*policymodels.PccRule)
	for _, id := range ids {
		rules[id] = &policymodels.PccRule{PccRuleId: id}
	}
	return rules
}

func TestBuildersEmitOnlyRecognizedRules(t *testing.T) {
	rules := ruleSet(PccRuleInternet, PccRuleStreaming, "pcc-rule-unknown")

	qosDecs := CreateQosDecisions(rules)
	if len(qosDecs) != 2 {
		t.Errorf("expected 2 QoS decisions, got %d", len(qosDecs))
	}
	if _, ok := qosDecs[QosInternet]; !ok {
		t.Error("expected qos-internet decision")
	}
	if _, ok := qosDecs[QosStreaming]; !ok {
		t.Error("expected qos-streaming decision")
	}

	chgDecs := CreateChargingDecisions(rules)
	if len(chgDecs) != 2 {
		t.Errorf("expected 2 charging decisions, got %d", len(chgDecs))
	}

	tcDecs := CreateTrafficControlDecisions(rules)
	if len(tcDecs) != 1 {
		t.Errorf("expected 1 traffic control decision, got %d", len(tcDecs))
	}
	if tc := tcDecs[TcStreaming]; tc == nil || tc.FlowStatus != policymodels.FlowStatusEnabled {
		t.Errorf("unexpected traffic control decision %+v", tcDecs[TcStreaming])
	}
}

func TestBuildersEmptyRuleSet(t *testing.T) {
	rules := ruleSet()
	if decs := CreateQosDecisions(rules); len(decs) != 0 {
		t.Errorf("expected no QoS decisions, got %d", len(decs))
	}
	if decs := CreateChargingDecisions(rules); len(decs) != 0 {
		t.Errorf("expected no charging decisions, got %d", len(decs))
	}
	if decs := CreateTrafficControlDecisions(rules); len(decs) != 0 {
		t.Errorf("expected no traffic control decisions, got %d", len(decs))
	}
}

func TestBuildersIdempotent(t *testing.T) {
	rules := ruleSet(PccRuleInternet, PccRuleIms, PccRuleMms, PccRulePremium, PccRuleStreaming)

	if !reflect.DeepEqual(CreateQosDecisions(rules), CreateQosDecisions(rules)) {
		t.Error("QoS builder is not idempotent")
	}
	if !reflect.DeepEqual(CreateChargingDecisions(rules), CreateChargingDecisions(rules)) {
		t.Error("charging builder is not idempotent")
	}
	if !reflect.DeepEqual(CreateTrafficControlDecisions(rules), CreateTrafficControlDecisions(rules)) {
		t.Error("traffic control builder is not idempotent")
	}
}

func TestImsChargingIsOfflineOnly(t *testing.T) {
	chgDecs := CreateChargingDecisions(ruleSet(PccRuleIms))
	chg := chgDecs[ChgIms]
	if chg == nil {
		t.Fatal("expected chg-ims decision")
	}
	if chg.Online || !chg.Offline {
		t.Errorf("expected offline-only IMS charging, got online=%v offline=%v", chg.Online, chg.Offline)
	}
}

// Every reference held by a PCC rule must resolve to a decision key,
// whatever combination of rules the derivation produced.
func TestDecisionReferentialIntegrity(t *testing.T) {
	testCases := []struct {
		name string
		dnn  string
		cats []string
	}{
		{name: "InternetOnly", dnn: "internet"},
		{name: "ImsOnly", dnn: "ims"},
		{name: "MmsWithCategories", dnn: "mms-apn", cats: []string{"premium", "streaming"}},
		{name: "InternetWithCategories", dnn: "internet", cats: []string{"premium", "streaming"}},
		{name: "UnknownDnn", dnn: "enterprise", cats: []string{"streaming"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctxData := validContextData()
			ctxData.Dnn = tc.dnn
			var subData *policymodels.SubscriptionData
			if tc.cats != nil {
				subData = subscriptionWithCategories(tc.cats)
			}

			decision := CreatePolicyDecision(ctxData, "sm-policy-test", subData)
			decision.QosDecs = CreateQosDecisions(decision.PccRules)
			decision.ChgDecs = CreateChargingDecisions(decision.PccRules)
			decision.TraffContDecs = CreateTrafficControlDecisions(decision.PccRules)

			for ruleId, rule := range decision.PccRules {
				for _, ref := range rule.RefQosData {
					if _, ok := decision.QosDecs[ref]; !ok {
						t.Errorf("rule %s references missing QoS decision %s", ruleId, ref)
					}
				}
				for _, ref := range rule.RefChgData {
					if _, ok := decision.ChgDecs[ref]; !ok {
						t.Errorf("rule %s references missing charging decision %s", ruleId, ref)
					}
				}
				for _, ref := range rule.RefTcData {
					if _, ok := decision.TraffContDecs[ref]; !ok {
						t.Errorf("rule %s references missing traffic control decision %s", ruleId, ref)
					}
				}
			}
		})
	}
}
