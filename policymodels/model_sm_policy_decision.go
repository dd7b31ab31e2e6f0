// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package policymodels

// SmPolicyDecision is the policy decision returned to the SMF.
// Every id referenced through RefQosData/RefChgData/RefTcData on a PccRule must
// exist as a key in QosDecs/ChgDecs/TraffContDecs respectively.
type SmPolicyDecision struct {
	Id                    string                          `json:"id"`
	SessionRules          map[string]*SessionRule         `json:"sessionRules,omitempty"`
	PccRules              map[string]*PccRule             `json:"pccRules,omitempty"`
	QosDecs               map[string]*QosData             `json:"qosDecs,omitempty"`
	ChgDecs               map[string]*ChargingData        `json:"chgDecs,omitempty"`
	TraffContDecs         map[string]*TrafficControlData  `json:"traffContDecs,omitempty"`
	PolicyCtrlReqTriggers []PolicyControlRequestTrigger   `json:"policyCtrlReqTriggers,omitempty"`
	RevalidationTime      string                          `json:"revalidationTime,omitempty"`
	Online                bool                            `json:"online"`
	Offline               bool                            `json:"offline"`
	UdrInfo               UdrInfo                         `json:"udrInfo"`
}

// UdrInfo records whether repository data was obtained and applied for this decision.
type UdrInfo struct {
	Accessed    bool `json:"accessed"`
	DataApplied bool `json:"dataApplied"`
}

type SessionRule struct {
	SessRuleId  string                `json:"sessRuleId"`
	AuthSessAmbr *Ambr                `json:"authSessAmbr,omitempty"`
	AuthDefQos  *AuthorizedDefaultQos `json:"authDefQos,omitempty"`
}

type Ambr struct {
	Uplink   string `json:"uplink,omitempty"`
	Downlink string `json:"downlink,omitempty"`
}

type AuthorizedDefaultQos struct {
	QosId           int32 `json:"qosId,omitempty"`
	Arp             *Arp  `json:"arp,omitempty"`
	Qnc             bool  `json:"qnc"`
	PriorityLevel   int32 `json:"priorityLevel,omitempty"`
	AverWindow      int32 `json:"averWindow,omitempty"`
	MaxDataBurstVol int32 `json:"maxDataBurstVol,omitempty"`
}

type Arp struct {
	PriorityLevel int32                 `json:"priorityLevel"`
	PreemptCap    PreemptionCapability  `json:"preemptCap"`
	PreemptVuln   PreemptionVulnerability `json:"preemptVuln"`
}

type PreemptionCapability string

const (
	PreemptionCapabilityNotPreempt PreemptionCapability = "NOT_PREEMPT"
	PreemptionCapabilityMayPreempt PreemptionCapability = "MAY_PREEMPT"
)

type PreemptionVulnerability string

const (
	PreemptionVulnerabilityNotPreemptable PreemptionVulnerability = "NOT_PREEMPTABLE"
	PreemptionVulnerabilityPreemptable    PreemptionVulnerability = "PREEMPTABLE"
)

// PccRule binds a traffic detection filter to QoS/charging/traffic-control
// decisions. Lower precedence value means applied first.
type PccRule struct {
	PccRuleId  string             `json:"pccRuleId"`
	FlowInfos  []*FlowInformation `json:"flowInfos,omitempty"`
	AppId      string             `json:"appId,omitempty"`
	Precedence int32              `json:"precedence,omitempty"`
	RefQosData []string           `json:"refQosData,omitempty"`
	RefChgData []string           `json:"refChgData,omitempty"`
	RefTcData  []string           `json:"refTcData,omitempty"`
}

type FlowInformation struct {
	FlowDescription string `json:"flowDescription,omitempty"`
}

type QosData struct {
	QosId     string         `json:"qosId"`
	QosParams *QosParameters `json:"qosParams,omitempty"`
}

type QosParameters struct {
	Qos5qi  int32  `json:"qos5qi,omitempty"`
	MaxbrUl string `json:"maxbrUl,omitempty"`
	MaxbrDl string `json:"maxbrDl,omitempty"`
	GbrUl   string `json:"gbrUl,omitempty"`
	GbrDl   string `json:"gbrDl,omitempty"`
	Arp     *Arp   `json:"arp,omitempty"`
}

type ChargingData struct {
	ChgId          string `json:"chgId"`
	Online         bool   `json:"online"`
	Offline        bool   `json:"offline"`
	RatingGroup    int32  `json:"ratingGroup,omitempty"`
	ReportingLevel string `json:"reportingLevel,omitempty"`
	ServiceId      int32  `json:"serviceId,omitempty"`
}

type TrafficControlData struct {
	TcId                   string     `json:"tcId"`
	FlowStatus             FlowStatus `json:"flowStatus,omitempty"`
	TrafficSteeringPolIdDl string     `json:"trafficSteeringPolIdDl,omitempty"`
	TrafficSteeringPolIdUl string     `json:"trafficSteeringPolIdUl,omitempty"`
}

type FlowStatus string

const (
	FlowStatusEnabled         FlowStatus = "ENABLED"
	FlowStatusDisabled        FlowStatus = "DISABLED"
	FlowStatusEnabledUplink   FlowStatus = "ENABLED_UPLINK"
	FlowStatusEnabledDownlink FlowStatus = "ENABLED_DOWNLINK"
)
