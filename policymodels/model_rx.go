// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package policymodels

// RxMessage is a simplified Diameter Rx AAR carried over the N5 interface,
// requesting admission for one media session.
type RxMessage struct {
	SessionId                 string                      `json:"sessionId"`
	OriginHost                string                      `json:"originHost"`
	OriginRealm               string                      `json:"originRealm"`
	DestinationRealm          string                      `json:"destinationRealm"`
	MediaComponentDescription *MediaComponentDescription  `json:"mediaComponentDescription"`
	SubscriberId              string                      `json:"subscriberId"`
	QosClassIdentifier        int32                       `json:"qosClassIdentifier"`
	CallUpgradeType           CallUpgradeType             `json:"callUpgradeType,omitempty"`
	ConferenceType            ConferenceType              `json:"conferenceType,omitempty"`
	PrioritySharing           bool                        `json:"prioritySharing,omitempty"`
}

type MediaComponentDescription struct {
	MediaType                 MediaType  `json:"mediaType"`
	FlowStatus                FlowStatus `json:"flowStatus"`
	MaxRequestedBandwidthUL   int32      `json:"maxRequestedBandwidthUL"` // kbps
	MaxRequestedBandwidthDL   int32      `json:"maxRequestedBandwidthDL"` // kbps
	AfApplicationIdentifier   string     `json:"afApplicationIdentifier,omitempty"`
	PriorityLevel             *int32     `json:"priorityLevel,omitempty"` // 1-15, MCPTT only
}

type MediaType string

const (
	MediaTypeVoice MediaType = "voice"
	MediaTypeVideo MediaType = "video"
	MediaTypeData  MediaType = "data"
	MediaTypeMcptt MediaType = "mcptt"
)

type CallUpgradeType string

const (
	CallUpgradeNone         CallUpgradeType = "NONE"
	CallUpgradeVoiceToVideo CallUpgradeType = "VOICE_TO_VIDEO"
	CallUpgradeVideoToVoice CallUpgradeType = "VIDEO_TO_VOICE"
)

type ConferenceType string

const (
	ConferenceTypeNone       ConferenceType = "NONE"
	ConferenceTypeConference ConferenceType = "CONFERENCE"
)

// RxProcessingResult is the admission verdict. Allowed=false is a normal
// business outcome, not a transport-level error.
type RxProcessingResult struct {
	Allowed       bool             `json:"allowed"`
	Message       string           `json:"message"`
	PolicyContext *RxPolicyContext `json:"policyContext,omitempty"`
}

type RxPolicyContext struct {
	PolicyType      string          `json:"policyType"`
	Qos             RxQos           `json:"qos"`
	SubscriberId    string          `json:"subscriberId"`
	VoiceCall       bool            `json:"voiceCall"`
	VideoCall       bool            `json:"videoCall"`
	McpttCall       bool            `json:"mcpttCall"`
	ConferenceCall  bool            `json:"conferenceCall"`
	UpgradeType     CallUpgradeType `json:"upgradeType,omitempty"`
	PrioritySharing bool            `json:"prioritySharing"`
}

type RxQos struct {
	ClassId        int32  `json:"classId"`
	MaxBandwidthUL int32  `json:"maxBandwidthUL"`
	MaxBandwidthDL int32  `json:"maxBandwidthDL"`
	PriorityLevel  *int32 `json:"priorityLevel,omitempty"`
}

// SbiMessage is the openAPI-style SBI JSON rendering of an Rx message, used
// when the AF signals over HTTP instead of Diameter.
type SbiMessage struct {
	Session         string   `json:"session"`
	SourceHost      string   `json:"sourceHost"`
	SourceRealm     string   `json:"sourceRealm"`
	DestRealm       string   `json:"destRealm"`
	Media           SbiMedia `json:"media"`
	Subscriber      string   `json:"subscriber"`
	CallUpgrade     string   `json:"callUpgrade,omitempty"`
	ConferenceType  string   `json:"conferenceType,omitempty"`
	PrioritySharing bool     `json:"prioritySharing,omitempty"`
}

type SbiMedia struct {
	Type         string `json:"type"`
	UplinkKbps   int32  `json:"uplinkKbps"`
	DownlinkKbps int32  `json:"downlinkKbps"`
	FlowStatus   string `json:"flowStatus"`
	QosClassId   int32  `json:"qosClassId"`
	AfAppId      string `json:"afAppId,omitempty"`
	Priority     *int32 `json:"priority,omitempty"`
}
