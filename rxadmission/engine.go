// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package rxadmission

import (
	"github.com/omec-project/pcf/backend/logger"
	"github.com/omec-project/pcf/policymodels"
)

// Bandwidth ceilings in kbps, per media class and modifier. Requests at the
// ceiling are admitted; requests above it are denied.
const (
	maxVoiceBandwidth     = 256
	maxVoiceConfBandwidth = 512
	maxUpgradeUplink      = 1500
	maxUpgradeDownlink    = 2000

	maxVideoUplink       = 2000
	maxVideoDownlink     = 4000
	maxVideoConfUplink   = 4000
	maxVideoConfDownlink = 8000
	maxDowngradeBandwidth = 256

	maxMcpttBandwidth     = 1024
	maxMcpttConfBandwidth = 2048

	minMcpttPriority = 1
	maxMcpttPriority = 15
)

// ProcessRx evaluates an AF media-session request against the admission policy
// tables and returns an allow/deny verdict. Pure function; a deny is a normal
// outcome, never an error.
func ProcessRx(rxMessage *policymodels.RxMessage) *policymodels.RxProcessingResult {
	if rxMessage == nil || rxMessage.MediaComponentDescription == nil {
		return &policymodels.RxProcessingResult{
			Allowed: false,
			Message: "Missing media component data.",
		}
	}

	media := rxMessage.MediaComponentDescription
	logger.RxLog.Infof("processing Rx request for session %s: media %s, UL %d kbps, DL %d kbps",
		rxMessage.SessionId, media.MediaType, media.MaxRequestedBandwidthUL, media.MaxRequestedBandwidthDL)

	switch media.MediaType {
	case policymodels.MediaTypeVoice:
		return processVoice(rxMessage)
	case policymodels.MediaTypeVideo:
		return processVideo(rxMessage)
	case policymodels.MediaTypeMcptt:
		return processMcptt(rxMessage)
	default:
		if isConference(rxMessage) {
			return &policymodels.RxProcessingResult{
				Allowed: false,
				Message: "Conference calls are only supported for voice, video, and MCPTT media types.",
			}
		}
		return &policymodels.RxProcessingResult{
			Allowed: false,
			Message: "Only voice, video, and MCPTT calls are supported in this demo.",
		}
	}
}

func processVoice(rxMessage *policymodels.RxMessage) *policymodels.RxProcessingResult {
	media := rxMessage.MediaComponentDescription
	ul, dl := media.MaxRequestedBandwidthUL, media.MaxRequestedBandwidthDL

	if isConference(rxMessage) {
		if ul > maxVoiceConfBandwidth || dl > maxVoiceConfBandwidth {
			return deny("Requested bandwidth for voice conference exceeds allowed maximum (512 kbps).")
		}
		ctx := newPolicyContext(rxMessage, "voice-conference")
		ctx.VoiceCall = true
		ctx.ConferenceCall = true
		return allow("Voice conference call allowed by PCF policy.", ctx)
	}

	if rxMessage.CallUpgradeType == policymodels.CallUpgradeVoiceToVideo {
		if ul > maxUpgradeUplink || dl > maxUpgradeDownlink {
			return deny("Requested bandwidth for voice-to-video upgrade exceeds allowed maximum (UL 1500 / DL 2000 kbps).")
		}
		ctx := newPolicyContext(rxMessage, "voice-to-video-upgrade")
		ctx.VoiceCall = true
		ctx.VideoCall = true
		return allow("Voice to video upgrade allowed by PCF policy.", ctx)
	}

	if ul > maxVoiceBandwidth || dl > maxVoiceBandwidth {
		return deny("Requested bandwidth for voice call exceeds allowed maximum (256 kbps).")
	}
	ctx := newPolicyContext(rxMessage, "voice")
	ctx.VoiceCall = true
	return allow("Voice call allowed by PCF policy.", ctx)
}

func processVideo(rxMessage *policymodels.RxMessage) *policymodels.RxProcessingResult {
	media := rxMessage.MediaComponentDescription
	ul, dl := media.MaxRequestedBandwidthUL, media.MaxRequestedBandwidthDL

	if isConference(rxMessage) {
		if ul > maxVideoConfUplink || dl > maxVideoConfDownlink {
			return deny("Requested bandwidth for video conference exceeds allowed maximum (UL 4000 / DL 8000 kbps).")
		}
		ctx := newPolicyContext(rxMessage, "video-conference")
		ctx.VideoCall = true
		ctx.ConferenceCall = true
		return allow("Video conference call allowed by PCF policy.", ctx)
	}

	if rxMessage.CallUpgradeType == policymodels.CallUpgradeVideoToVoice {
		if ul > maxDowngradeBandwidth || dl > maxDowngradeBandwidth {
			return deny("Requested bandwidth for video-to-voice downgrade exceeds allowed maximum (256 kbps).")
		}
		ctx := newPolicyContext(rxMessage, "video-to-voice-downgrade")
		ctx.VoiceCall = true
		ctx.VideoCall = false
		return allow("Video to voice downgrade allowed by PCF policy.", ctx)
	}

	if ul > maxVideoUplink || dl > maxVideoDownlink {
		return deny("Requested bandwidth for video call exceeds allowed maximum (UL 2000 / DL 4000 kbps).")
	}
	ctx := newPolicyContext(rxMessage, "video")
	ctx.VideoCall = true
	return allow("Video call allowed by PCF policy.", ctx)
}

func processMcptt(rxMessage *policymodels.RxMessage) *policymodels.RxProcessingResult {
	media := rxMessage.MediaComponentDescription
	ul, dl := media.MaxRequestedBandwidthUL, media.MaxRequestedBandwidthDL

	priority := media.PriorityLevel
	if priority == nil || *priority < minMcpttPriority || *priority > maxMcpttPriority {
		return deny("MCPTT call requires a valid priorityLevel (1-15).")
	}
	if ul > maxMcpttBandwidth || dl > maxMcpttBandwidth {
		return deny("Requested bandwidth for MCPTT call exceeds allowed maximum (1024 kbps).")
	}

	if isConference(rxMessage) {
		if ul > maxMcpttConfBandwidth || dl > maxMcpttConfBandwidth {
			return deny("Requested bandwidth for MCPTT conference exceeds allowed maximum (2048 kbps).")
		}
		ctx := newPolicyContext(rxMessage, "mcptt-conference")
		ctx.McpttCall = true
		ctx.ConferenceCall = true
		// Mission-critical calls always get priority sharing.
		ctx.PrioritySharing = true
		return allow("MCPTT conference call allowed by PCF policy.", ctx)
	}

	ctx := newPolicyContext(rxMessage, "mcptt")
	ctx.McpttCall = true
	ctx.PrioritySharing = true
	return allow("MCPTT call allowed by PCF policy.", ctx)
}

func isConference(rxMessage *policymodels.RxMessage) bool {
	return rxMessage.ConferenceType == policymodels.ConferenceTypeConference
}

func newPolicyContext(rxMessage *policymodels.RxMessage, policyType string) *policymodels.RxPolicyContext {
	media := rxMessage.MediaComponentDescription
	upgradeType := rxMessage.CallUpgradeType
	if upgradeType == "" {
		upgradeType = policymodels.CallUpgradeNone
	}
	return &policymodels.RxPolicyContext{
		PolicyType: policyType,
		Qos: policymodels.RxQos{
			ClassId:        rxMessage.QosClassIdentifier,
			MaxBandwidthUL: media.MaxRequestedBandwidthUL,
			MaxBandwidthDL: media.MaxRequestedBandwidthDL,
			PriorityLevel:  media.PriorityLevel,
		},
		SubscriberId:    rxMessage.SubscriberId,
		UpgradeType:     upgradeType,
		PrioritySharing: rxMessage.PrioritySharing,
	}
}

func allow(message string, ctx *policymodels.RxPolicyContext) *policymodels.RxProcessingResult {
	logger.RxLog.Infof("Rx request allowed: %s", ctx.PolicyType)
	return &policymodels.RxProcessingResult{
		Allowed:       true,
		Message:       message,
		PolicyContext: ctx,
	}
}

func deny(message string) *policymodels.RxProcessingResult {
	logger.RxLog.Infof("Rx request denied: %s", message)
	return &policymodels.RxProcessingResult{
		Allowed: false,
		Message: message,
	}
}
