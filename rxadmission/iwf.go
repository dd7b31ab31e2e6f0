// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package rxadmission

import (
	"github.com/omec-project/pcf/policymodels"
)

// EncodeDiameterToSbi converts a Diameter Rx message to its SBI JSON form.
func EncodeDiameterToSbi(rxMessage *policymodels.RxMessage) *policymodels.SbiMessage {
	media := rxMessage.MediaComponentDescription
	sbi := &policymodels.SbiMessage{
		Session:         rxMessage.SessionId,
		SourceHost:      rxMessage.OriginHost,
		SourceRealm:     rxMessage.OriginRealm,
		DestRealm:       rxMessage.DestinationRealm,
		Subscriber:      rxMessage.SubscriberId,
		CallUpgrade:     string(rxMessage.CallUpgradeType),
		ConferenceType:  string(rxMessage.ConferenceType),
		PrioritySharing: rxMessage.PrioritySharing,
	}
	if media != nil {
		sbi.Media = policymodels.SbiMedia{
			Type:         string(media.MediaType),
			UplinkKbps:   media.MaxRequestedBandwidthUL,
			DownlinkKbps: media.MaxRequestedBandwidthDL,
			FlowStatus:   string(media.FlowStatus),
			QosClassId:   rxMessage.QosClassIdentifier,
			AfAppId:      media.AfApplicationIdentifier,
			Priority:     media.PriorityLevel,
		}
	}
	return sbi
}

// DecodeSbiToDiameter converts an SBI JSON message back to Diameter Rx form.
// Absent upgrade and conference indications default to NONE.
func DecodeSbiToDiameter(sbiMessage *policymodels.SbiMessage) *policymodels.RxMessage {
	callUpgrade := policymodels.CallUpgradeType(sbiMessage.CallUpgrade)
	if callUpgrade == "" {
		callUpgrade = policymodels.CallUpgradeNone
	}
	conference := policymodels.ConferenceType(sbiMessage.ConferenceType)
	if conference == "" {
		conference = policymodels.ConferenceTypeNone
	}
	return &policymodels.RxMessage{
		SessionId:        sbiMessage.Session,
		OriginHost:       sbiMessage.SourceHost,
		OriginRealm:      sbiMessage.SourceRealm,
		DestinationRealm: sbiMessage.DestRealm,
		MediaComponentDescription: &policymodels.MediaComponentDescription{
			MediaType:               policymodels.MediaType(sbiMessage.Media.Type),
			FlowStatus:              policymodels.FlowStatus(sbiMessage.Media.FlowStatus),
			MaxRequestedBandwidthUL: sbiMessage.Media.UplinkKbps,
			MaxRequestedBandwidthDL: sbiMessage.Media.DownlinkKbps,
			AfApplicationIdentifier: sbiMessage.Media.AfAppId,
			PriorityLevel:           sbiMessage.Media.Priority,
		},
		SubscriberId:       sbiMessage.Subscriber,
		QosClassIdentifier: sbiMessage.Media.QosClassId,
		CallUpgradeType:    callUpgrade,
		ConferenceType:     conference,
		PrioritySharing:    sbiMessage.PrioritySharing,
	}
}
