// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package policymodels

// SmPolicyContextData identifies one PDU session, as received from the SMF over N7.
// TS 29.512 clause 5.6.2.3 (subset).
type SmPolicyContextData struct {
	Supi                    string         `json:"supi"`
	PduSessionId            *int32         `json:"pduSessionId,omitempty"`
	PduSessionType          PduSessionType `json:"pduSessionType,omitempty"`
	Dnn                     string         `json:"dnn"`
	NotificationUri         string         `json:"notificationUri"`
	SliceInfo               *Snssai        `json:"sliceInfo,omitempty"`
	ServingNetwork          *PlmnId        `json:"servingNetwork,omitempty"`
	RatType                 RatType        `json:"ratType,omitempty"`
	Ipv4Address             string         `json:"ipv4Address,omitempty"`
	Ipv6AddressPrefix       string         `json:"ipv6AddressPrefix,omitempty"`
	Gpsi                    string         `json:"gpsi,omitempty"`
	SuppFeat                string         `json:"suppFeat,omitempty"`
	ChargingCharacteristics string         `json:"chargingCharacteristics,omitempty"`
	ChfInfo                 *ChfInfo       `json:"chfInfo,omitempty"`
	UeTimeZone              string         `json:"ueTimeZone,omitempty"`
	RefQosIndication        bool           `json:"refQosIndication,omitempty"`
}

type PduSessionType string

const (
	PduSessionTypeIPv4         PduSessionType = "IPv4"
	PduSessionTypeIPv6         PduSessionType = "IPv6"
	PduSessionTypeIPv4v6       PduSessionType = "IPv4v6"
	PduSessionTypeEthernet     PduSessionType = "Ethernet"
	PduSessionTypeUnstructured PduSessionType = "Unstructured"
)

type RatType string

const (
	RatTypeNR          RatType = "NR"
	RatTypeEUTRA       RatType = "EUTRA"
	RatTypeWLAN        RatType = "WLAN"
	RatTypeVirtual     RatType = "VIRTUAL"
	RatTypeNBIOT       RatType = "NBIOT"
	RatTypeLTEM        RatType = "LTE_M"
	RatTypeNRU         RatType = "NR_U"
	RatTypeTrustedN3GA RatType = "TRUSTED_N3GA"
	RatTypeTrustedWLAN RatType = "TRUSTED_WLAN"
)

type Snssai struct {
	Sst int32  `json:"sst"`
	Sd  string `json:"sd,omitempty"`
}

type PlmnId struct {
	Mcc string `json:"mcc"`
	Mnc string `json:"mnc"`
}

type ChfInfo struct {
	PrimaryChfAddress   string `json:"primaryChfAddress"`
	SecondaryChfAddress string `json:"secondaryChfAddress,omitempty"`
}
