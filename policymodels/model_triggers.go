// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package policymodels

// PolicyControlRequestTrigger names a network event that must cause the SMF to
// come back to the PCF for re-evaluation. TS 29.512 clause 5.6.3.6.
type PolicyControlRequestTrigger string

const (
	TriggerPlmnCh        PolicyControlRequestTrigger = "PLMN_CH"
	TriggerResMoRe       PolicyControlRequestTrigger = "RES_MO_RE"
	TriggerAcTyCh        PolicyControlRequestTrigger = "AC_TY_CH"
	TriggerUeIpCh        PolicyControlRequestTrigger = "UE_IP_CH"
	TriggerUeMacCh       PolicyControlRequestTrigger = "UE_MAC_CH"
	TriggerAnChCor       PolicyControlRequestTrigger = "AN_CH_COR"
	TriggerUsRe          PolicyControlRequestTrigger = "US_RE"
	TriggerAppSta        PolicyControlRequestTrigger = "APP_STA"
	TriggerAppSto        PolicyControlRequestTrigger = "APP_STO"
	TriggerAnInfo        PolicyControlRequestTrigger = "AN_INFO"
	TriggerCmSesFail     PolicyControlRequestTrigger = "CM_SES_FAIL"
	TriggerPsDaOff       PolicyControlRequestTrigger = "PS_DA_OFF"
	TriggerDefQosCh      PolicyControlRequestTrigger = "DEF_QOS_CH"
	TriggerSeAmbrCh      PolicyControlRequestTrigger = "SE_AMBR_CH"
	TriggerQosNotif      PolicyControlRequestTrigger = "QOS_NOTIF"
	TriggerNoQosSupport  PolicyControlRequestTrigger = "NO_QOS_SUPPORT"
	TriggerPraCh         PolicyControlRequestTrigger = "PRA_CH"
	TriggerSareaCh       PolicyControlRequestTrigger = "SAREA_CH"
	TriggerScnnCh        PolicyControlRequestTrigger = "SCNN_CH"
	TriggerReTimeout     PolicyControlRequestTrigger = "RE_TIMEOUT"
	TriggerResRelease    PolicyControlRequestTrigger = "RES_RELEASE"
	TriggerSuccResAllo   PolicyControlRequestTrigger = "SUCC_RES_ALLO"
	TriggerRatTyCh       PolicyControlRequestTrigger = "RAT_TY_CH"
	TriggerRefQosIndCh   PolicyControlRequestTrigger = "REF_QOS_IND_CH"
	TriggerUeStatusResume PolicyControlRequestTrigger = "UE_STATUS_RESUME"
	TriggerUeTzCh        PolicyControlRequestTrigger = "UE_TZ_CH"
	TriggerAuthProfCh    PolicyControlRequestTrigger = "AUTH_PROF_CH"
	TriggerQosMonitoring PolicyControlRequestTrigger = "QOS_MONITORING"
	TriggerScellCh       PolicyControlRequestTrigger = "SCELL_CH"
	TriggerUserLocationCh PolicyControlRequestTrigger = "USER_LOCATION_CH"
	TriggerEpsFallback   PolicyControlRequestTrigger = "EPS_FALLBACK"
)
