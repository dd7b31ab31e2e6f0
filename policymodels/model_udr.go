// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package policymodels

// UdrInstance describes one UDR candidate as advertised through discovery.
// A nil RequiredSliceSst marks a general-purpose instance; a non-nil value
// marks a slice-specialized instance only usable when the requested SST matches.
type UdrInstance struct {
	Id                string   `json:"id" mapstructure:"id"`
	Address           string   `json:"address" mapstructure:"address"`
	Priority          int32    `json:"priority" mapstructure:"priority"`
	Capacity          int32    `json:"capacity" mapstructure:"capacity"`
	SupportedFeatures []string `json:"supportedFeatures" mapstructure:"supportedFeatures"`
	RequiredSliceSst  *int32   `json:"requiredSliceSst,omitempty" mapstructure:"requiredSliceSst"`
}

// UdrQueryResponse is the outcome of the discover-and-query step. A failed
// retrieval carries Error and leaves SubscriptionData nil; callers must treat
// that as non-fatal and continue with defaults.
type UdrQueryResponse struct {
	Success          bool              `json:"success"`
	SelectedUdr      *UdrInstance      `json:"selectedUdr,omitempty"`
	SubscriptionData *SubscriptionData `json:"subscriptionData,omitempty"`
	Error            string            `json:"error,omitempty"`
}

// SubscriptionData is the policy-relevant subscription tree returned by the
// UDR, keyed by "{sst}-{sd}" and then by DNN (Nudr_DataRepository shape).
type SubscriptionData struct {
	PolicyData *PolicyData `json:"policyData,omitempty" mapstructure:"policyData"`
}

type PolicyData struct {
	SmPolicyData *SmPolicyData `json:"smPolicyData,omitempty" mapstructure:"smPolicyData"`
	UePolicy     *UePolicy     `json:"uePolicy,omitempty" mapstructure:"uePolicy"`
}

type SmPolicyData struct {
	SmPolicySnssaiData map[string]*SmPolicySnssaiData `json:"smPolicySnssaiData,omitempty" mapstructure:"smPolicySnssaiData"`
}

type SmPolicySnssaiData struct {
	SmPolicyDnnData map[string]*SmPolicyDnnData `json:"smPolicyDnnData,omitempty" mapstructure:"smPolicyDnnData"`
}

type SmPolicyDnnData struct {
	AllowedServices    []string `json:"allowedServices,omitempty" mapstructure:"allowedServices"`
	SubscCats          []string `json:"subscCats,omitempty" mapstructure:"subscCats"`
	GbrUl              string   `json:"gbrUl,omitempty" mapstructure:"gbrUl"`
	GbrDl              string   `json:"gbrDl,omitempty" mapstructure:"gbrDl"`
	MaxBrUl            string   `json:"maxBrUl,omitempty" mapstructure:"maxBrUl"`
	MaxBrDl            string   `json:"maxBrDl,omitempty" mapstructure:"maxBrDl"`
	QosClassIdentifier int32    `json:"qoSClassIdentifier,omitempty" mapstructure:"qoSClassIdentifier"`
	RatingGroup        int32    `json:"ratingGroup,omitempty" mapstructure:"ratingGroup"`
	Online             bool     `json:"online,omitempty" mapstructure:"online"`
	Offline            bool     `json:"offline,omitempty" mapstructure:"offline"`
}

type UePolicy struct {
	SubscCats []string `json:"subscCats,omitempty" mapstructure:"subscCats"`
}
