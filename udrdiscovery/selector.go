// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package udrdiscovery

import (
	"github.com/omec-project/pcf/backend/logger"
	"github.com/omec-project/pcf/policymodels"
)

// IsAvailable reports whether a candidate may serve the request. General
// purpose instances always qualify; slice-specialized instances qualify only
// when the requested SST matches theirs.
func IsAvailable(udr *policymodels.UdrInstance, sliceInfo *policymodels.Snssai) bool {
	if udr.RequiredSliceSst == nil {
		return true
	}
	return sliceInfo != nil && sliceInfo.Sst == *udr.RequiredSliceSst
}

// DiscoverUdr filters the candidate set by availability and picks the instance
// with the numerically lowest priority, first-encountered winning ties. Nil
// means no suitable instance exists. Stands in for an NRF directory query.
func DiscoverUdr(
	candidates []*policymodels.UdrInstance,
	supi string,
	sliceInfo *policymodels.Snssai,
	dnn string,
) *policymodels.UdrInstance {
	logger.UdrLog.Infof("discovering UDR for SUPI %s, slice %+v, DNN %s", supi, sliceInfo, dnn)

	var selected *policymodels.UdrInstance
	for _, udr := range candidates {
		if !IsAvailable(udr, sliceInfo) {
			continue
		}
		if selected == nil || udr.Priority < selected.Priority {
			selected = udr
		}
	}

	if selected == nil {
		logger.UdrLog.Errorln("no available UDR instances found")
		return nil
	}
	logger.UdrLog.Infof("selected UDR %s at %s", selected.Id, selected.Address)
	return selected
}
