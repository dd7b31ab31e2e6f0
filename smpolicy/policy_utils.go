// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package smpolicy

import (
	"fmt"
	"math/rand"
	"time"
)

// GeneratePolicyId returns a unique association id for one SM policy.
func GeneratePolicyId() string {
	return fmt.Sprintf("sm-policy-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}

// RevalidationTime returns the instant the SMF must come back for
// re-authorization, fixed at 24 hours from now.
func RevalidationTime() string {
	return time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
}
