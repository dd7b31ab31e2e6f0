// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package udrdiscovery

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/omec-project/pcf/backend/logger"
	"github.com/omec-project/pcf/dbadapter"
	"github.com/omec-project/pcf/policymodels"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	UdrProfileColl    = "pcfData.udrProfiles"
	SubscriptionsColl = "policyData.subscriptions"
)

// MongoProvider serves the UDR candidate registry and the subscription store
// from MongoDB through the common DB client.
type MongoProvider struct{}

func (p *MongoProvider) ListUdrCandidates(ctx context.Context) ([]*policymodels.UdrInstance, error) {
	rawProfiles, err := dbadapter.CommonDBClient.RestfulAPIGetMany(UdrProfileColl, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list UDR profiles: %w", err)
	}
	candidates := make([]*policymodels.UdrInstance, 0, len(rawProfiles))
	for _, raw := range rawProfiles {
		var udr policymodels.UdrInstance
		if err := mapstructure.Decode(raw, &udr); err != nil {
			logger.DbLog.Errorf("could not decode UDR profile %v: %v", raw, err)
			continue
		}
		candidates = append(candidates, &udr)
	}
	return candidates, nil
}

func (p *MongoProvider) FetchSubscriptionData(ctx context.Context, udr *policymodels.UdrInstance, supi, dnn string) (*policymodels.SubscriptionData, error) {
	raw, err := dbadapter.CommonDBClient.RestfulAPIGetOne(SubscriptionsColl, bson.M{"ueId": supi})
	if err != nil {
		return nil, fmt.Errorf("failed to query subscription data for %s: %w", supi, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no subscription data found for %s", supi)
	}
	var subData policymodels.SubscriptionData
	if err := mapstructure.Decode(raw, &subData); err != nil {
		return nil, fmt.Errorf("could not decode subscription data for %s: %w", supi, err)
	}
	return &subData, nil
}
