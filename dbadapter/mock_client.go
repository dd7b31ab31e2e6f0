// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package dbadapter

import (
	"go.mongodb.org/mongo-driver/bson"
)

// MockDBClient is a hook-based mock of DBInterface for tests.
type MockDBClient struct {
	GetOneFn      func(collName string, filter bson.M) (map[string]interface{}, error)
	GetManyFn     func(collName string, filter bson.M) ([]map[string]interface{}, error)
	PostFn        func(collName string, filter bson.M, postData map[string]interface{}) (bool, error)
	PutOneFn      func(collName string, filter bson.M, putData map[string]interface{}) (bool, error)
	DeleteOneFn   func(collName string, filter bson.M) error
	CreateIndexFn func(collName string, keyField string) (bool, error)
}

func (m *MockDBClient) RestfulAPIGetOne(collName string, filter bson.M) (map[string]interface{}, error) {
	if m.GetOneFn != nil {
		return m.GetOneFn(collName, filter)
	}
	return nil, nil
}

func (m *MockDBClient) RestfulAPIGetMany(collName string, filter bson.M) ([]map[string]interface{}, error) {
	if m.GetManyFn != nil {
		return m.GetManyFn(collName, filter)
	}
	return nil, nil
}

func (m *MockDBClient) RestfulAPIPost(collName string, filter bson.M, postData map[string]interface{}) (bool, error) {
	if m.PostFn != nil {
		return m.PostFn(collName, filter, postData)
	}
	return true, nil
}

func (m *MockDBClient) RestfulAPIPutOne(collName string, filter bson.M, putData map[string]interface{}) (bool, error) {
	if m.PutOneFn != nil {
		return m.PutOneFn(collName, filter, putData)
	}
	return true, nil
}

func (m *MockDBClient) RestfulAPIDeleteOne(collName string, filter bson.M) error {
	if m.DeleteOneFn != nil {
		return m.DeleteOneFn(collName, filter)
	}
	return nil
}

func (m *MockDBClient) CreateIndex(collName string, keyField string) (bool, error) {
	if m.CreateIndexFn != nil {
		return m.CreateIndexFn(collName, keyField)
	}
	return true, nil
}
