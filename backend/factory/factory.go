// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 * PCF Configuration Factory
 */

package factory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var PcfConfig Config

func InitConfigFactory(f string) error {
	content, err := os.ReadFile(f)
	if err != nil {
		return fmt.Errorf("[Configuration] %+v", err)
	}
	PcfConfig = Config{}
	if yamlErr := yaml.Unmarshal(content, &PcfConfig); yamlErr != nil {
		return fmt.Errorf("[Configuration] %+v", yamlErr)
	}
	return nil
}
