// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 * PCF Configuration Factory
 */

package factory

type Config struct {
	Info          *Info          `yaml:"info"`
	Configuration *Configuration `yaml:"configuration"`
	Logger        *Logger        `yaml:"logger"`
}

type Info struct {
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
	HttpVersion int    `yaml:"http-version,omitempty"`
}

type Configuration struct {
	WebServer   *WebServer    `yaml:"webServer,omitempty"`
	Mongodb     *Mongodb      `yaml:"mongodb,omitempty"`
	UdrProfiles []*UdrProfile `yaml:"udrProfiles,omitempty"`
	MetricsPort int           `yaml:"metricsPort,omitempty"`
	TLS         *TLS          `yaml:"tls,omitempty"`
}

type WebServer struct {
	Scheme string `yaml:"scheme"`
	IP     string `yaml:"ipv4Address"`
	Port   int    `yaml:"port"`
}

type Mongodb struct {
	Name string `yaml:"name,omitempty"`
	Url  string `yaml:"url,omitempty"`
}

// UdrProfile is one configured UDR candidate. Candidates with sliceSst set are
// slice-specialized and only considered when the requested SST matches.
type UdrProfile struct {
	Id                string   `yaml:"id"`
	Address           string   `yaml:"address"`
	Priority          int32    `yaml:"priority"`
	Capacity          int32    `yaml:"capacity,omitempty"`
	SupportedFeatures []string `yaml:"supportedFeatures,omitempty"`
	SliceSst          *int32   `yaml:"sliceSst,omitempty"`
}

type TLS struct {
	PEM string `yaml:"pem,omitempty"`
	Key string `yaml:"key,omitempty"`
}

type Logger struct {
	PCF *LogSetting `yaml:"PCF,omitempty"`
}

type LogSetting struct {
	DebugLevel string `yaml:"debugLevel,omitempty"`
}
