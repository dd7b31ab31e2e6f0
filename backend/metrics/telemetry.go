// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 *  Metrics package exposes the decision counters of the PCF service.
 */

package metrics

import (
	"fmt"
	"net/http"

	"github.com/omec-project/pcf/backend/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SmPolicyDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pcf_sm_policy_decisions_total",
			Help: "Number of SM policy create decisions by envelope status",
		},
		[]string{"status"},
	)

	RxDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pcf_rx_decisions_total",
			Help: "Number of Rx admission decisions by media type and verdict",
		},
		[]string{"media_type", "verdict"},
	)
)

func IncrSmPolicyDecision(status string) {
	SmPolicyDecisions.WithLabelValues(status).Inc()
}

func IncrRxDecision(mediaType string, allowed bool) {
	verdict := "denied"
	if allowed {
		verdict = "allowed"
	}
	RxDecisions.WithLabelValues(mediaType, verdict).Inc()
}

// InitMetrics serves the prometheus endpoint. Blocking; run in a goroutine.
func InitMetrics(port int) {
	if port == 0 {
		port = 8080
	}
	http.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil); err != nil {
		logger.MetricsLog.Errorf("could not open metrics port: %v", err)
	}
}
