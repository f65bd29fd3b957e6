/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package metrics holds the Prometheus collectors of the submodel element store.
package metrics

import (
	"time"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "submodelstore"

// Outcomes of an operation as recorded in operations_total.
const (
	OutcomeSuccess = "success"
	OutcomeClient  = "client_error"
	OutcomeRetry   = "unavailable"
	OutcomeFailure = "internal_error"
)

// Results of a compensating attachment deletion.
const (
	CleanupDeleted = "deleted"
	CleanupFailed  = "failed"
)

var (
	Registry = prometheus.NewRegistry()

	Operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Store operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)

	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of store operations including backend calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	OrphanCleanups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orphan_cleanup_total",
			Help:      "Attachments deleted to undo a failed document write.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		Operations,
		OperationDuration,
		OrphanCleanups,
	)
}

// Outcome classifies err for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case common.IsErrUnavailable(err):
		return OutcomeRetry
	case common.HTTPStatus(err) < 500:
		return OutcomeClient
	default:
		return OutcomeFailure
	}
}

// ObserveOperation records one finished store operation.
func ObserveOperation(operation string, elapsed time.Duration, err error) {
	Operations.WithLabelValues(operation, Outcome(err)).Inc()
	OperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveOrphanCleanup records a compensating attachment deletion.
func ObserveOrphanCleanup(err error) {
	if err != nil {
		OrphanCleanups.WithLabelValues(CleanupFailed).Inc()
		return
	}
	OrphanCleanups.WithLabelValues(CleanupDeleted).Inc()
}
