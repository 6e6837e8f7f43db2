// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/ChainSafe/chainbridge-transfer/metrics"
	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

type TransferMetricsTestSuite struct {
	suite.Suite
	reader  *sdkmetric.ManualReader
	metrics *metrics.TransferMetrics
}

func TestRunTransferMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(TransferMetricsTestSuite))
}

func (s *TransferMetricsTestSuite) SetupTest() {
	s.reader = sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader))
	m, err := metrics.NewTransferMetrics(provider.Meter("test"))
	s.Nil(err)
	s.metrics = m
}

func (s *TransferMetricsTestSuite) collect() map[string]metricdata.Aggregation {
	rm := metricdata.ResourceMetrics{}
	s.Nil(s.reader.Collect(context.Background(), &rm))

	collected := make(map[string]metricdata.Aggregation)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			collected[m.Name] = m.Data
		}
	}
	return collected
}

func sum(data metricdata.Aggregation) int64 {
	var total int64
	for _, dp := range data.(metricdata.Sum[int64]).DataPoints {
		total += dp.Value
	}
	return total
}

func (s *TransferMetricsTestSuite) Test_TrackDeposits() {
	s.metrics.TrackDeposit(1, 2)
	s.metrics.TrackDeposit(1, 2)
	s.metrics.TrackDepositError(1, 3)

	collected := s.collect()

	s.Equal(int64(2), sum(collected["transfer.Deposits"]))
	s.Equal(int64(1), sum(collected["transfer.DepositErrors"]))
}

func (s *TransferMetricsTestSuite) Test_TrackVote_SplitsByVerdict() {
	s.metrics.TrackVote(2, transfer.Confirmed)
	s.metrics.TrackVote(2, transfer.Confirmed)
	s.metrics.TrackVote(2, transfer.Rejected)

	votes := s.collect()["transfer.Votes"].(metricdata.Sum[int64])

	s.Len(votes.DataPoints, 2)
	s.Equal(int64(3), sum(votes))
}

func (s *TransferMetricsTestSuite) Test_TrackOutcome() {
	s.metrics.TrackOutcome(1, 2, transfer.StatusCompleted, 3*time.Second)
	s.metrics.TrackOutcome(1, 2, transfer.StatusAborted, time.Second)
	s.metrics.TrackOutcome(1, 2, transfer.StatusInTransit, time.Second)

	collected := s.collect()

	s.Equal(int64(1), sum(collected["transfer.Completed"]))
	s.Equal(int64(1), sum(collected["transfer.Aborted"]))
	latency := collected["transfer.ExecutionLatency"].(metricdata.Histogram[int64])
	s.Equal(uint64(2), latency.DataPoints[0].Count)
	s.Equal(int64(4000), latency.DataPoints[0].Sum)
}
