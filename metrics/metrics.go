// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"

	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

type TransferMetrics struct {
	Deposits         api.Int64Counter
	DepositErrors    api.Int64Counter
	Votes            api.Int64Counter
	Completed        api.Int64Counter
	Aborted          api.Int64Counter
	ExecutionLatency api.Int64Histogram
	startTimeGauge   api.Int64ObservableGauge
}

// NewTransferMetrics registers the transfer instruments on meter
func NewTransferMetrics(meter api.Meter) (*TransferMetrics, error) {
	deposits, err := meter.Int64Counter(
		"transfer.Deposits",
		api.WithDescription("Number of mined deposits"),
	)
	if err != nil {
		return nil, err
	}
	depositErrors, err := meter.Int64Counter(
		"transfer.DepositErrors",
		api.WithDescription("Number of deposits that failed on the home chain"),
	)
	if err != nil {
		return nil, err
	}
	votes, err := meter.Int64Counter(
		"transfer.Votes",
		api.WithDescription("Number of relayer votes observed on destination chains"),
	)
	if err != nil {
		return nil, err
	}
	completed, err := meter.Int64Counter(
		"transfer.Completed",
		api.WithDescription("Number of transfers executed on the destination chain"),
	)
	if err != nil {
		return nil, err
	}
	aborted, err := meter.Int64Counter(
		"transfer.Aborted",
		api.WithDescription("Number of transfers cancelled or no longer observable"),
	)
	if err != nil {
		return nil, err
	}
	latency, err := meter.Int64Histogram(
		"transfer.ExecutionLatency",
		api.WithDescription("Time from deposit submission to the destination chain outcome"),
		api.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	startTime := time.Now().Unix()
	startTimeGauge, err := meter.Int64ObservableGauge(
		"transfer.StartTimeSeconds",
		api.WithDescription("Start time of the transfer client"),
		api.WithInt64Callback(func(ctx context.Context, result api.Int64Observer) error {
			result.Observe(startTime)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &TransferMetrics{
		Deposits:         deposits,
		DepositErrors:    depositErrors,
		Votes:            votes,
		Completed:        completed,
		Aborted:          aborted,
		ExecutionLatency: latency,
		startTimeGauge:   startTimeGauge,
	}, nil
}

func (m *TransferMetrics) TrackDeposit(homeChainID, destinationChainID uint8) {
	m.Deposits.Add(context.Background(), 1, route(homeChainID, destinationChainID))
}

func (m *TransferMetrics) TrackDepositError(homeChainID, destinationChainID uint8) {
	m.DepositErrors.Add(context.Background(), 1, route(homeChainID, destinationChainID))
}

func (m *TransferMetrics) TrackVote(destinationChainID uint8, verdict transfer.Verdict) {
	m.Votes.Add(
		context.Background(),
		1,
		api.WithAttributes(
			attribute.Int64("destinationChain", int64(destinationChainID)),
			attribute.String("verdict", string(verdict)),
		),
	)
}

func (m *TransferMetrics) TrackOutcome(homeChainID, destinationChainID uint8, status transfer.TransactionStatus, latency time.Duration) {
	ctx := context.Background()
	switch status {
	case transfer.StatusCompleted:
		m.Completed.Add(ctx, 1, route(homeChainID, destinationChainID))
	case transfer.StatusAborted:
		m.Aborted.Add(ctx, 1, route(homeChainID, destinationChainID))
	default:
		return
	}
	m.ExecutionLatency.Record(ctx, latency.Milliseconds(), route(homeChainID, destinationChainID))
}

func route(homeChainID, destinationChainID uint8) api.MeasurementOption {
	return api.WithAttributes(
		attribute.Int64("homeChain", int64(homeChainID)),
		attribute.Int64("destinationChain", int64(destinationChainID)),
	)
}
