// SPDX-License-Identifier: MIT

package telemetry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsym/telemetry"
)

func TestPrometheus_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := telemetry.NewPrometheus(reg)

	rec.Observe(telemetry.OpTrim, telemetry.Outcome(nil), time.Millisecond)
	rec.Observe(telemetry.OpTrim, telemetry.Outcome(nil), time.Millisecond)
	rec.Observe(telemetry.OpRefine, telemetry.Outcome(errors.New("boom")), time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "lvsym_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per (op, outcome)")

	n, err = testutil.GatherAndCount(reg, "lvsym_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one histogram per op")
}

func TestNop_DoesNothing(t *testing.T) {
	var rec telemetry.Recorder = telemetry.Nop{}
	assert.NotPanics(t, func() { rec.Observe(telemetry.OpMagnetic, telemetry.OutcomeOK, 0) })
}
