package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeError, Outcome(errors.New("boom")))
}

func TestToolInvocationsCounter(t *testing.T) {
	before := testutil.ToFloat64(ToolInvocations.WithLabelValues("metrics_test_tool", OutcomeSuccess))
	ToolInvocations.WithLabelValues("metrics_test_tool", OutcomeSuccess).Inc()
	after := testutil.ToFloat64(ToolInvocations.WithLabelValues("metrics_test_tool", OutcomeSuccess))
	assert.Equal(t, before+1, after)
}
