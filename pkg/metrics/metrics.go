package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Route label values for ChatTurns.
const (
	RouteLocal    = "local"
	RouteDelegate = "delegate"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	ChatTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulano_chat_turns_total",
			Help: "Total number of chat turns by routing decision",
		},
		[]string{"route", "intent"},
	)

	ChatTurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fulano_chat_turn_duration_seconds",
			Help:    "Duration of a chat turn in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	ClassifierConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fulano_classifier_confidence",
			Help:    "Confidence of the intent classifier arg-max label",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulano_llm_requests_total",
			Help: "Total number of LLM generation requests per provider",
		},
		[]string{"provider", "outcome"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fulano_llm_request_duration_seconds",
			Help:    "Duration of LLM generation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	ToolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulano_tool_invocations_total",
			Help: "Total number of tool invocations",
		},
		[]string{"tool", "outcome"},
	)
)

// Outcome maps an error to an outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
