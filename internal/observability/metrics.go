package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// SwapTransitions counts swap-request state transitions by action and
	// resulting status.
	SwapTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_swap_transitions_total",
		Help: "Total swap request state transitions by action and resulting status",
	}, []string{"action", "status"})

	// RatingSubmissions counts accepted rating submissions by score.
	RatingSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_rating_submissions_total",
		Help: "Total ratings submitted by score",
	}, []string{"score"})

	// AdminActions counts audit-logged moderation actions by action tag.
	AdminActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_admin_actions_total",
		Help: "Total moderation actions recorded in the audit log",
	}, []string{"action"})
)
