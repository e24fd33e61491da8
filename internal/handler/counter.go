package handler // declare the package name; contains HTTP handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/visit-counter/internal/config"
	"github.com/iliyamo/visit-counter/internal/metrics"
)

// serviceVersion is reported by /ping.  Remember to bump this on changes.
const serviceVersion = "1.2.0"

// counterKey is the single Redis key holding the visit count.
const counterKey = "counter"

const countNote = "Try hitting refresh to see the counter increase!"

// Counter is the slice of the store the handlers need.  Taking an interface
// keeps the handlers testable without a running backend.
type Counter interface {
	Ping(ctx context.Context) error
	Increment(ctx context.Context, key string) (int64, error)
	Version() string
}

// CounterHandler bundles dependencies for the ping and count endpoints.
type CounterHandler struct {
	Cfg   config.Config
	Store Counter
	Log   *zap.Logger
}

func NewCounterHandler(cfg config.Config, s Counter, log *zap.Logger) *CounterHandler {
	return &CounterHandler{Cfg: cfg, Store: s, Log: log}
}

// ----- DTOs -----

type pingResp struct {
	Status         string  `json:"status"`
	Environment    string  `json:"environment"`
	RedisConnected bool    `json:"redis_connected"`
	ResponseTimeMS float64 `json:"response_time_ms"`
	Version        string  `json:"version"`
}

type countResp struct {
	Status       string `json:"status"`
	VisitCount   int64  `json:"visit_count"`
	Note         string `json:"note"`
	RedisVersion string `json:"redis_version"`
}

type countErrResp struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Action   string `json:"action"`
	Severity string `json:"severity"`
}

// Ping reports liveness.  The endpoint itself never fails: a backend error
// only flips redis_connected to false inside a 200 response, because a
// liveness probe must not fail merely because a dependency is down.
func (h *CounterHandler) Ping(c echo.Context) error {
	start := time.Now()

	connected := false
	if err := h.Store.Ping(c.Request().Context()); err != nil {
		h.Log.Error("backend ping failed", zap.Error(err))
		metrics.BackendUp.Set(0)
	} else {
		connected = true
		metrics.BackendUp.Set(1)
	}

	return c.JSON(http.StatusOK, pingResp{
		Status:         "ok",
		Environment:    h.Cfg.Env,
		RedisConnected: connected,
		ResponseTimeMS: roundMillis(time.Since(start)),
		Version:        serviceVersion,
	})
}

// Count increments the visit counter and returns the new value.  A backend
// failure surfaces as a 503 with a structured body; the increment simply
// never happened, so nothing is counted retroactively once the backend
// recovers.
func (h *CounterHandler) Count(c echo.Context) error {
	visits, err := h.Store.Increment(c.Request().Context(), counterKey)
	if err != nil {
		h.Log.Error("backend increment failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, countErrResp{
			Status:   "error",
			Message:  "Counter service unavailable",
			Action:   "Please try again later",
			Severity: "high",
		})
	}

	metrics.VisitsRecorded.Inc()
	h.Log.Info("visit recorded", zap.Int64("visit_count", visits))

	return c.JSON(http.StatusOK, countResp{
		Status:       "ok",
		VisitCount:   visits,
		Note:         countNote,
		RedisVersion: h.Store.Version(),
	})
}

// roundMillis converts a duration to milliseconds rounded to two decimals.
func roundMillis(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*100) / 100
}
