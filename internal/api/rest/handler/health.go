package handler

import (
	"context"
	"net/http"

	"github.com/dkurganov/microblog/internal/logger"
)

// Pinger probes a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports whether the service and its stores are reachable.
type Health struct {
	probes map[string]Pinger
	logger *logger.Logger
}

// NewHealth creates a health handler over named store probes. An empty probe
// map yields a static ok response.
func NewHealth(probes map[string]Pinger, logger *logger.Logger) *Health {
	return &Health{probes: probes, logger: logger}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Check probes every store and reports 502 if any is unreachable.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	for name, probe := range h.probes {
		if err := probe.Ping(r.Context()); err != nil {
			h.logger.Error("health probe failed", "store", name, "error", err.Error())
			writeJSON(w, http.StatusBadGateway, healthResponse{Status: "unavailable"})
			return
		}
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
