package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/yukikurage/jcp-backend-service/internal/clock"
	"github.com/yukikurage/jcp-backend-service/internal/config"
	"github.com/yukikurage/jcp-backend-service/internal/constants"
	"github.com/yukikurage/jcp-backend-service/internal/dto"
)

var (
	ErrClockUnavailable = errors.New("clock unavailable")
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// StatusService builds the status, discovery and liveness payloads.
// It holds no mutable state and is safe for concurrent use.
type StatusService struct {
	log         zerolog.Logger
	service     string
	version     string
	clock       clock.Clock
	db          Pinger
	pingTimeout time.Duration
}

// NewStatusService creates a new StatusService. db may be nil, in which
// case liveness reports on the process only.
func NewStatusService(log zerolog.Logger, cfg config.ServiceConfig, clk clock.Clock, db Pinger, pingTimeout time.Duration) *StatusService {
	return &StatusService{
		log:         log,
		service:     cfg.Name,
		version:     cfg.Version,
		clock:       clk,
		db:          db,
		pingTimeout: pingTimeout,
	}
}

// Health reports the service as up with the current instant
func (s *StatusService) Health() (*dto.HealthResponse, error) {
	now := s.clock.Now()
	if now.IsZero() {
		return nil, ErrClockUnavailable
	}

	return &dto.HealthResponse{
		Status:    constants.StatusUp,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Service:   s.service,
		Version:   s.version,
	}, nil
}

func (s *StatusService) Ping() dto.PingResponse {
	return dto.PingResponse{Message: constants.PingMessage}
}

// Root builds the discovery payload for the given endpoint paths
func (s *StatusService) Root(endpoints []string) dto.RootResponse {
	listed := make([]string, len(endpoints))
	copy(listed, endpoints)

	return dto.RootResponse{
		Service:   s.service,
		Status:    constants.StatusRunning,
		Endpoints: listed,
	}
}

// Liveness pings the database within the configured timeout. Ping errors
// are logged, never returned to the caller.
func (s *StatusService) Liveness(ctx context.Context) dto.LivenessResponse {
	if s.db == nil {
		return dto.LivenessResponse{Status: constants.StatusUp}
	}

	ctx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()

	db := dto.ComponentStatus{Status: constants.StatusUp}
	status := constants.StatusUp
	if err := s.db.PingContext(ctx); err != nil {
		s.log.Error().Err(err).Str("component", constants.ComponentDB).Msg("liveness ping failed")
		db = dto.ComponentStatus{Status: constants.StatusDown}
		status = constants.StatusDown
	}

	return dto.LivenessResponse{
		Status: status,
		Components: map[string]dto.ComponentStatus{
			constants.ComponentDB: db,
		},
	}
}
