// Package tracker owns the polling loop: it fetches the satellite position on
// a fixed interval, records it on the ground track and keeps the most recent
// TLE around for forward prediction.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"iss-tracker/internal/metrics"
	"iss-tracker/internal/predict"
	"iss-tracker/internal/providers/wtia"
	"iss-tracker/internal/track"
	"iss-tracker/internal/types"
)

var (
	// ErrNoFix is returned before the first position has been recorded.
	ErrNoFix = errors.New("no position fix recorded yet")
	// ErrNoTLE is returned when no element set could be fetched.
	ErrNoTLE = errors.New("no TLE available")
)

// tleMaxAge is how long a fetched element set is reused before a refresh.
// ISS element sets are published a few times per day.
const tleMaxAge = 3 * time.Hour

// PositionSource provides satellite positions and element sets.
// *wtia.Client satisfies it.
type PositionSource interface {
	GetSatellitePosition(satelliteId int) (*wtia.SatellitePositionAPIResponse, error)
	GetTLE(satelliteId int) (*wtia.TLEAPIResponse, error)
}

// Service polls the position source on a fixed interval and appends each
// result to the ground track. A fetch that fails for any reason is logged and
// recorded as the zero position; nothing is retried. Callers can tell the two
// apart through Position.IsZero.
type Service struct {
	source      PositionSource
	buffer      *track.Buffer
	satelliteID int
	interval    time.Duration
	logger      *slog.Logger
	metrics     *metrics.Metrics
	now         func() time.Time

	mu         sync.Mutex
	tle        *wtia.TLEAPIResponse
	tleFetched time.Time
}

func NewService(source PositionSource, buffer *track.Buffer, satelliteID int, interval time.Duration, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		source:      source,
		buffer:      buffer,
		satelliteID: satelliteID,
		interval:    interval,
		logger:      logger.With("component", "tracker"),
		metrics:     m,
		now:         time.Now,
	}
}

// Run polls once immediately, then on every tick until the context is
// cancelled. It is the only goroutine that writes to the buffer.
func (s *Service) Run(ctx context.Context) {
	s.logger.Info("tracker started",
		"satellite_id", s.satelliteID,
		"interval", s.interval,
		"track_capacity", s.buffer.Cap(),
	)

	s.Poll()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("tracker stopped")
			return
		case <-ticker.C:
			s.Poll()
		}
	}
}

// Poll fetches the current position and appends it to the ground track.
func (s *Service) Poll() {
	p := s.fetchPosition()
	s.buffer.Append(p)

	s.metrics.FetchesTotal.Inc()
	s.metrics.LastFetchUnix.Set(float64(s.now().Unix()))
	s.metrics.TrackSize.Set(float64(s.buffer.Len()))
}

// fetchPosition collapses any fetch or decode failure to the zero position.
// This mirrors the upstream behavior the service inherited; the failure is
// still visible in the log and the fetch error counter.
func (s *Service) fetchPosition() types.Position {
	resp, err := s.source.GetSatellitePosition(s.satelliteID)
	if err != nil {
		s.logger.Warn("problem retrieving current satellite position, recording zero position",
			"satellite_id", s.satelliteID,
			"error", err,
		)
		s.metrics.FetchErrorsTotal.Inc()
		return types.Position{Timestamp: s.now().UTC()}
	}

	return types.NewPosition(resp.Latitude, resp.Longitude, resp.Altitude, time.Unix(resp.Timestamp, 0).UTC())
}

// Latest returns the most recent recorded position.
func (s *Service) Latest() (types.Position, error) {
	p, ok := s.buffer.Latest()
	if !ok {
		return types.Position{}, ErrNoFix
	}
	return p, nil
}

// Track returns a copy of the ground track, oldest fix first.
func (s *Service) Track() []types.Position {
	return s.buffer.Snapshot()
}

// Heading returns the direction of travel derived from the two most recent
// fixes.
func (s *Service) Heading() (types.Heading, error) {
	points := s.buffer.Snapshot()
	if len(points) < 2 {
		return types.Heading{}, ErrNoFix
	}
	return types.NewHeadingBetween(points[len(points)-2], points[len(points)-1]), nil
}

// Prediction propagates the current element set forward from now and returns
// the expected ground track, one point per minute.
func (s *Service) Prediction(minutes int) ([]types.Position, error) {
	tle, err := s.currentTLE()
	if err != nil {
		return nil, err
	}

	duration := time.Duration(minutes) * time.Minute
	points, err := predict.GroundTrack(tle.Line1, tle.Line2, s.now().UTC(), duration, time.Minute)
	if err != nil {
		s.logger.Error("failed to propagate element set",
			"satellite_id", s.satelliteID,
			"error", err,
		)
		return nil, err
	}
	return points, nil
}

// currentTLE returns the cached element set, refreshing it when stale.
func (s *Service) currentTLE() (*wtia.TLEAPIResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tle != nil && s.now().Sub(s.tleFetched) < tleMaxAge {
		return s.tle, nil
	}

	tle, err := s.source.GetTLE(s.satelliteID)
	if err != nil {
		if s.tle != nil {
			// A stale element set still beats none
			s.logger.Warn("TLE refresh failed, keeping stale element set",
				"satellite_id", s.satelliteID,
				"error", err,
			)
			return s.tle, nil
		}
		return nil, ErrNoTLE
	}

	s.tle = tle
	s.tleFetched = s.now()
	return s.tle, nil
}
