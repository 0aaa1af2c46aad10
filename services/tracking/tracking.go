package tracking

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	providerRepo "prolink/database/repository/provider"
	"prolink/models"
	"prolink/utils"
)

// TrackingService produces a live position feed for one professional,
// scoped to the lifetime of a tracking session.
type TrackingService interface {
	// OpenStream starts a session for the professional. It fails with a
	// NotFound-coded error when the professional does not exist; in that
	// case no resources are allocated at all.
	OpenStream(ctx context.Context, professionalID string) (*Session, error)
}

// Options tune the stream and its companion countdown.
type Options struct {
	Tick       time.Duration // wait between position updates
	StepMax    float64       // per-axis bound of one perturbation
	ETATick    time.Duration // wait between countdown decrements
	ETAInitial int           // countdown start value
}

// DefaultTrackingService is the production implementation.
type DefaultTrackingService struct {
	Providers providerRepo.ProviderRepository
	Opts      Options
}

// Session is one live tracking session. Locations and ETA are pushed by
// independently scheduled producers coupled only by shared lifetime; both
// channels are unbuffered and closed when the session ends.
type Session struct {
	Locations <-chan models.GeoLocation
	ETA       <-chan int

	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// Cancel stops both producers and returns only after they have exited, so
// no update is delivered after it returns. It is idempotent.
func (s *Session) Cancel() {
	s.once.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
}

func (t *DefaultTrackingService) OpenStream(ctx context.Context, professionalID string) (*Session, error) {
	pro, err := t.Providers.GetByID(ctx, professionalID)
	if err != nil {
		utils.GetLogger().Error("OpenStream: failed to fetch professional", zap.Error(err))
		return nil, err
	}
	if pro == nil {
		return nil, utils.NotFoundError("professional not found for location stream")
	}

	locations := make(chan models.GeoLocation)
	eta := make(chan int)
	s := &Session{
		Locations: locations,
		ETA:       eta,
		stop:      make(chan struct{}),
	}
	s.wg.Add(2)
	go t.streamLocations(s, locations, pro.Location)
	go t.countdownETA(s, eta)

	utils.GetLogger().Debug("tracking session opened",
		zap.String("professionalId", professionalID))
	return s, nil
}

// streamLocations pushes a bounded random walk from the professional's
// last known position: each update moves at most StepMax per axis, so a
// consumer never observes a teleport.
func (t *DefaultTrackingService) streamLocations(s *Session, out chan<- models.GeoLocation, start models.GeoLocation) {
	defer s.wg.Done()
	defer close(out)

	ticker := time.NewTicker(t.Opts.Tick)
	defer ticker.Stop()

	pos := start
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			pos = models.GeoLocation{
				Lat: pos.Lat + (rand.Float64()*2-1)*t.Opts.StepMax,
				Lon: pos.Lon + (rand.Float64()*2-1)*t.Opts.StepMax,
			}
			select {
			case out <- pos:
			case <-s.stop:
				return
			}
		}
	}
}

// countdownETA decrements once per tick from the configured initial value,
// floored at zero. It shares nothing with the position producer except the
// session's stop channel.
func (t *DefaultTrackingService) countdownETA(s *Session, out chan<- int) {
	defer s.wg.Done()
	defer close(out)

	ticker := time.NewTicker(t.Opts.ETATick)
	defer ticker.Stop()

	remaining := t.Opts.ETAInitial
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if remaining > 0 {
				remaining--
			}
			select {
			case out <- remaining:
			case <-s.stop:
				return
			}
		}
	}
}
