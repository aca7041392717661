package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"expense-insights/internal/models"

	"github.com/google/uuid"
)

// ErrSearchSuperseded is returned to a search whose result was discarded because a newer
// search or a reset happened while it was running
var ErrSearchSuperseded = errors.New("search superseded by a newer search")

// SearchSession is one search control. At most one search owns the displayed result:
// every Search takes a new token and cancels the previous in-flight search, and a result
// is only published while its token is still current.
type SearchSession struct {
	mu       sync.Mutex
	insights CommunityInsightsServiceInterface
	token    uint64
	cancel   context.CancelFunc
	snapshot models.SearchSnapshot
}

// NewSearchSession creates an idle search session
func NewSearchSession(insights CommunityInsightsServiceInterface) *SearchSession {
	return &SearchSession{
		insights: insights,
		snapshot: models.SearchSnapshot{State: models.SearchStateIdle},
	}
}

// Search runs a community search and publishes its outcome. An invalid scope is rejected
// before any search starts and leaves the displayed state untouched.
func (s *SearchSession) Search(ctx context.Context, scope models.LocationScope) (models.SearchSnapshot, error) {
	scope = scope.Normalize()
	if err := scope.Validate(); err != nil {
		return s.Snapshot(), err
	}

	searchCtx, token := s.begin(ctx, scope)
	result, err := s.insights.Search(searchCtx, scope)
	return s.finish(token, scope, result, err)
}

func (s *SearchSession) begin(ctx context.Context, scope models.LocationScope) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	s.token++
	searchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.snapshot = models.SearchSnapshot{
		State: models.SearchStateSearching,
		Token: s.token,
		Scope: &scope,
	}

	return searchCtx, s.token
}

func (s *SearchSession) finish(token uint64, scope models.LocationScope, result *models.CommunityInsights, err error) (models.SearchSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.token {
		return s.snapshot, ErrSearchSuperseded
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if err != nil {
		// the previous result is cleared, never left on display next to an error
		s.snapshot = models.SearchSnapshot{
			State: models.SearchStateFailed,
			Token: token,
			Scope: &scope,
			Error: err.Error(),
		}
		return s.snapshot, err
	}

	state := models.SearchStateInsufficient
	if result.HasData() {
		state = models.SearchStateWithData
	}
	s.snapshot = models.SearchSnapshot{
		State:  state,
		Token:  token,
		Scope:  &scope,
		Result: result,
	}
	return s.snapshot, nil
}

// Reset returns the control to idle and discards any in-flight search
func (s *SearchSession) Reset() models.SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	s.token++
	s.snapshot = models.SearchSnapshot{State: models.SearchStateIdle, Token: s.token}
	return s.snapshot
}

// Snapshot returns what the control currently displays
func (s *SearchSession) Snapshot() models.SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

type sessionEntry struct {
	session  *SearchSession
	lastUsed time.Time
}

// SearchSessionRegistry keeps one search session per user and forgets sessions
// that have been idle longer than idleTimeout
type SearchSessionRegistry struct {
	mu          sync.Mutex
	insights    CommunityInsightsServiceInterface
	idleTimeout time.Duration
	sessions    map[uuid.UUID]*sessionEntry
	metrics     MetricsRecorderInterface
	now         func() time.Time
}

// NewSearchSessionRegistry creates an empty registry. A non-positive idleTimeout keeps sessions forever.
func NewSearchSessionRegistry(insights CommunityInsightsServiceInterface, idleTimeout time.Duration, metrics MetricsRecorderInterface) *SearchSessionRegistry {
	return &SearchSessionRegistry{
		insights:    insights,
		idleTimeout: idleTimeout,
		sessions:    make(map[uuid.UUID]*sessionEntry),
		metrics:     metrics,
		now:         time.Now,
	}
}

// Search runs a search through the user's session
func (r *SearchSessionRegistry) Search(ctx context.Context, userID uuid.UUID, scope models.LocationScope) (models.SearchSnapshot, error) {
	snapshot, err := r.session(userID).Search(ctx, scope)
	if errors.Is(err, ErrSearchSuperseded) && r.metrics != nil {
		r.metrics.IncrementCounter("community_search_superseded", nil)
	}
	return snapshot, err
}

// Snapshot returns what the user's control currently displays
func (r *SearchSessionRegistry) Snapshot(userID uuid.UUID) models.SearchSnapshot {
	return r.session(userID).Snapshot()
}

// Reset returns the user's control to idle
func (r *SearchSessionRegistry) Reset(userID uuid.UUID) models.SearchSnapshot {
	return r.session(userID).Reset()
}

// session returns the user's session, creating it on first use
func (r *SearchSessionRegistry) session(userID uuid.UUID) *SearchSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[userID]
	if !ok {
		entry = &sessionEntry{session: NewSearchSession(r.insights)}
		r.sessions[userID] = entry
		r.publishSize()
	}
	entry.lastUsed = r.now()

	return entry.session
}

// Remove drops the user's session, cancelling any search it is running
func (r *SearchSessionRegistry) Remove(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.sessions[userID]; ok {
		entry.session.Reset()
		delete(r.sessions, userID)
		r.publishSize()
	}
}

func (r *SearchSessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Prune drops every session idle for longer than the idle timeout and returns how many went
func (r *SearchSessionRegistry) Prune() int {
	if r.idleTimeout <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleTimeout)
	removed := 0
	for userID, entry := range r.sessions {
		if entry.lastUsed.Before(cutoff) {
			entry.session.Reset()
			delete(r.sessions, userID)
			removed++
		}
	}

	if removed > 0 {
		r.publishSize()
	}
	return removed
}

// Run prunes idle sessions every interval until ctx is done
func (r *SearchSessionRegistry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Prune()
		}
	}
}

func (r *SearchSessionRegistry) publishSize() {
	if r.metrics != nil {
		r.metrics.RecordGauge("active_search_sessions", float64(len(r.sessions)), nil)
	}
}
