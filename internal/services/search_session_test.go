package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"expense-insights/internal/models"
	"expense-insights/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SearchSessionSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	insights *service_mocks.MockCommunityInsightsServiceInterface
	session  *SearchSession
	scope    models.LocationScope
}

func TestSearchSessionSuite(t *testing.T) {
	suite.Run(t, new(SearchSessionSuite))
}

func (s *SearchSessionSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.insights = service_mocks.NewMockCommunityInsightsServiceInterface(s.ctrl)
	s.session = NewSearchSession(s.insights)
	s.scope = models.LocationScope{Country: "India", State: "Karnataka", City: "Bengaluru"}
}

func (s *SearchSessionSuite) TearDownTest() {
	s.ctrl.Finish()
}

func withData(scope models.LocationScope) *models.CommunityInsights {
	return BuildCommunityInsights(scope, nil, []models.CostOfLivingIndexRow{indexRow("2026-09", 3, "60")}, "₹")
}

type searchOutcome struct {
	snapshot models.SearchSnapshot
	err      error
}

// blockUntilCancelled makes the next search wait for its context and report when it started
func (s *SearchSessionSuite) blockUntilCancelled(scope models.LocationScope, started chan<- struct{}) {
	s.insights.EXPECT().Search(gomock.Any(), scope).DoAndReturn(
		func(ctx context.Context, _ models.LocationScope) (*models.CommunityInsights, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})
}

func (s *SearchSessionSuite) TestStartsIdle() {
	snapshot := s.session.Snapshot()

	s.Equal(models.SearchStateIdle, snapshot.State)
	s.Nil(snapshot.Result)
}

func (s *SearchSessionSuite) TestSearchWithData() {
	s.insights.EXPECT().Search(gomock.Any(), s.scope).Return(withData(s.scope), nil)

	snapshot, err := s.session.Search(context.Background(), models.LocationScope{Country: " India", State: "Karnataka", City: "Bengaluru "})

	s.Require().NoError(err)
	s.Equal(models.SearchStateWithData, snapshot.State)
	s.Equal(uint64(1), snapshot.Token)
	s.Require().NotNil(snapshot.Scope)
	s.Equal(s.scope, *snapshot.Scope)
	s.Equal(snapshot, s.session.Snapshot())
}

func (s *SearchSessionSuite) TestSearchInsufficientData() {
	s.insights.EXPECT().Search(gomock.Any(), s.scope).Return(BuildCommunityInsights(s.scope, nil, nil, "₹"), nil)

	snapshot, err := s.session.Search(context.Background(), s.scope)

	s.Require().NoError(err)
	s.Equal(models.SearchStateInsufficient, snapshot.State)
	s.Contains(snapshot.Result.Notice, "Bengaluru, Karnataka, India")
}

func (s *SearchSessionSuite) TestInvalidScopeLeavesDisplayUntouched() {
	s.insights.EXPECT().Search(gomock.Any(), s.scope).Return(withData(s.scope), nil)
	before, err := s.session.Search(context.Background(), s.scope)
	s.Require().NoError(err)

	snapshot, err := s.session.Search(context.Background(), models.LocationScope{State: "Karnataka"})

	s.ErrorIs(err, models.ErrStateRequiresCountry)
	s.Equal(before, snapshot)
	s.Equal(before, s.session.Snapshot())
}

func (s *SearchSessionSuite) TestFailureClearsPreviousResult() {
	dbErr := errors.New("aggregates unavailable")
	s.insights.EXPECT().Search(gomock.Any(), s.scope).Return(withData(s.scope), nil)
	s.insights.EXPECT().Search(gomock.Any(), s.scope).Return(nil, dbErr)

	_, err := s.session.Search(context.Background(), s.scope)
	s.Require().NoError(err)

	snapshot, err := s.session.Search(context.Background(), s.scope)

	s.ErrorIs(err, dbErr)
	s.Equal(models.SearchStateFailed, snapshot.State)
	s.Nil(snapshot.Result)
	s.Equal(dbErr.Error(), snapshot.Error)
}

func (s *SearchSessionSuite) TestNewerSearchSupersedesInFlightSearch() {
	first := models.LocationScope{Country: "India"}
	started := make(chan struct{})
	s.blockUntilCancelled(first, started)
	s.insights.EXPECT().Search(gomock.Any(), s.scope).Return(withData(s.scope), nil)

	done := make(chan searchOutcome, 1)
	go func() {
		snapshot, err := s.session.Search(context.Background(), first)
		done <- searchOutcome{snapshot: snapshot, err: err}
	}()
	<-started

	latest, err := s.session.Search(context.Background(), s.scope)
	s.Require().NoError(err)

	stale := <-done
	s.ErrorIs(stale.err, ErrSearchSuperseded)

	snapshot := s.session.Snapshot()
	s.Equal(latest, snapshot)
	s.Equal(models.SearchStateWithData, snapshot.State)
	s.Equal(s.scope, *snapshot.Scope)
}

func (s *SearchSessionSuite) TestLateSuccessOfOlderSearchIsDiscarded() {
	first := models.LocationScope{Country: "Germany"}
	started := make(chan struct{})
	release := make(chan struct{})
	s.insights.EXPECT().Search(gomock.Any(), first).DoAndReturn(
		func(_ context.Context, scope models.LocationScope) (*models.CommunityInsights, error) {
			close(started)
			<-release
			return withData(scope), nil
		})
	s.insights.EXPECT().Search(gomock.Any(), s.scope).Return(BuildCommunityInsights(s.scope, nil, nil, "₹"), nil)

	done := make(chan searchOutcome, 1)
	go func() {
		snapshot, err := s.session.Search(context.Background(), first)
		done <- searchOutcome{snapshot: snapshot, err: err}
	}()
	<-started

	_, err := s.session.Search(context.Background(), s.scope)
	s.Require().NoError(err)
	close(release)

	stale := <-done
	s.ErrorIs(stale.err, ErrSearchSuperseded)
	s.Equal(models.SearchStateInsufficient, s.session.Snapshot().State)
	s.Equal("India", s.session.Snapshot().Scope.Country)
}

func (s *SearchSessionSuite) TestResetDiscardsInFlightSearch() {
	started := make(chan struct{})
	s.blockUntilCancelled(s.scope, started)

	done := make(chan searchOutcome, 1)
	go func() {
		snapshot, err := s.session.Search(context.Background(), s.scope)
		done <- searchOutcome{snapshot: snapshot, err: err}
	}()
	<-started

	reset := s.session.Reset()
	s.Equal(models.SearchStateIdle, reset.State)

	stale := <-done
	s.ErrorIs(stale.err, ErrSearchSuperseded)
	s.Equal(models.SearchStateIdle, s.session.Snapshot().State)
	s.Nil(s.session.Snapshot().Scope)
}

func (s *SearchSessionSuite) TestTokensIncrease() {
	s.insights.EXPECT().Search(gomock.Any(), s.scope).Return(withData(s.scope), nil).Times(2)

	first, _ := s.session.Search(context.Background(), s.scope)
	reset := s.session.Reset()
	second, _ := s.session.Search(context.Background(), s.scope)

	s.Less(first.Token, reset.Token)
	s.Less(reset.Token, second.Token)
}

// SearchSessionRegistrySuite covers per-user session bookkeeping
type SearchSessionRegistrySuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	insights *service_mocks.MockCommunityInsightsServiceInterface
	metrics  *service_mocks.MockMetricsRecorderInterface
	registry *SearchSessionRegistry
	clock    *fakeClock
}

func TestSearchSessionRegistrySuite(t *testing.T) {
	suite.Run(t, new(SearchSessionRegistrySuite))
}

func (s *SearchSessionRegistrySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.insights = service_mocks.NewMockCommunityInsightsServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.clock = newFakeClock()
	s.registry = NewSearchSessionRegistry(s.insights, 30*time.Minute, s.metrics)
	s.registry.now = s.clock.Now

	s.metrics.EXPECT().RecordGauge("active_search_sessions", gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *SearchSessionRegistrySuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SearchSessionRegistrySuite) TestSessionsAreIsolatedPerUser() {
	alice, bob := uuid.New(), uuid.New()
	scope := models.LocationScope{Country: "India"}
	s.insights.EXPECT().Search(gomock.Any(), scope).Return(withData(scope), nil)

	_, err := s.registry.Search(context.Background(), alice, scope)
	s.Require().NoError(err)

	s.Equal(models.SearchStateWithData, s.registry.Snapshot(alice).State)
	s.Equal(models.SearchStateIdle, s.registry.Snapshot(bob).State)
	s.Equal(2, s.registry.Len())

	s.Equal(models.SearchStateIdle, s.registry.Reset(alice).State)
}

func (s *SearchSessionRegistrySuite) TestSupersededSearchIsCounted() {
	userID := uuid.New()
	first := models.LocationScope{Country: "Germany"}
	second := models.LocationScope{Country: "India"}
	started := make(chan struct{})

	s.insights.EXPECT().Search(gomock.Any(), first).DoAndReturn(
		func(ctx context.Context, _ models.LocationScope) (*models.CommunityInsights, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})
	s.insights.EXPECT().Search(gomock.Any(), second).Return(withData(second), nil)
	s.metrics.EXPECT().IncrementCounter("community_search_superseded", gomock.Any())

	done := make(chan error, 1)
	go func() {
		_, err := s.registry.Search(context.Background(), userID, first)
		done <- err
	}()
	<-started

	_, err := s.registry.Search(context.Background(), userID, second)
	s.Require().NoError(err)
	s.ErrorIs(<-done, ErrSearchSuperseded)
}

func (s *SearchSessionRegistrySuite) TestPruneDropsIdleSessions() {
	stale, fresh := uuid.New(), uuid.New()

	s.registry.Snapshot(stale)
	s.clock.Advance(10 * time.Minute)
	s.registry.Snapshot(fresh)

	s.clock.Advance(21 * time.Minute)
	s.Equal(1, s.registry.Prune())
	s.Equal(1, s.registry.Len())

	s.clock.Advance(10 * time.Minute)
	s.Equal(1, s.registry.Prune())
	s.Equal(0, s.registry.Len())
}

func (s *SearchSessionRegistrySuite) TestPruneDisabledWithoutTimeout() {
	registry := NewSearchSessionRegistry(s.insights, 0, nil)
	registry.Snapshot(uuid.New())

	s.Equal(0, registry.Prune())
	s.Equal(1, registry.Len())
}

func (s *SearchSessionRegistrySuite) TestRemove() {
	userID := uuid.New()
	s.registry.Snapshot(userID)

	s.registry.Remove(userID)
	s.registry.Remove(uuid.New())

	s.Equal(0, s.registry.Len())
}

func (s *SearchSessionRegistrySuite) TestRunStopsWithContext() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		s.registry.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("Run did not stop after cancellation")
	}
}
