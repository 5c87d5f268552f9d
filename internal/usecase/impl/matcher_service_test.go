package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// matcherFixtures holds all test dependencies for matcher service tests.
type matcherFixtures struct {
	service       usecase.MatcherUsecase
	matchRepo     *mockRepo.MockMatchRepository
	directoryRepo *mockRepo.MockDirectoryRepository
	deviceRepo    *mockRepo.MockDeviceRepository
	mailSvc       *mockSvc.MockMailService
	publisher     *mockSvc.MockEventPublisher
}

func createTestMatcher(t *testing.T, cfg *config.MatcherConfig) matcherFixtures {
	matchRepo := mockRepo.NewMockMatchRepository(t)
	directoryRepo := mockRepo.NewMockDirectoryRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	mailSvc := mockSvc.NewMockMailService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMatcherService(cfg, matchRepo, directoryRepo, deviceRepo, mailSvc, nil, publisher, logger)
	t.Cleanup(func() { _ = service.Close() })

	return matcherFixtures{
		service:       service,
		matchRepo:     matchRepo,
		directoryRepo: directoryRepo,
		deviceRepo:    deviceRepo,
		mailSvc:       mailSvc,
		publisher:     publisher,
	}
}

func expandingConfig() *config.MatcherConfig {
	return &config.MatcherConfig{
		Mode:            constants.MatcherModeInline,
		InitialRadiusKm: 5,
		IncrementKm:     5,
		MaxRadiusKm:     15,
		Backoff:         time.Millisecond,
		MaxAttempts:     3,
	}
}

func testMatchRequest() *usecase.MatchRequest {
	return &usecase.MatchRequest{
		FoodItemID:  uuid.New(),
		DonorID:     uuid.New(),
		Latitude:    12.9716,
		Longitude:   77.5946,
		FullAddress: "1 MG Road, Bengaluru",
	}
}

func TestMatcherService_RunRound_FirstRadiusNotifiesNearbyNgo(t *testing.T) {
	fx := createTestMatcher(t, expandingConfig())

	ctx := context.Background()
	req := testMatchRequest()

	// An NGO roughly 3km north of the donor. The 7km and 12km NGOs are
	// outside the first 5km radius, so the directory query returns one row.
	near := &entity.NgoCandidate{
		UserID:       uuid.New(),
		Name:         "Shelter A",
		ContactEmail: "shelter-a@example.org",
		Latitude:     12.9986,
		Longitude:    77.5946,
	}

	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, 5000.0).
		Return([]*entity.NgoCandidate{near}, nil)

	fx.matchRepo.EXPECT().
		CreateMatchNotification(ctx, mock.AnythingOfType("*entity.MatchNotification")).
		Run(func(ctx context.Context, match *entity.MatchNotification) {
			assert.Equal(t, req.FoodItemID, match.FoodItemID)
			assert.Equal(t, 5000.0, match.RadiusMeters)
			assert.Equal(t, 0, match.Attempt)
		}).
		Return(nil)

	fx.mailSvc.EXPECT().
		Send(ctx, []string{near.ContactEmail}, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	fx.matchRepo.EXPECT().
		BatchCreateMatchLogs(ctx, mock.AnythingOfType("[]*entity.MatchLog")).
		Run(func(ctx context.Context, logs []*entity.MatchLog) {
			require.Len(t, logs, 1)
			assert.Equal(t, near.UserID, logs[0].NgoID)
			assert.Equal(t, "email", logs[0].Channel)
			assert.Equal(t, "sent", logs[0].Status)
		}).
		Return(nil)

	fx.matchRepo.EXPECT().
		UpdateTotals(ctx, mock.AnythingOfType("uuid.UUID"), 1, 0).
		Return(nil)

	matched, err := fx.service.RunRound(ctx, req, 0)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestMatcherService_RunRound_EmptyRadiusHasNoSideEffects(t *testing.T) {
	fx := createTestMatcher(t, expandingConfig())

	ctx := context.Background()
	req := testMatchRequest()

	// Second attempt re-queries the full cumulative 10km radius.
	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, 10000.0).
		Return([]*entity.NgoCandidate{}, nil)

	matched, err := fx.service.RunRound(ctx, req, 1)
	require.NoError(t, err)
	assert.False(t, matched)
	// Expectation cleanup verifies no match record or mail was produced.
}

func TestMatcherService_RunRound_RadiusCapped(t *testing.T) {
	fx := createTestMatcher(t, expandingConfig())

	ctx := context.Background()
	req := testMatchRequest()

	// 5 + 9*5 would be 50km; the configured maximum caps it at 15km.
	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, 15000.0).
		Return([]*entity.NgoCandidate{}, nil)

	matched, err := fx.service.RunRound(ctx, req, 9)
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestMatcherService_RunRound_DirectoryError(t *testing.T) {
	fx := createTestMatcher(t, expandingConfig())

	ctx := context.Background()
	req := testMatchRequest()

	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, 5000.0).
		Return(nil, errors.New("db down"))

	matched, err := fx.service.RunRound(ctx, req, 0)
	assert.Error(t, err)
	assert.False(t, matched)
}

func TestMatcherService_RunRound_EmailFailureIsPerNgo(t *testing.T) {
	fx := createTestMatcher(t, expandingConfig())

	ctx := context.Background()
	req := testMatchRequest()

	flaky := &entity.NgoCandidate{
		UserID:       uuid.New(),
		Name:         "Shelter A",
		ContactEmail: "down@example.org",
		Latitude:     12.99,
		Longitude:    77.59,
	}
	healthy := &entity.NgoCandidate{
		UserID:       uuid.New(),
		Name:         "Shelter B",
		ContactEmail: "up@example.org",
		Latitude:     12.95,
		Longitude:    77.60,
	}

	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, 5000.0).
		Return([]*entity.NgoCandidate{flaky, healthy}, nil)

	fx.matchRepo.EXPECT().
		CreateMatchNotification(ctx, mock.AnythingOfType("*entity.MatchNotification")).
		Return(nil)

	fx.mailSvc.EXPECT().
		Send(ctx, []string{flaky.ContactEmail}, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("smtp refused"))
	fx.mailSvc.EXPECT().
		Send(ctx, []string{healthy.ContactEmail}, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	fx.matchRepo.EXPECT().
		BatchCreateMatchLogs(ctx, mock.AnythingOfType("[]*entity.MatchLog")).
		Run(func(ctx context.Context, logs []*entity.MatchLog) {
			require.Len(t, logs, 2)
			assert.Equal(t, "failed", logs[0].Status)
			assert.Equal(t, "sent", logs[1].Status)
		}).
		Return(nil)

	fx.matchRepo.EXPECT().
		UpdateTotals(ctx, mock.AnythingOfType("uuid.UUID"), 1, 1).
		Return(nil)

	// One failed address must not abort the round.
	matched, err := fx.service.RunRound(ctx, req, 0)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestMatcherService_Schedule_BoundedByMaxAttempts(t *testing.T) {
	cfg := expandingConfig()
	cfg.MaxAttempts = 2
	fx := createTestMatcher(t, cfg)

	ctx := context.Background()
	req := testMatchRequest()

	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, 5000.0).
		Return([]*entity.NgoCandidate{}, nil).Once()
	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, 10000.0).
		Return([]*entity.NgoCandidate{}, nil).Once()

	// Two attempts, then the search gives up. Cleanup fails the test if a
	// third round runs.
	fx.service.Schedule(ctx, req)
}

func TestMatcherService_Schedule_DirectoryErrorRetriedNextRound(t *testing.T) {
	cfg := expandingConfig()
	cfg.MaxAttempts = 2
	fx := createTestMatcher(t, cfg)

	ctx := context.Background()
	req := testMatchRequest()

	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, 5000.0).
		Return(nil, errors.New("db down")).Once()
	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, 10000.0).
		Return([]*entity.NgoCandidate{}, nil).Once()

	fx.service.Schedule(ctx, req)
}

func TestMatcherService_Schedule_StopsOnceSatisfied(t *testing.T) {
	fx := createTestMatcher(t, expandingConfig())

	ctx := context.Background()
	req := testMatchRequest()

	candidate := &entity.NgoCandidate{
		UserID:       uuid.New(),
		Name:         "Shelter A",
		ContactEmail: "shelter-a@example.org",
	}

	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, 5000.0).
		Return([]*entity.NgoCandidate{candidate}, nil).Once()
	fx.matchRepo.EXPECT().
		CreateMatchNotification(ctx, mock.AnythingOfType("*entity.MatchNotification")).
		Return(nil)
	fx.mailSvc.EXPECT().
		Send(ctx, []string{candidate.ContactEmail}, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)
	fx.matchRepo.EXPECT().
		BatchCreateMatchLogs(ctx, mock.AnythingOfType("[]*entity.MatchLog")).
		Return(nil)
	fx.matchRepo.EXPECT().
		UpdateTotals(ctx, mock.AnythingOfType("uuid.UUID"), 1, 0).
		Return(nil)

	fx.service.Schedule(ctx, req)
}

func TestMatcherService_Dispatch_WorkerModePublishes(t *testing.T) {
	cfg := expandingConfig()
	cfg.Mode = constants.MatcherModeWorker
	fx := createTestMatcher(t, cfg)

	ctx := context.Background()
	req := testMatchRequest()

	fx.publisher.EXPECT().
		PublishMatchEvent(ctx, mock.AnythingOfType("*service.MatchEvent")).
		Run(func(ctx context.Context, event *service.MatchEvent) {
			assert.Equal(t, req.FoodItemID.String(), event.FoodItemID)
			assert.Equal(t, req.DonorID.String(), event.DonorID)
			assert.Equal(t, 0, event.Attempt)
		}).
		Return(nil)

	require.NoError(t, fx.service.Dispatch(ctx, req))
}

func TestMatcherService_Dispatch_WorkerModePublishError(t *testing.T) {
	cfg := expandingConfig()
	cfg.Mode = constants.MatcherModeWorker
	fx := createTestMatcher(t, cfg)

	ctx := context.Background()

	fx.publisher.EXPECT().
		PublishMatchEvent(ctx, mock.AnythingOfType("*service.MatchEvent")).
		Return(errors.New("pubsub unavailable"))

	err := fx.service.Dispatch(ctx, testMatchRequest())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDispatchFailed))
}

func TestMatcherService_Dispatch_InlineModeRunsAsync(t *testing.T) {
	cfg := expandingConfig()
	cfg.MaxAttempts = 1
	fx := createTestMatcher(t, cfg)

	req := testMatchRequest()

	done := make(chan struct{})
	fx.directoryRepo.EXPECT().
		FindNgosWithinRadius(mock.Anything, req.Latitude, req.Longitude, 5000.0).
		Run(func(ctx context.Context, lat, lon, radiusMeters float64) {
			close(done)
		}).
		Return([]*entity.NgoCandidate{}, nil).Once()

	require.NoError(t, fx.service.Dispatch(context.Background(), req))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("inline round did not run")
	}
}
