package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	metersPerKm = 1000.0
)

// Defaults applied when the matcher config block is absent.
const (
	defaultInitialRadiusKm = 5.0
	defaultIncrementKm     = 5.0
	defaultMaxRadiusKm     = 15.0
	defaultBackoff         = 5 * time.Minute
	defaultMaxAttempts     = 3
)

type matcherService struct {
	cfg           *config.MatcherConfig
	matchRepo     repository.MatchRepository
	directoryRepo repository.DirectoryRepository
	deviceRepo    repository.DeviceRepository
	mailSvc       service.MailService
	pushSvc       service.PushService
	publisher     service.EventPublisher
	logger        *slog.Logger

	// rootCtx bounds inline searches to the service lifetime so pending
	// rounds are dropped on shutdown instead of leaking goroutines.
	rootCtx context.Context
	cancel  context.CancelFunc
}

// NewMatcherService creates the NGO proximity matcher. Close must be called
// on shutdown to stop any in-flight inline searches.
func NewMatcherService(
	cfg *config.MatcherConfig,
	matchRepo repository.MatchRepository,
	directoryRepo repository.DirectoryRepository,
	deviceRepo repository.DeviceRepository,
	mailSvc service.MailService,
	pushSvc service.PushService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MatcherUsecase {
	if cfg == nil {
		cfg = &config.MatcherConfig{}
	}
	normalized := *cfg
	if normalized.InitialRadiusKm <= 0 {
		normalized.InitialRadiusKm = defaultInitialRadiusKm
	}
	if normalized.IncrementKm <= 0 {
		normalized.IncrementKm = defaultIncrementKm
	}
	if normalized.MaxRadiusKm <= 0 {
		normalized.MaxRadiusKm = defaultMaxRadiusKm
	}
	if normalized.Backoff <= 0 {
		normalized.Backoff = defaultBackoff
	}
	if normalized.MaxAttempts <= 0 {
		normalized.MaxAttempts = defaultMaxAttempts
	}
	if normalized.Mode == "" {
		normalized.Mode = constants.MatcherModeInline
	}

	rootCtx, cancel := context.WithCancel(context.Background())

	return &matcherService{
		cfg:           &normalized,
		matchRepo:     matchRepo,
		directoryRepo: directoryRepo,
		deviceRepo:    deviceRepo,
		mailSvc:       mailSvc,
		pushSvc:       pushSvc,
		publisher:     publisher,
		logger:        logger,
		rootCtx:       rootCtx,
		cancel:        cancel,
	}
}

// Close stops all in-flight inline searches.
func (s *matcherService) Close() error {
	s.cancel()

	return nil
}

// Dispatch begins a matching search for the request.
func (s *matcherService) Dispatch(ctx context.Context, req *usecase.MatchRequest) error {
	if s.cfg.Mode == constants.MatcherModeWorker {
		event := &service.MatchEvent{
			FoodItemID:  req.FoodItemID.String(),
			DonorID:     req.DonorID.String(),
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			FullAddress: req.FullAddress,
			Attempt:     0,
		}
		if err := s.publisher.PublishMatchEvent(ctx, event); err != nil {
			return domainerrors.ErrDispatchFailed.WrapMessage("failed to publish match event")
		}

		s.logger.Info("Match event published",
			"foodItemID", req.FoodItemID, "donorID", req.DonorID)

		return nil
	}

	// Inline mode: run the search on its own goroutine attached to the
	// service lifetime, not the request. In-flight searches do not survive
	// a process restart.
	go s.Schedule(s.rootCtx, req)

	s.logger.Info("Inline match search scheduled",
		"foodItemID", req.FoodItemID, "donorID", req.DonorID)

	return nil
}

// Schedule runs successive rounds with backoff until one is satisfied or
// the attempt bound is exhausted.
func (s *matcherService) Schedule(ctx context.Context, req *usecase.MatchRequest) {
	for attempt := 0; attempt < s.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				s.logger.Info("Match search stopped",
					"foodItemID", req.FoodItemID, "attempt", attempt)

				return
			case <-time.After(s.cfg.Backoff):
			}
		}

		matched, err := s.RunRound(ctx, req, attempt)
		if err != nil {
			// Directory or dispatch errors are retried on the next attempt.
			s.logger.Error("Match round failed",
				"foodItemID", req.FoodItemID, "attempt", attempt, "error", err)

			continue
		}
		if matched {
			return
		}
	}

	s.logger.Warn("Match search exhausted without candidates",
		"foodItemID", req.FoodItemID, "maxAttempts", s.cfg.MaxAttempts)
}

// RunRound executes a single matching round at the radius for the given attempt.
func (s *matcherService) RunRound(ctx context.Context, req *usecase.MatchRequest, attempt int) (bool, error) {
	radiusMeters := s.radiusForAttempt(attempt)

	// Full re-query every round: the radius is cumulative, so earlier
	// candidates reappear here and are notified with everyone else.
	candidates, err := s.directoryRepo.FindNgosWithinRadius(ctx, req.Latitude, req.Longitude, radiusMeters)
	if err != nil {
		return false, errors.Wrap(err, "failed to query NGO directory")
	}

	if len(candidates) == 0 {
		s.logger.Info("No NGOs within radius",
			"foodItemID", req.FoodItemID, "attempt", attempt, "radiusMeters", radiusMeters)

		return false, nil
	}

	match := &entity.MatchNotification{
		ID:           uuid.New(),
		FoodItemID:   req.FoodItemID,
		DonorID:      req.DonorID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: radiusMeters,
		Attempt:      attempt,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.matchRepo.CreateMatchNotification(ctx, match); err != nil {
		return false, errors.Wrap(err, "failed to create match notification")
	}

	totalSent, totalFailed, logs := s.notifyByEmail(ctx, match, req, candidates)

	pushSent, pushFailed, pushLogs := s.notifyByPush(ctx, match, req, candidates)
	totalSent += pushSent
	totalFailed += pushFailed
	logs = append(logs, pushLogs...)

	if len(logs) > 0 {
		if err := s.matchRepo.BatchCreateMatchLogs(ctx, logs); err != nil {
			// Log bookkeeping must not fail the round.
			s.logger.Error("Failed to create match logs", "matchID", match.ID, "error", err)
		}
	}

	if err := s.matchRepo.UpdateTotals(ctx, match.ID, totalSent, totalFailed); err != nil {
		return false, errors.Wrap(err, "failed to update match totals")
	}

	s.logger.Info("Match round satisfied",
		"foodItemID", req.FoodItemID, "attempt", attempt,
		"candidates", len(candidates), "sent", totalSent, "failed", totalFailed)

	return true, nil
}

// notifyByEmail emails every candidate NGO. A per-NGO failure is logged and
// counted but never aborts the round.
func (s *matcherService) notifyByEmail(
	ctx context.Context,
	match *entity.MatchNotification,
	req *usecase.MatchRequest,
	candidates []*entity.NgoCandidate,
) (sent, failed int, logs []*entity.MatchLog) {
	origin := orb.Point{req.Longitude, req.Latitude}

	for _, candidate := range candidates {
		distanceKm := geo.Distance(origin, orb.Point{candidate.Longitude, candidate.Latitude}) / metersPerKm

		subject := "Surplus food available nearby"
		body := fmt.Sprintf(
			"Hello %s,\n\nA food donor %.1f km away has surplus food available for pickup.\n"+
				"Pickup address: %s\n\n"+
				"Open the app to start a delivery before it expires.\n",
			candidate.Name, distanceKm, req.FullAddress,
		)

		log := &entity.MatchLog{
			ID:      uuid.New(),
			MatchID: match.ID,
			NgoID:   candidate.UserID,
			Channel: "email",
			Status:  "sent",
			SentAt:  time.Now(),
		}

		if err := s.mailSvc.Send(ctx, []string{candidate.ContactEmail}, subject, body); err != nil {
			s.logger.Warn("Failed to email NGO",
				"matchID", match.ID, "ngoID", candidate.UserID, "error", err)
			log.Status = "failed"
			log.ErrorMessage = err.Error()
			failed++
		} else {
			sent++
		}
		logs = append(logs, log)
	}

	return sent, failed, logs
}

// notifyByPush fans the match out to the candidates' registered devices.
// Push is best effort; missing Firebase config or device errors only reduce
// the sent counters.
func (s *matcherService) notifyByPush(
	ctx context.Context,
	match *entity.MatchNotification,
	req *usecase.MatchRequest,
	candidates []*entity.NgoCandidate,
) (sent, failed int, logs []*entity.MatchLog) {
	if s.pushSvc == nil {
		return 0, 0, nil
	}

	userIDs := make([]uuid.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		userIDs = append(userIDs, candidate.UserID)
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, userIDs)
	if err != nil {
		s.logger.Error("Failed to fetch NGO devices", "matchID", match.ID, "error", err)

		return 0, 0, nil
	}
	if len(devices) == 0 {
		return 0, 0, nil
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.NgoDevice)
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	title := "Surplus food available nearby"
	body := "A food donor near you has surplus food available for pickup."
	data := map[string]string{
		"match_id":     match.ID.String(),
		"food_item_id": req.FoodItemID.String(),
		"donor_id":     req.DonorID.String(),
		"latitude":     fmt.Sprintf("%f", req.Latitude),
		"longitude":    fmt.Sprintf("%f", req.Longitude),
	}

	var invalidTokens []string

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := i + firebaseBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[i:end]

		successCount, failureCount, batchInvalid, err := s.pushSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			s.logger.Warn("Push batch failed", "matchID", match.ID, "error", err)
			failed += len(batch)

			continue
		}

		sent += successCount
		failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)

		for _, token := range batch {
			device := deviceMap[token]
			log := &entity.MatchLog{
				ID:      uuid.New(),
				MatchID: match.ID,
				NgoID:   device.UserID,
				Channel: "push",
				Status:  "sent",
				SentAt:  time.Now(),
			}
			for _, invalid := range batchInvalid {
				if token == invalid {
					log.Status = "failed"
					log.ErrorMessage = "invalid or unregistered token"

					break
				}
			}
			logs = append(logs, log)
		}
	}

	// Prune tokens FCM rejected so later rounds stop targeting them.
	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			s.logger.Warn("Failed to deactivate invalid tokens", "matchID", match.ID, "error", err)
		}
	}

	return sent, failed, logs
}

// radiusForAttempt returns the search radius in meters for a zero-based attempt,
// capped at the configured maximum.
func (s *matcherService) radiusForAttempt(attempt int) float64 {
	km := s.cfg.InitialRadiusKm + float64(attempt)*s.cfg.IncrementKm
	if km > s.cfg.MaxRadiusKm {
		km = s.cfg.MaxRadiusKm
	}

	return km * metersPerKm
}
