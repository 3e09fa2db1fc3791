package services

import (
	"context"
	"errors"

	"celobuddy/internal/algorithms"
	"celobuddy/internal/logger"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"gorm.io/gorm"
)

// SwipeService - карточный просмотр ленты. Сессия фиксирует список id на момент
// старта, курсор двигается только через compare-and-set.
type SwipeService interface {
	Start(ctx context.Context, db *gorm.DB, founderID string) (*dto.SwipeSessionResponse, error)
	Current(ctx context.Context, db *gorm.DB, founderID, sessionID string) (*dto.SwipeSessionResponse, error)
	Pass(ctx context.Context, db *gorm.DB, founderID, sessionID string, expectedCursor *int) (*dto.SwipeResultResponse, error)
	Interest(ctx context.Context, db *gorm.DB, founderID, sessionID string, expectedCursor *int) (*dto.SwipeResultResponse, error)
}

type SwipeServiceImpl struct {
	sessionRepo     repositories.SwipeSessionRepository
	opportunityRepo repositories.OpportunityRepository
	needRepo        repositories.NeedRepository
	matchRepo       repositories.MatchRepository
	feed            FeedService
}

func NewSwipeService(
	sessionRepo repositories.SwipeSessionRepository,
	opportunityRepo repositories.OpportunityRepository,
	needRepo repositories.NeedRepository,
	matchRepo repositories.MatchRepository,
	feed FeedService,
) SwipeService {
	return &SwipeServiceImpl{
		sessionRepo:     sessionRepo,
		opportunityRepo: opportunityRepo,
		needRepo:        needRepo,
		matchRepo:       matchRepo,
		feed:            feed,
	}
}

func (s *SwipeServiceImpl) Start(ctx context.Context, db *gorm.DB, founderID string) (*dto.SwipeSessionResponse, error) {
	feed := s.feed.ComposeFeed(ctx, db, founderID)

	ids := make(models.StringList, 0, len(feed.Opportunities))
	for _, o := range feed.Opportunities {
		ids = append(ids, o.ID)
	}

	session := &models.SwipeSession{UserID: founderID, OpportunityIDs: ids}
	if err := s.sessionRepo.Create(db, session); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Swipe session started", "session_id", session.ID, "cards", len(ids))

	resp := sessionResponse(session)
	if len(feed.Opportunities) > 0 {
		first := feed.Opportunities[0]
		resp.Current = &first
	}
	return resp, nil
}

func (s *SwipeServiceImpl) Current(ctx context.Context, db *gorm.DB, founderID, sessionID string) (*dto.SwipeSessionResponse, error) {
	session, err := s.findOwned(db, founderID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.withCurrent(ctx, db, session), nil
}

func (s *SwipeServiceImpl) Pass(ctx context.Context, db *gorm.DB, founderID, sessionID string, expectedCursor *int) (*dto.SwipeResultResponse, error) {
	return s.swipe(ctx, db, founderID, sessionID, expectedCursor, algorithms.ActionPass)
}

func (s *SwipeServiceImpl) Interest(ctx context.Context, db *gorm.DB, founderID, sessionID string, expectedCursor *int) (*dto.SwipeResultResponse, error) {
	return s.swipe(ctx, db, founderID, sessionID, expectedCursor, algorithms.ActionInterest)
}

// swipe сначала занимает карточку сдвигом курсора (CAS), затем пишет Match.
// Повторный запрос с тем же курсором получает 409 и второй Match не создает.
func (s *SwipeServiceImpl) swipe(
	ctx context.Context,
	db *gorm.DB,
	founderID, sessionID string,
	expectedCursor *int,
	action algorithms.SwipeAction,
) (*dto.SwipeResultResponse, error) {
	session, err := s.findOwned(db, founderID, sessionID)
	if err != nil {
		return nil, err
	}
	if expectedCursor != nil && *expectedCursor != session.Cursor {
		return nil, apperrors.ErrStaleCursor.WithDetails(map[string]int{
			"expected": *expectedCursor,
			"actual":   session.Cursor,
		})
	}

	state := algorithms.SwipeState{Cursor: session.Cursor, Total: len(session.OpportunityIDs)}
	index, _ := state.Current()

	next, err := state.Apply(action)
	if err != nil {
		if errors.Is(err, algorithms.ErrExhausted) {
			return nil, apperrors.ErrFeedExhausted
		}
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := s.sessionRepo.AdvanceCursor(db, session.ID, state.Cursor, next.Cursor); err != nil {
		return nil, handleRepoError(err)
	}
	session.Cursor = next.Cursor

	result := &dto.SwipeResultResponse{}
	if action == algorithms.ActionInterest {
		result.MatchID = s.recordInterest(ctx, db, founderID, session.OpportunityIDs[index])
	}

	result.Session = *s.withCurrent(ctx, db, session)
	return result, nil
}

// recordInterest - запись Match по возможности best-effort: ошибки в лог, курсор уже сдвинут.
// Возвращает id созданного Match или "".
func (s *SwipeServiceImpl) recordInterest(ctx context.Context, db *gorm.DB, founderID, opportunityID string) string {
	opp, err := s.opportunityRepo.FindByID(db, opportunityID)
	if err != nil {
		logger.CtxWithError(ctx, "Interest: opportunity lookup failed", err, "opportunity_id", opportunityID)
		return ""
	}

	needs, err := s.needRepo.FindByUser(db, founderID, true)
	if err != nil {
		logger.CtxWithError(ctx, "Interest: need lookup failed", err, "opportunity_id", opportunityID)
		return ""
	}

	need, ok := algorithms.PickNeedForCategory(needs, opp.Category)
	if !ok {
		logger.CtxDebug(ctx, "Interest without matching need", "opportunity_id", opportunityID, "category", opp.Category)
		return ""
	}

	match := &models.Match{
		NeedID:        need.ID,
		OpportunityID: opp.ID,
		RequesterID:   founderID,
		ProviderID:    opp.ProviderID,
		Status:        models.MatchStatusPending,
	}
	if err := s.matchRepo.Create(db, match); err != nil {
		logger.CtxWithError(ctx, "Interest: failed to insert match", err,
			"opportunity_id", opp.ID,
			"need_id", need.ID,
		)
		return ""
	}

	logger.CtxInfo(ctx, "Match created", "match_id", match.ID, "opportunity_id", opp.ID, "need_id", need.ID)
	return match.ID
}

func (s *SwipeServiceImpl) findOwned(db *gorm.DB, founderID, sessionID string) (*models.SwipeSession, error) {
	session, err := s.sessionRepo.FindByID(db, sessionID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if session.UserID != founderID {
		return nil, apperrors.ErrNotFound(repositories.ErrSessionNotFound)
	}
	return session, nil
}

// withCurrent подгружает текущую карточку. Удаленная после старта возможность
// отдается как пустая карточка, курсор при этом не меняется.
func (s *SwipeServiceImpl) withCurrent(ctx context.Context, db *gorm.DB, session *models.SwipeSession) *dto.SwipeSessionResponse {
	resp := sessionResponse(session)

	state := algorithms.SwipeState{Cursor: session.Cursor, Total: len(session.OpportunityIDs)}
	index, ok := state.Current()
	if !ok {
		return resp
	}

	opps, err := s.opportunityRepo.FindByIDs(db, []string{session.OpportunityIDs[index]})
	if err != nil {
		logger.CtxWithError(ctx, "Failed to load current card", err, "session_id", session.ID)
		return resp
	}
	if len(opps) == 1 {
		resp.Current = &opps[0]
	}
	return resp
}

func sessionResponse(session *models.SwipeSession) *dto.SwipeSessionResponse {
	state := algorithms.SwipeState{Cursor: session.Cursor, Total: len(session.OpportunityIDs)}
	return &dto.SwipeSessionResponse{
		ID:        session.ID,
		Cursor:    state.Cursor,
		Total:     state.Total,
		Remaining: state.Remaining(),
		Exhausted: state.Exhausted(),
		CreatedAt: session.CreatedAt,
	}
}
