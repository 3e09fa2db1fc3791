package services

import (
	"context"

	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"gorm.io/gorm"
)

type NeedService interface {
	ListMine(ctx context.Context, db *gorm.DB, userID string) ([]models.Need, error)
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.NeedRequest) (*models.Need, error)
	Update(ctx context.Context, db *gorm.DB, userID, needID string, req *dto.NeedRequest) (*models.Need, error)
	SetActive(ctx context.Context, db *gorm.DB, userID, needID string, active bool) error
}

type NeedServiceImpl struct {
	needRepo repositories.NeedRepository
}

func NewNeedService(needRepo repositories.NeedRepository) NeedService {
	return &NeedServiceImpl{needRepo: needRepo}
}

func (s *NeedServiceImpl) ListMine(ctx context.Context, db *gorm.DB, userID string) ([]models.Need, error) {
	needs, err := s.needRepo.FindByUser(db, userID, false)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if needs == nil {
		needs = []models.Need{}
	}
	return needs, nil
}

func (s *NeedServiceImpl) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.NeedRequest) (*models.Need, error) {
	need := &models.Need{UserID: userID, IsActive: true}
	applyNeedRequest(need, req)

	if err := s.needRepo.Create(db, need); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return need, nil
}

func (s *NeedServiceImpl) Update(ctx context.Context, db *gorm.DB, userID, needID string, req *dto.NeedRequest) (*models.Need, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	need, err := s.findOwned(tx, userID, needID)
	if err != nil {
		return nil, err
	}
	applyNeedRequest(need, req)

	if err := s.needRepo.Update(tx, need); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return need, nil
}

func (s *NeedServiceImpl) SetActive(ctx context.Context, db *gorm.DB, userID, needID string, active bool) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.findOwned(tx, userID, needID); err != nil {
		return err
	}
	if err := s.needRepo.SetActive(tx, needID, active); err != nil {
		return handleRepoError(err)
	}
	return tx.Commit().Error
}

// findOwned - чужая потребность выглядит как отсутствующая
func (s *NeedServiceImpl) findOwned(db *gorm.DB, userID, needID string) (*models.Need, error) {
	need, err := s.needRepo.FindByID(db, needID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if need.UserID != userID {
		return nil, apperrors.ErrNotFound(repositories.ErrNeedNotFound)
	}
	return need, nil
}

func applyNeedRequest(need *models.Need, req *dto.NeedRequest) {
	need.Title = req.Title
	need.Description = req.Description
	need.Category = req.Category
	need.Urgency = req.Urgency
	need.BudgetRange = req.BudgetRange
	need.Timeline = req.Timeline
	need.SkillsNeeded = models.StringList(req.SkillsNeeded)
}
