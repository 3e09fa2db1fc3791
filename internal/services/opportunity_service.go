package services

import (
	"context"
	"strings"

	"celobuddy/internal/logger"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OpportunityService interface {
	List(ctx context.Context, db *gorm.DB, req *dto.OpportunityListRequest, page, pageSize int) (*dto.OpportunityListResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Opportunity, error)
	Create(ctx context.Context, db *gorm.DB, adminID string, req *dto.OpportunityRequest) (*models.Opportunity, error)
	CreatePublic(ctx context.Context, db *gorm.DB, req *dto.OpportunityRequest) (*models.Opportunity, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.OpportunityRequest) (*models.Opportunity, error)
	SetActive(ctx context.Context, db *gorm.DB, id string, active bool) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type OpportunityServiceImpl struct {
	opportunityRepo repositories.OpportunityRepository
	matchRepo       repositories.MatchRepository
}

func NewOpportunityService(
	opportunityRepo repositories.OpportunityRepository,
	matchRepo repositories.MatchRepository,
) OpportunityService {
	return &OpportunityServiceImpl{
		opportunityRepo: opportunityRepo,
		matchRepo:       matchRepo,
	}
}

func (s *OpportunityServiceImpl) List(ctx context.Context, db *gorm.DB, req *dto.OpportunityListRequest, page, pageSize int) (*dto.OpportunityListResponse, error) {
	opps, total, err := s.opportunityRepo.FindWithFilter(db, repositories.OpportunityFilter{
		Category: strings.ToLower(req.Category),
		Type:     strings.ToLower(req.Type),
		IsActive: req.IsActive,
		Search:   req.Search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if opps == nil {
		opps = []models.Opportunity{}
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &dto.OpportunityListResponse{
		Opportunities: opps,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
		TotalPages:    totalPages,
	}, nil
}

func (s *OpportunityServiceImpl) Get(ctx context.Context, db *gorm.DB, id string) (*models.Opportunity, error) {
	opp, err := s.opportunityRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return opp, nil
}

// Create - админская форма: провайдером и автором записывается сам админ
func (s *OpportunityServiceImpl) Create(ctx context.Context, db *gorm.DB, adminID string, req *dto.OpportunityRequest) (*models.Opportunity, error) {
	opp := &models.Opportunity{ProviderID: adminID, CreatedBy: adminID, IsActive: true}
	applyOpportunityRequest(opp, req)

	if err := s.opportunityRepo.Create(db, opp); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "Opportunity created", "opportunity_id", opp.ID, "by", adminID)
	return opp, nil
}

// CreatePublic - POST /opportunities: запись под провайдером-заглушкой
func (s *OpportunityServiceImpl) CreatePublic(ctx context.Context, db *gorm.DB, req *dto.OpportunityRequest) (*models.Opportunity, error) {
	opp := &models.Opportunity{ProviderID: models.PlaceholderProviderID, IsActive: true}
	applyOpportunityRequest(opp, req)

	if err := s.opportunityRepo.Create(db, opp); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "Opportunity created via API", "opportunity_id", opp.ID)
	return opp, nil
}

func (s *OpportunityServiceImpl) Update(ctx context.Context, db *gorm.DB, id string, req *dto.OpportunityRequest) (*models.Opportunity, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	opp, err := s.opportunityRepo.FindByID(tx, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	applyOpportunityRequest(opp, req)

	if err := s.opportunityRepo.Update(tx, opp); err != nil {
		return nil, handleRepoError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return opp, nil
}

func (s *OpportunityServiceImpl) SetActive(ctx context.Context, db *gorm.DB, id string, active bool) error {
	if err := s.opportunityRepo.SetActive(db, id, active); err != nil {
		return handleRepoError(err)
	}
	return nil
}

// Delete отказывает, пока на возможность ссылаются совпадения
func (s *OpportunityServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.opportunityRepo.FindByID(tx, id); err != nil {
		return handleRepoError(err)
	}

	matches, err := s.matchRepo.CountByOpportunity(tx, id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if matches > 0 {
		return apperrors.ErrOpportunityInUse.WithDetails(map[string]int64{"matches": matches})
	}

	if err := s.opportunityRepo.Delete(tx, id); err != nil {
		return handleRepoError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Opportunity deleted", "opportunity_id", id)
	return nil
}

func applyOpportunityRequest(opp *models.Opportunity, req *dto.OpportunityRequest) {
	opp.Title = strings.TrimSpace(req.Title)
	opp.Description = req.Description
	opp.Category = strings.ToLower(req.Category)
	opp.Type = strings.ToLower(req.Type)
	opp.Requirements = models.StringList(req.Requirements)
	opp.Benefits = models.StringList(req.Benefits)
	opp.ApplicationURL = req.ApplicationURL
	opp.SourceURL = req.SourceURL
	opp.Deadline = req.Deadline.Time
	if len(req.ContactInfo) > 0 && string(req.ContactInfo) != "null" {
		opp.ContactInfo = datatypes.JSON(req.ContactInfo)
	} else {
		opp.ContactInfo = nil
	}
	if req.IsActive != nil {
		opp.IsActive = *req.IsActive
	}
}
