package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"

	"celobuddy/internal/logger"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/internal/storage"
	"celobuddy/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvatarPolicy - ограничения на загрузку аватара
type AvatarPolicy struct {
	MaxSize      int64
	AllowedTypes []string
}

var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type ProfileService interface {
	GetProfile(ctx context.Context, db *gorm.DB, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
	RequireComplete(ctx context.Context, db *gorm.DB, userID string) (*models.Profile, error)
	UploadAvatar(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.AvatarResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	storage     storage.Storage
	avatar      AvatarPolicy
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	storage storage.Storage,
	avatar AvatarPolicy,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		storage:     storage,
		avatar:      avatar,
	}
}

func (s *ProfileServiceImpl) GetProfile(ctx context.Context, db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(db, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.profileRepo.FindByID(tx, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	applyProfileUpdate(profile, req)

	if err := s.profileRepo.Update(tx, profile); err != nil {
		return nil, handleRepoError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func applyProfileUpdate(p *models.Profile, req *dto.UpdateProfileRequest) {
	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.CompanyName != nil {
		p.CompanyName = *req.CompanyName
	}
	if req.CompanyStage != nil {
		p.CompanyStage = *req.CompanyStage
	}
	if req.Industry != nil {
		p.Industry = *req.Industry
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.GithubURL != nil {
		p.GithubURL = *req.GithubURL
	}
	if req.KarmaGapURL != nil {
		p.KarmaGapURL = *req.KarmaGapURL
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
}

// RequireComplete - нет профиля или не заполнены company_name / company_stage: отправляем на онбординг
func (s *ProfileServiceImpl) RequireComplete(ctx context.Context, db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileIncomplete
		}
		return nil, apperrors.InternalError(err)
	}
	if !profile.IsComplete() {
		return nil, apperrors.ErrProfileIncomplete
	}
	return profile, nil
}

// UploadAvatar сохраняет файл в storage и пишет avatar_url.
// Тип определяется по содержимому, а не по заголовку клиента.
func (s *ProfileServiceImpl) UploadAvatar(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.AvatarResponse, error) {
	if s.avatar.MaxSize > 0 && file.Size > s.avatar.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.maxReadSize()))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if s.avatar.MaxSize > 0 && int64(len(data)) > s.avatar.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, known := avatarExtensions[contentType]
	if !known || (len(s.avatar.AllowedTypes) > 0 && !slices.Contains(s.avatar.AllowedTypes, contentType)) {
		return nil, apperrors.ErrInvalidFileType.WithDetails(map[string]string{"content_type": contentType})
	}

	path := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	if err := s.storage.Save(ctx, path, bytes.NewReader(data), contentType); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("save avatar: %w", err))
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.profileRepo.UpdateAvatar(db, userID, url); err != nil {
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			logger.CtxWithError(ctx, "Failed to remove orphaned avatar", delErr, "path", path)
		}
		return nil, handleRepoError(err)
	}

	logger.CtxInfo(ctx, "Avatar uploaded", "user_id", userID, "path", path)
	return &dto.AvatarResponse{AvatarURL: url}, nil
}

func (s *ProfileServiceImpl) maxReadSize() int64 {
	if s.avatar.MaxSize > 0 {
		return s.avatar.MaxSize + 1
	}
	return 10 << 20
}
