package services

import (
	"errors"

	"celobuddy/internal/repositories"
	"celobuddy/pkg/apperrors"

	"gorm.io/gorm"
)

// handleRepoError переводит ошибки репозиториев в AppError.
// Все, что не распознано, становится 500 с сохраненной причиной для логов.
func handleRepoError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, repositories.ErrUserNotFound),
		errors.Is(err, repositories.ErrProfileNotFound),
		errors.Is(err, repositories.ErrNeedNotFound),
		errors.Is(err, repositories.ErrOpportunityNotFound),
		errors.Is(err, repositories.ErrMatchNotFound),
		errors.Is(err, repositories.ErrSessionNotFound):
		return apperrors.ErrNotFound(err)
	case errors.Is(err, repositories.ErrStaleCursor):
		return apperrors.ErrStaleCursor.WithError(err)
	case errors.Is(err, repositories.ErrUserAlreadyExists):
		return apperrors.ErrEmailAlreadyExists.WithError(err)
	}
	return apperrors.InternalError(err)
}
