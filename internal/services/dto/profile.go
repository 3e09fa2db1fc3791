package dto

import "celobuddy/internal/models"

// UpdateProfileRequest - частичное обновление: пустые поля не трогаются
type UpdateProfileRequest struct {
	FullName     *string              `json:"full_name" validate:"omitempty,max=120"`
	CompanyName  *string              `json:"company_name" validate:"omitempty,max=120"`
	CompanyStage *models.CompanyStage `json:"company_stage" validate:"omitempty,company-stage"`
	Industry     *string              `json:"industry" validate:"omitempty,max=80"`
	Location     *string              `json:"location" validate:"omitempty,max=120"`
	GithubURL    *string              `json:"github_url" validate:"omitempty,github-url"`
	KarmaGapURL  *string              `json:"karmagap_url" validate:"omitempty,karmagap-url"`
	Bio          *string              `json:"bio" validate:"omitempty,max=2000"`
}

// AvatarResponse - куда сохранен аватар
type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}
