package dto

import (
	"celobuddy/internal/algorithms"
	"celobuddy/internal/models"
)

// OnboardingProfileRequest - первый шаг мастера.
// Проверка полей делается ProfileStep.Validate, теги только для формы.
type OnboardingProfileRequest struct {
	FullName     string              `json:"full_name"`
	CompanyName  string              `json:"company_name"`
	CompanyStage models.CompanyStage `json:"company_stage"`
	Industry     string              `json:"industry"`
	Location     string              `json:"location"`
	GithubURL    string              `json:"github_url"`
	KarmaGapURL  string              `json:"karmagap_url"`
	Bio          string              `json:"bio"`
}

func (r *OnboardingProfileRequest) Step() algorithms.ProfileStep {
	return algorithms.ProfileStep{
		FullName:     r.FullName,
		CompanyName:  r.CompanyName,
		CompanyStage: r.CompanyStage,
		Industry:     r.Industry,
		Location:     r.Location,
		GithubURL:    r.GithubURL,
		KarmaGapURL:  r.KarmaGapURL,
		Bio:          r.Bio,
	}
}

// OnboardingNeedsRequest - второй шаг: описание и срочность общие для всех категорий
type OnboardingNeedsRequest struct {
	Categories  []models.NeedCategory `json:"categories"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Urgency     models.Urgency        `json:"urgency"`
}

func (r *OnboardingNeedsRequest) Step() algorithms.NeedsStep {
	return algorithms.NeedsStep{
		Categories:  r.Categories,
		Title:       r.Title,
		Description: r.Description,
		Urgency:     r.Urgency,
	}
}

// OnboardingStateResponse - текущий шаг и то, что уже заполнено
type OnboardingStateResponse struct {
	Step    algorithms.WizardStep `json:"step"`
	Profile *models.Profile       `json:"profile,omitempty"`
	Needs   []models.Need         `json:"needs"`
}
