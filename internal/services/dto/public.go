package dto

import "celobuddy/internal/models"

// ChatAnswers - ответы разговорного онбординга, как их собрал клиент
type ChatAnswers struct {
	FullName     string   `json:"full_name"`
	CompanyName  string   `json:"company_name"`
	CompanyStage string   `json:"company_stage"`
	Industry     string   `json:"industry"`
	Bio          string   `json:"bio"`
	GithubURL    string   `json:"github_url"`
	Needs        []string `json:"needs" validate:"omitempty,dive,need-category"`
}

// ChatResultsResponse - подборка для страницы результатов
type ChatResultsResponse struct {
	Opportunities []models.Opportunity `json:"opportunities"`
	Categories    []string             `json:"categories"`
}

// SubscribeRequest - подписка на рассылку со страницы результатов
type SubscribeRequest struct {
	Email        string   `json:"email" validate:"required,email"`
	Interests    []string `json:"interests"`
	ProjectName  string   `json:"project_name" validate:"omitempty,max=200"`
	ProjectStage string   `json:"project_stage" validate:"omitempty,max=50"`
}
