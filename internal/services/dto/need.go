package dto

import "celobuddy/internal/models"

// NeedRequest - форма одиночной потребности (создание и редактирование)
type NeedRequest struct {
	Title        string              `json:"title" validate:"required,max=200"`
	Description  string              `json:"description" validate:"required"`
	Category     models.NeedCategory `json:"category" validate:"required,need-category"`
	Urgency      models.Urgency      `json:"urgency" validate:"required,urgency"`
	BudgetRange  string              `json:"budget_range" validate:"omitempty,max=100"`
	Timeline     string              `json:"timeline" validate:"omitempty,max=100"`
	SkillsNeeded []string            `json:"skills_needed"`
}

// SetActiveRequest - включение/выключение записи
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
