package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"celobuddy/internal/models"
)

// WizardStep - шаг онбординга
type WizardStep string

const (
	StepProfile  WizardStep = "profile"
	StepNeeds    WizardStep = "needs"
	StepComplete WizardStep = "complete"
)

type WizardEvent string

const (
	EventNext WizardEvent = "next"
	EventBack WizardEvent = "back"
)

var ErrInvalidTransition = errors.New("invalid onboarding transition")

// Только вперед по одному шагу; Back возможен лишь со второго шага
var wizardTransitions = map[WizardStep]map[WizardEvent]WizardStep{
	StepProfile: {EventNext: StepNeeds},
	StepNeeds:   {EventNext: StepComplete, EventBack: StepProfile},
}

func (s WizardStep) Valid() bool {
	switch s {
	case StepProfile, StepNeeds, StepComplete:
		return true
	}
	return false
}

// Terminal - после complete переходов нет
func (s WizardStep) Terminal() bool {
	return s == StepComplete
}

// Transition возвращает следующий шаг или ErrInvalidTransition
func Transition(from WizardStep, event WizardEvent) (WizardStep, error) {
	next, ok := wizardTransitions[from][event]
	if !ok {
		return from, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, from)
	}
	return next, nil
}

// ============================================================================
// Записи шагов
// ============================================================================

// ProfileStep - данные первого шага
type ProfileStep struct {
	FullName     string
	CompanyName  string
	CompanyStage models.CompanyStage
	Industry     string
	Location     string
	GithubURL    string
	KarmaGapURL  string
	Bio          string
}

// Validate возвращает ошибки по полям; пустая карта значит шаг можно отправить
func (p ProfileStep) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(p.FullName) == "" {
		errs["full_name"] = "This field is required"
	}
	if strings.TrimSpace(p.CompanyName) == "" {
		errs["company_name"] = "This field is required"
	}
	switch {
	case p.CompanyStage == "":
		errs["company_stage"] = "This field is required"
	case !p.CompanyStage.Valid():
		errs["company_stage"] = "Invalid value"
	}
	switch {
	case strings.TrimSpace(p.GithubURL) == "":
		errs["github_url"] = "This field is required"
	case !strings.Contains(p.GithubURL, "github.com"):
		errs["github_url"] = "Please enter a valid GitHub URL"
	}
	if p.KarmaGapURL != "" && !strings.Contains(p.KarmaGapURL, "gap.karmahq.xyz") {
		errs["karmagap_url"] = "Please enter a valid KarmaGap URL"
	}

	return errs
}

// Apply переносит поля шага в профиль
func (p ProfileStep) Apply(profile *models.Profile) {
	profile.FullName = strings.TrimSpace(p.FullName)
	profile.CompanyName = strings.TrimSpace(p.CompanyName)
	profile.CompanyStage = p.CompanyStage
	profile.Industry = p.Industry
	profile.Location = p.Location
	profile.GithubURL = strings.TrimSpace(p.GithubURL)
	profile.KarmaGapURL = strings.TrimSpace(p.KarmaGapURL)
	profile.Bio = p.Bio
}

// NeedsStep - второй шаг: категории и общие для всех описание и срочность
type NeedsStep struct {
	Categories  []models.NeedCategory
	Title       string
	Description string
	Urgency     models.Urgency
}

func (n NeedsStep) Validate() map[string]string {
	errs := make(map[string]string)

	if len(n.Categories) == 0 {
		errs["categories"] = "Select at least one category"
	}
	for _, c := range n.Categories {
		if !c.Valid() {
			errs["categories"] = fmt.Sprintf("Invalid category: %s", c)
			break
		}
	}
	if n.Urgency != "" && !n.Urgency.Valid() {
		errs["urgency"] = "Invalid value"
	}

	return errs
}

// Expand создает по одной потребности на категорию.
// Повторы категорий схлопываются.
func (n NeedsStep) Expand(userID string) []models.Need {
	urgency := n.Urgency
	if urgency == "" {
		urgency = models.UrgencyMedium
	}

	seen := make(map[models.NeedCategory]bool, len(n.Categories))
	needs := make([]models.Need, 0, len(n.Categories))
	for _, category := range n.Categories {
		if seen[category] {
			continue
		}
		seen[category] = true

		title := strings.TrimSpace(n.Title)
		if title == "" {
			title = "Looking for " + category.Label()
		}
		description := strings.TrimSpace(n.Description)
		if description == "" {
			description = fmt.Sprintf("I need help with %s for my Web3 startup.", category)
		}

		needs = append(needs, models.Need{
			UserID:      userID,
			Title:       title,
			Description: description,
			Category:    category,
			Urgency:     urgency,
			IsActive:    true,
		})
	}
	return needs
}
