package validator

import (
	"log"
	"strings"

	"celobuddy/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Перечисления из statuses.go
	mustRegister("company-stage", validateCompanyStage)
	mustRegister("need-category", validateNeedCategory)
	mustRegister("opportunity-category", validateOpportunityCategory)
	mustRegister("opportunity-type", validateOpportunityType)
	mustRegister("urgency", validateUrgency)
	mustRegister("user-role", validateUserRole)
	mustRegister("match-status", validateMatchStatus)
	mustRegister("feedback-type", validateFeedbackType)

	// Ссылки профиля
	mustRegister("github-url", validateGithubURL)
	mustRegister("karmagap-url", validateKarmaGapURL)
}

// Пустые значения пропускаем везде: для них есть 'required'

func validateCompanyStage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.CompanyStage(value).Valid()
}

func validateNeedCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.NeedCategory(value).Valid()
}

func validateOpportunityCategory(fl validator.FieldLevel) bool {
	return oneOfFold(fl.Field().String(), models.OpportunityCategories)
}

func validateOpportunityType(fl validator.FieldLevel) bool {
	return oneOfFold(fl.Field().String(), models.OpportunityTypes)
}

func validateUrgency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.Urgency(value).Valid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch models.UserRole(fl.Field().String()) {
	case "", models.UserRoleUser, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateMatchStatus(fl validator.FieldLevel) bool {
	switch models.MatchStatus(fl.Field().String()) {
	case "", models.MatchStatusPending, models.MatchStatusAccepted, models.MatchStatusRejected:
		return true
	default:
		return false
	}
}

func validateFeedbackType(fl validator.FieldLevel) bool {
	switch models.FeedbackType(fl.Field().String()) {
	case "", models.FeedbackTypePlatform, models.FeedbackTypeMatch:
		return true
	default:
		return false
	}
}

func validateGithubURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || IsGithubURL(value)
}

func validateKarmaGapURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || IsKarmaGapURL(value)
}

// IsGithubURL - единственная проверка формата, которую делал клиент
func IsGithubURL(s string) bool {
	return strings.Contains(s, "github.com")
}

func IsKarmaGapURL(s string) bool {
	return strings.Contains(s, "gap.karmahq.xyz")
}

func oneOfFold(value string, allowed []string) bool {
	if value == "" {
		return true
	}
	for _, a := range allowed {
		if strings.EqualFold(a, value) {
			return true
		}
	}
	return false
}
