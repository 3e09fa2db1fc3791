package auth

import "celobuddy/internal/models"

// Capability - право на действие. Проверяется на сервере
// для каждой привилегированной операции.
type Capability string

const (
	CapFeedRead          Capability = "feed:read"
	CapNeedsWriteSelf    Capability = "needs:write:self"
	CapFeedbackWriteSelf Capability = "feedback:write:self"
	CapOpportunitiesRead Capability = "opportunities:read"

	CapOpportunitiesWrite Capability = "opportunities:write"
	CapAnalyticsRead      Capability = "analytics:read"
	CapDataExport         Capability = "data:export"
)

// PrincipalService - запрос с service key вместо JWT
const PrincipalService = "service"

var capabilities = map[models.UserRole][]Capability{
	models.UserRoleAdmin: {
		CapFeedRead,
		CapNeedsWriteSelf,
		CapFeedbackWriteSelf,
		CapOpportunitiesRead,
		CapOpportunitiesWrite,
		CapAnalyticsRead,
		CapDataExport,
	},
	models.UserRoleUser: {
		CapFeedRead,
		CapNeedsWriteSelf,
		CapFeedbackWriteSelf,
	},
}

// Service key открывает только создание возможностей
var serviceCapabilities = []Capability{CapOpportunitiesWrite}

// Can проверяет, есть ли у роли право
func Can(role models.UserRole, capability Capability) bool {
	return contains(capabilities[role], capability)
}

// ServiceCan - то же для принципала с service key
func ServiceCan(capability Capability) bool {
	return contains(serviceCapabilities, capability)
}

func contains(caps []Capability, capability Capability) bool {
	for _, c := range caps {
		if c == capability {
			return true
		}
	}
	return false
}
