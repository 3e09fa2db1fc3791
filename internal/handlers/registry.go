package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	HealthHandler      *HealthHandler
	AuthHandler        *AuthHandler
	PublicHandler      *PublicHandler
	ProfileHandler     *ProfileHandler
	OnboardingHandler  *OnboardingHandler
	NeedHandler        *NeedHandler
	FeedHandler        *FeedHandler
	MatchHandler       *MatchHandler
	FeedbackHandler    *FeedbackHandler
	OpportunityHandler *OpportunityHandler
	AdminHandler       *AdminHandler
}
