package algorithms

import (
	"testing"

	"celobuddy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from    WizardStep
		event   WizardEvent
		want    WizardStep
		wantErr bool
	}{
		{StepProfile, EventNext, StepNeeds, false},
		{StepNeeds, EventNext, StepComplete, false},
		{StepNeeds, EventBack, StepProfile, false},
		{StepProfile, EventBack, StepProfile, true},
		{StepComplete, EventNext, StepComplete, true},
		{StepComplete, EventBack, StepComplete, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_"+string(tt.event), func(t *testing.T) {
			got, err := Transition(tt.from, tt.event)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func validProfileStep() ProfileStep {
	return ProfileStep{
		FullName:     "Ana Souza",
		CompanyName:  "CeloPay",
		CompanyStage: models.CompanyStageMVP,
		GithubURL:    "https://github.com/celopay/app",
	}
}

func TestProfileStep_Validate(t *testing.T) {
	assert.Empty(t, validProfileStep().Validate())

	tests := []struct {
		name  string
		edit  func(*ProfileStep)
		field string
	}{
		{"missing full name", func(p *ProfileStep) { p.FullName = " " }, "full_name"},
		{"missing company name", func(p *ProfileStep) { p.CompanyName = "" }, "company_name"},
		{"missing stage", func(p *ProfileStep) { p.CompanyStage = "" }, "company_stage"},
		{"unknown stage", func(p *ProfileStep) { p.CompanyStage = "seed" }, "company_stage"},
		{"missing github", func(p *ProfileStep) { p.GithubURL = "" }, "github_url"},
		{"github without github.com", func(p *ProfileStep) { p.GithubURL = "https://gitlab.com/x" }, "github_url"},
		{"bad karmagap", func(p *ProfileStep) { p.KarmaGapURL = "https://karma.xyz/p" }, "karmagap_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := validProfileStep()
			tt.edit(&step)
			errs := step.Validate()
			assert.Contains(t, errs, tt.field)
			assert.Len(t, errs, 1)
		})
	}

	ok := validProfileStep()
	ok.KarmaGapURL = "https://gap.karmahq.xyz/project/celopay"
	assert.Empty(t, ok.Validate())
}

func TestNeedsStep_ValidateAndExpand(t *testing.T) {
	assert.Contains(t, NeedsStep{}.Validate(), "categories")
	assert.Contains(t, NeedsStep{Categories: []models.NeedCategory{"crypto"}}.Validate(), "categories")
	assert.Contains(t, NeedsStep{Categories: []models.NeedCategory{"funding"}, Urgency: "asap"}.Validate(), "urgency")

	step := NeedsStep{
		Categories: []models.NeedCategory{models.NeedCategoryFunding, models.NeedCategoryMentorship, models.NeedCategoryFunding},
		Urgency:    models.UrgencyHigh,
	}
	require.Empty(t, step.Validate())

	needs := step.Expand("user-1")
	require.Len(t, needs, 2)

	assert.Equal(t, "Looking for Funding & Investment", needs[0].Title)
	assert.Equal(t, "I need help with funding for my Web3 startup.", needs[0].Description)
	assert.Equal(t, "Looking for Mentorship & Advice", needs[1].Title)

	for _, n := range needs {
		assert.Equal(t, "user-1", n.UserID)
		assert.Equal(t, models.UrgencyHigh, n.Urgency)
		assert.True(t, n.IsActive)
	}
}

func TestNeedsStep_SharedDescription(t *testing.T) {
	step := NeedsStep{
		Categories:  []models.NeedCategory{models.NeedCategoryTalent, models.NeedCategoryAdvisors},
		Description: "We are building a stablecoin remittance app.",
	}
	needs := step.Expand("u")
	require.Len(t, needs, 2)
	for _, n := range needs {
		assert.Equal(t, "We are building a stablecoin remittance app.", n.Description)
		assert.Equal(t, models.UrgencyMedium, n.Urgency)
	}
}
