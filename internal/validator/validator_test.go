package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileInput struct {
	FullName     string `json:"full_name" validate:"required"`
	CompanyStage string `json:"company_stage" validate:"required,company-stage"`
	GithubURL    string `json:"github_url" validate:"required,github-url"`
	KarmaGapURL  string `json:"karmagap_url" validate:"omitempty,karmagap-url"`
}

type opportunityInput struct {
	Category string `json:"category" validate:"required,opportunity-category"`
	Type     string `json:"type" validate:"omitempty,opportunity-type"`
}

func TestValidate_UsesJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&profileInput{CompanyStage: "seed", GithubURL: "gitlab.com/x"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["full_name"])
	assert.Equal(t, "Invalid value", vErr.Errors["company_stage"])
	assert.Equal(t, "Must be a GitHub URL (github.com)", vErr.Errors["github_url"])
	assert.NotContains(t, vErr.Errors, "karmagap_url")
}

func TestValidate_KarmaGap(t *testing.T) {
	v := New()

	ok := &profileInput{FullName: "Ana", CompanyStage: "mvp", GithubURL: "https://github.com/ana"}
	assert.NoError(t, v.Validate(ok))

	ok.KarmaGapURL = "https://gap.karmahq.xyz/project/ana"
	assert.NoError(t, v.Validate(ok))

	ok.KarmaGapURL = "https://karma.example.com"
	err := v.Validate(ok)
	require.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "karmagap_url")
}

func TestValidate_OpportunityEnumsAreCaseInsensitive(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&opportunityInput{Category: "Funding", Type: "Grant"}))
	assert.NoError(t, v.Validate(&opportunityInput{Category: "integrations"}))
	assert.Error(t, v.Validate(&opportunityInput{Category: "crypto"}))
}

func TestValidationError_MessageIsStable(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"b": "two", "a": "one"}}
	assert.Equal(t, "Validation failed: field 'a': one; field 'b': two", err.Error())
}
