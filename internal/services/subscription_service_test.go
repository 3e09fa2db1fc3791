package services

import (
	"context"
	"testing"

	"celobuddy/internal/email"
	"celobuddy/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscribeRequest(addr string) *dto.SubscribeRequest {
	return &dto.SubscribeRequest{
		Email:        addr,
		Interests:    []string{"Funding", "talent", "funding"},
		ProjectName:  " Celo Pay ",
		ProjectStage: "mvp",
	}
}

func TestSubscription_SubscribeSendsWelcome(t *testing.T) {
	env := newTestEnv(t)

	sub, err := env.svc.SubscriptionService.Subscribe(context.Background(), env.db, subscribeRequest(" Reader@Example.com"))
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.Equal(t, []string{"funding", "talent"}, []string(sub.Interests))
	assert.Equal(t, "Celo Pay", sub.ProjectName)
	assert.True(t, sub.IsActive)

	sent := env.mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"reader@example.com"}, sent[0].To)
	assert.Equal(t, welcomeSubject, sent[0].Subject)
	assert.Equal(t, email.TemplateWelcome, sent[0].Body)
}

type failingProvider struct{ *email.NoopProvider }

func (failingProvider) SendTemplate([]string, string, string, email.TemplateData) error {
	return assert.AnError
}

func TestSubscription_EmailFailureKeepsSubscription(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSubscriptionService(env.svc.Repos.Subscription, failingProvider{email.NewNoopProvider()})

	sub, err := svc.Subscribe(context.Background(), env.db, subscribeRequest("reader@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)

	count, err := env.svc.Repos.Subscription.Count(env.db, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
