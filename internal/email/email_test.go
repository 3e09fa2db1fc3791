package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_Welcome(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	html, err := tm.Render(TemplateWelcome, TemplateData{
		"ProjectName":  "Celo <Pay>",
		"ProjectStage": "mvp",
		"Interests":    []string{"funding", "talent"},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Welcome to CeloBuddy, Celo &lt;Pay&gt;!")
	assert.Contains(t, html, "<li>funding</li>")
	assert.Contains(t, html, "Project stage: mvp")

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestSMTPProvider_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FromEmail = "hello@celobuddy.xyz"
	assert.NoError(t, NewSMTPProvider(cfg, nil).Validate())

	cfg.Port = 0
	assert.Error(t, NewSMTPProvider(cfg, nil).Validate())

	cfg = DefaultConfig()
	assert.Error(t, NewSMTPProvider(cfg, nil).Validate(), "from email is required")
}

func TestSMTPProvider_SendTemplateWithoutRenderer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FromEmail = "hello@celobuddy.xyz"
	err := NewSMTPProvider(cfg, nil).SendTemplate([]string{"a@b.c"}, "hi", TemplateWelcome, nil)
	assert.EqualError(t, err, "template renderer is not configured")
}

func TestNoopProvider_RecordsMessages(t *testing.T) {
	p := NewNoopProvider()
	require.NoError(t, p.SendTemplate([]string{"a@b.c"}, "Welcome", TemplateWelcome, nil))
	sent := p.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"a@b.c"}, sent[0].To)
	assert.Equal(t, "Welcome", sent[0].Subject)
}
