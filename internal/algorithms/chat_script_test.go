package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatScript(t *testing.T) {
	script := ChatScript()
	require.Len(t, script, 7)

	ids := make([]string, 0, len(script))
	for _, q := range script {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"name", "project", "stage", "category", "description", "github", "needs"}, ids)

	assert.Len(t, script[2].Options, 5)
	assert.Len(t, script[3].Options, 11)
	assert.Equal(t, "Other Web3/Blockchain", script[3].Options[10].Value)
	assert.Len(t, script[6].Options, 7)
	assert.Equal(t, "multiselect", script[6].Type)
}

func TestRenderQuestion(t *testing.T) {
	q := ChatScript()[1]
	assert.Equal(t, "Nice to meet you, Ana! What's the name of your Web3 project?", RenderQuestion(q, "Ana", "CeloPay"))
}
