package integration_test

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"celobuddy/internal/models"
	"celobuddy/internal/services/dto"
	"celobuddy/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOpportunityViaServiceKey(t *testing.T, ts *helpers.TestServer, title, category string) string {
	t.Helper()

	res, body := ts.SendRequestWithHeaders(t, http.MethodPost, "/api/v1/opportunities",
		map[string]string{"X-Service-Key": helpers.ServiceKey},
		map[string]interface{}{
			"title":       title,
			"description": "Imported from partner",
			"category":    category,
			"type":        "grant",
		})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var out struct {
		Data models.Opportunity `json:"data"`
	}
	helpers.DecodeJSON(t, body, &out)
	return out.Data.ID
}

func TestFeed_RequiresCompleteProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.RegisterFounder(t, ts, "fresh@example.com")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/feed", token, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "/onboarding")
}

func TestFeed_FiltersByActiveNeeds(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.OnboardFounder(t, ts, "ada@example.com", models.NeedCategoryFunding)

	createOpportunityViaServiceKey(t, ts, "Seed Grant", "funding")
	createOpportunityViaServiceKey(t, ts, "Hire a dev", "talent")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/feed", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var feed dto.FeedResponse
	helpers.DecodeJSON(t, body, &feed)
	require.Len(t, feed.Opportunities, 1)
	assert.Equal(t, "Seed Grant", feed.Opportunities[0].Title)
	assert.Equal(t, []string{"funding"}, feed.Categories)
}

func TestSwipe_InterestCreatesMatchAndExhausts(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.OnboardFounder(t, ts, "ada@example.com", models.NeedCategoryFunding)

	for i := 0; i < 2; i++ {
		createOpportunityViaServiceKey(t, ts, fmt.Sprintf("Grant %d", i), "funding")
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/feed/sessions", token, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var session dto.SwipeSessionResponse
	helpers.DecodeJSON(t, body, &session)
	require.Equal(t, 2, session.Total)
	require.NotNil(t, session.Current)

	base := "/api/v1/feed/sessions/" + session.ID

	res, body = ts.SendRequest(t, http.MethodPost, base+"/interest", token, map[string]int{"cursor": 0})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var result dto.SwipeResultResponse
	helpers.DecodeJSON(t, body, &result)
	assert.NotEmpty(t, result.MatchID)
	assert.Equal(t, 1, result.Session.Cursor)

	// повторное нажатие с тем же курсором
	res, _ = ts.SendRequest(t, http.MethodPost, base+"/interest", token, map[string]int{"cursor": 0})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// без тела курсор не проверяется
	res, body = ts.SendRequest(t, http.MethodPost, base+"/pass", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeJSON(t, body, &result)
	assert.True(t, result.Session.Exhausted)

	res, body = ts.SendRequest(t, http.MethodPost, base+"/pass", token, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "FEED_EXHAUSTED")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/matches?status=pending", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var matches []dto.MatchSummary
	helpers.DecodeJSON(t, body, &matches)
	assert.Len(t, matches, 1)
}

func TestSwipe_ChunkedBodyCursorIsChecked(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.OnboardFounder(t, ts, "chunk@example.com", models.NeedCategoryFunding)
	for i := 0; i < 3; i++ {
		createOpportunityViaServiceKey(t, ts, fmt.Sprintf("Grant %d", i), "funding")
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/feed/sessions", token, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var session dto.SwipeSessionResponse
	helpers.DecodeJSON(t, body, &session)
	base := ts.Server.URL + "/api/v1/feed/sessions/" + session.ID

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/feed/sessions/"+session.ID+"/pass", token, map[string]int{"cursor": 0})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// MultiReader скрывает длину, клиент уходит в Transfer-Encoding: chunked
	sendChunked := func(payload string) *http.Response {
		req, err := http.NewRequest(http.MethodPost, base+"/pass", io.MultiReader(strings.NewReader(payload)))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("apikey", helpers.AnonKey)
		res, err := ts.Server.Client().Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { res.Body.Close() })
		return res
	}

	res = sendChunked(`{"cursor":0}`)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res = sendChunked(`{"cursor":1}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = sendChunked("")
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestSwipe_ForeignSessionIsNotFound(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner, _ := helpers.OnboardFounder(t, ts, "owner@example.com", models.NeedCategoryFunding)
	stranger, _ := helpers.OnboardFounder(t, ts, "stranger@example.com", models.NeedCategoryFunding)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/feed/sessions", owner, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var session dto.SwipeSessionResponse
	helpers.DecodeJSON(t, body, &session)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/feed/sessions/"+session.ID, stranger, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
