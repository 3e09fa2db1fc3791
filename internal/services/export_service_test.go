package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"celobuddy/internal/models"
	"celobuddy/internal/testutil"
	"celobuddy/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_Opportunities(t *testing.T) {
	env := newTestEnv(t)
	other := testutil.CreateFounder(t, env.db, "other@example.com")

	opp := testutil.CreateOpportunity(t, env.db, other.ID, "funding", time.Now())
	require.NoError(t, env.db.Model(opp).Updates(map[string]any{
		"title":        `Grant, "Round 2"`,
		"requirements": models.StringList{"MVP", "Team of 2"},
	}).Error)

	export := env.svc.ExportService.(*ExportServiceImpl)
	export.now = func() time.Time { return time.Date(2025, time.March, 9, 23, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	name, err := export.Export(context.Background(), env.db, "opportunities", &buf)
	require.NoError(t, err)
	assert.Equal(t, "opportunities_2025-03-09.csv", name)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, opp.ID, records[1][0])
	assert.Equal(t, `Grant, "Round 2"`, records[1][2])
	assert.Equal(t, "MVP; Team of 2", records[1][6])
	assert.Equal(t, "true", records[1][10])
}

func TestExport_AllDatasetsHaveHeaders(t *testing.T) {
	env := newTestEnv(t)

	for _, dataset := range Datasets {
		t.Run(dataset, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := env.svc.ExportService.Export(context.Background(), env.db, dataset, &buf)
			require.NoError(t, err)

			records, err := csv.NewReader(&buf).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, "id", records[0][0])
		})
	}
}

func TestExport_UnknownDataset(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	_, err := env.svc.ExportService.Export(context.Background(), env.db, "users", &buf)
	requireAppError(t, err, apperrors.CodeValidationFailed)
	assert.Zero(t, buf.Len())
}
