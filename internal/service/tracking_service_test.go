package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"mis/internal/repository"
	"mis/internal/service"
	"mis/internal/testutil"
	"mis/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// seedSheet builds O1 > A1 > S1 > {R1, R2} and O2 > A2 > S2 > {R3}
func seedSheet(t *testing.T, svc *service.TrackingService) {
	t.Helper()
	ctx := context.Background()
	for _, o := range []string{"O1", "O2"} {
		require.NoError(t, svc.Outputs.Create(ctx, "admin", repository.Fields{"outputId": o, "outputName": "Output " + o}))
	}
	for a, o := range map[string]string{"A1": "O1", "A2": "O2"} {
		require.NoError(t, svc.Activities.Create(ctx, "admin", repository.Fields{"activityId": a, "outputId": o, "activityName": a}))
	}
	for s, a := range map[string]string{"S1": "A1", "S2": "A2"} {
		require.NoError(t, svc.SubActivities.Create(ctx, "admin", repository.Fields{"subActivityId": s, "activityId": a, "subActivityName": s}))
	}
	for r, s := range map[string]string{"R1": "S1", "R2": "S1", "R3": "S2"} {
		require.NoError(t, svc.Rows.Create(ctx, "admin", repository.Fields{
			"subSubActivityId": r,
			"subActivityId":    s,
			"description":      "Row " + r,
			"target":           "10",
			"achieved":         4,
			"budget":           1500.25,
			"province":         "North",
			"startDate":        "2024-02-01",
		}))
	}
}

func TestTrackingListByHierarchy(t *testing.T) {
	f := newFixture(t)
	svc := service.NewTrackingService(f.tables, f.audit)
	seedSheet(t, svc)
	ctx := context.Background()

	rows, err := svc.Rows.List(ctx, repository.Params{"outputId": "O1"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = svc.Rows.List(ctx, repository.Params{"activityId": "A2"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "R3", rows[0].SubSubActivityID)
	assert.Equal(t, 10, rows[0].Target)
	assert.Equal(t, 4, rows[0].Achieved)
}

func TestTrackingUpdateRowTakesIDFromBody(t *testing.T) {
	f := newFixture(t)
	svc := service.NewTrackingService(f.tables, f.audit)
	seedSheet(t, svc)
	ctx := context.Background()

	err := svc.UpdateRow(ctx, "editor", repository.Fields{"subSubActivityId": "R1", "description": "Changed", "status": "Done"})
	require.NoError(t, err)
	row, err := f.tables.TrackingRows.Get(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, "Changed", row.Description)
	assert.Equal(t, "Done", row.Status)
	assert.Equal(t, "editor", row.ModifiedBy)

	err = svc.UpdateRow(ctx, "editor", repository.Fields{"description": "No id"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestTrackingDeleteRows(t *testing.T) {
	f := newFixture(t)
	svc := service.NewTrackingService(f.tables, f.audit)
	seedSheet(t, svc)
	ctx := context.Background()

	_, err := svc.DeleteRows(ctx, "admin", repository.Params{"status": "Done"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	n, err := svc.DeleteRows(ctx, "admin", repository.Params{"id": "R3"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.DeleteRows(ctx, "admin", repository.Params{"id": "R3"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	n, err = svc.DeleteRows(ctx, "admin", repository.Params{"outputId": "O1", "status": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, int64(0), testutil.Count(t, f.db, "tracking_sheet"))

	last := f.events.Events()
	require.NotEmpty(t, last)
	assert.Equal(t, service.ChangeEvent{Type: "change", Entity: repository.EntityTrackingRows, Action: "DELETE"}, last[len(last)-1])
}

func TestTrackingDeleteOutputCascades(t *testing.T) {
	f := newFixture(t)
	svc := service.NewTrackingService(f.tables, f.audit)
	seedSheet(t, svc)

	require.NoError(t, svc.Outputs.Delete(context.Background(), "admin", "O2"))
	assert.Equal(t, int64(1), testutil.Count(t, f.db, "tracking_activities"))
	assert.Equal(t, int64(2), testutil.Count(t, f.db, "tracking_sheet"))
}

func TestTrackingExport(t *testing.T) {
	f := newFixture(t)
	svc := service.NewTrackingService(f.tables, f.audit)
	seedSheet(t, svc)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), repository.Params{"subActivityId": "S1"}, &buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Tracking Sheet")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Sub-Sub-Activity ID", rows[0][0])
	assert.Equal(t, "Remarks", rows[0][len(rows[0])-1])
	assert.Equal(t, "R1", rows[1][0])
	assert.Equal(t, "Row R1", rows[1][2])
	assert.Equal(t, "1500.25", rows[1][7])
	assert.Equal(t, "2024-02-01", rows[1][11])
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "tracking-sheet-2024-07-09.xlsx", service.ExportFileName(time.Date(2024, 7, 9, 15, 0, 0, 0, time.UTC)))
}
