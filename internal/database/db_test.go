package database_test

import (
	"strings"
	"testing"

	"mis/internal/model"
	"mis/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func tableDDL(t *testing.T, db *gorm.DB, table string) string {
	t.Helper()
	var ddl string
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&ddl).Error)
	require.NotEmpty(t, ddl, "table %s not migrated", table)
	return strings.ToLower(strings.NewReplacer("`", "", `"`, "", " ", "").Replace(ddl))
}

func TestMigrateTrackingForeignKeysPointAtParents(t *testing.T) {
	db := testutil.NewDB(t)

	assert.NotContains(t, tableDDL(t, db, "tracking_outputs"), "references")

	cases := []struct {
		child, ref string
	}{
		{"tracking_activities", "foreignkey(output_id)referencestracking_outputs(output_id)"},
		{"tracking_sub_activities", "foreignkey(activity_id)referencestracking_activities(activity_id)"},
		{"tracking_sheet", "foreignkey(sub_activity_id)referencestracking_sub_activities(sub_activity_id)"},
	}
	for _, tc := range cases {
		ddl := tableDDL(t, db, tc.child)
		assert.Contains(t, ddl, tc.ref, tc.child)
		assert.Contains(t, ddl, "ondeletecascade", tc.child)
	}
	assert.NotContains(t, tableDDL(t, db, "tracking_activities"), "referencestracking_sub_activities")
	assert.NotContains(t, tableDDL(t, db, "tracking_sub_activities"), "referencestracking_sheet")
}

func TestMigrateTrackingHierarchyStoresAndCascades(t *testing.T) {
	db := testutil.NewDB(t)

	orphan := model.TrackingActivity{ActivityID: "A9", OutputID: "missing", ActivityName: "orphan"}
	assert.Error(t, db.Create(&orphan).Error)

	require.NoError(t, db.Create(&model.TrackingOutput{OutputID: "O1", OutputName: "Output 1"}).Error)
	require.NoError(t, db.Create(&model.TrackingActivity{ActivityID: "A1", OutputID: "O1", ActivityName: "Activity 1"}).Error)
	require.NoError(t, db.Create(&model.TrackingSubActivity{SubActivityID: "S1", ActivityID: "A1", SubActivityName: "Sub 1"}).Error)
	require.NoError(t, db.Create(&model.TrackingRow{SubSubActivityID: "R1", SubActivityID: "S1", Description: "Row 1"}).Error)

	require.NoError(t, db.Where("output_id = ?", "O1").Delete(&model.TrackingOutput{}).Error)

	assert.Zero(t, testutil.Count(t, db, "tracking_activities"))
	assert.Zero(t, testutil.Count(t, db, "tracking_sub_activities"))
	assert.Zero(t, testutil.Count(t, db, "tracking_sheet"))
}
