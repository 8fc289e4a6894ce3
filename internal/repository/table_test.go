package repository_test

import (
	"context"
	"fmt"
	"testing"

	"mis/internal/model"
	"mis/internal/repository"
	"mis/internal/testutil"
	"mis/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmptyTableReturnsEmptySlice(t *testing.T) {
	tables := repository.NewTables(testutil.NewDB(t))

	rows, err := tables.Outputs.List(context.Background(), repository.Params{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestListOrdersAndFilters(t *testing.T) {
	ctx := context.Background()
	tables := repository.NewTables(testutil.NewDB(t))

	for _, id := range []string{"O3", "O1", "O2"} {
		require.NoError(t, tables.Outputs.Create(ctx, "admin", repository.Fields{
			"outputId":   id,
			"outputName": "Output " + id,
		}))
	}
	require.NoError(t, tables.Activities.Create(ctx, "admin", repository.Fields{
		"activityId": "A1", "outputId": "O1", "activityName": "Water supply",
	}))
	require.NoError(t, tables.Activities.Create(ctx, "admin", repository.Fields{
		"activityId": "A2", "outputId": "O2", "activityName": "Sanitation",
	}))

	outputs, err := tables.Outputs.List(ctx, repository.Params{})
	require.NoError(t, err)
	require.Len(t, outputs, 3)
	assert.Equal(t, []string{"O1", "O2", "O3"}, []string{outputs[0].OutputID, outputs[1].OutputID, outputs[2].OutputID})
	assert.Equal(t, "admin", outputs[0].CreatedBy)

	byParent, err := tables.Activities.List(ctx, repository.Params{"outputId": "O2"})
	require.NoError(t, err)
	require.Len(t, byParent, 1)
	assert.Equal(t, "A2", byParent[0].ActivityID)

	bySearch, err := tables.Activities.List(ctx, repository.Params{"search": "WATER"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "A1", bySearch[0].ActivityID)

	none, err := tables.Activities.List(ctx, repository.Params{"outputId": "O9"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListIsCapped(t *testing.T) {
	ctx := context.Background()
	tables := repository.NewTables(testutil.NewDB(t))

	for i := 0; i < 5; i++ {
		require.NoError(t, tables.Links.Create(ctx, "admin", repository.Fields{
			"title": fmt.Sprintf("Link %d", i),
			"url":   "https://example.org",
		}))
	}
	rows, err := tables.Links.List(ctx, repository.Params{"limit": "2"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	// newest first
	assert.Equal(t, "Link 4", rows[0].Title)

	rows, err = tables.Links.List(ctx, repository.Params{"limit": "garbage"})
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestListSearchMatchesWildcardsLiterally(t *testing.T) {
	ctx := context.Background()
	tables := repository.NewTables(testutil.NewDB(t))

	require.NoError(t, tables.Projects.Create(ctx, "admin", repository.Fields{
		"projectName": "Water supply", "mainCategory": "WASH",
	}))

	for _, term := range []string{"%", "_", "W_ter", "%supply", `\`} {
		rows, err := tables.Projects.List(ctx, repository.Params{"search": term})
		require.NoError(t, err)
		assert.Empty(t, rows, term)
	}

	require.NoError(t, tables.Projects.Create(ctx, "admin", repository.Fields{
		"projectName": "50% co_funded", "mainCategory": "WASH",
	}))
	rows, err := tables.Projects.List(ctx, repository.Params{"search": "50% co_f"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "50% co_funded", rows[0].ProjectName)
}

func TestCreateMissingFieldsLeavesTableUntouched(t *testing.T) {
	db := testutil.NewDB(t)
	tables := repository.NewTables(db)

	err := tables.Projects.Create(context.Background(), "admin", repository.Fields{"donor": "UN", "mainCategory": " "})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Contains(t, err.Error(), "mainCategory")
	assert.Contains(t, err.Error(), "projectName")
	assert.Equal(t, int64(0), testutil.Count(t, db, "projects"))
}

func TestCreateTwiceInsertsTwoRows(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	tables := repository.NewTables(db)

	fields := repository.Fields{"projectName": "Wells", "mainCategory": "WASH", "budget": "1200.50", "startDate": "2024-01-15"}
	require.NoError(t, tables.Projects.Create(ctx, "admin", fields))
	require.NoError(t, tables.Projects.Create(ctx, "admin", fields))
	assert.Equal(t, int64(2), testutil.Count(t, db, "projects"))

	rows, err := tables.Projects.List(ctx, repository.Params{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1200.5", rows[0].Budget.String())
	require.NotNil(t, rows[0].StartDate)
	assert.Equal(t, "2024-01-15", rows[0].StartDate.Format("2006-01-02"))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	tables := repository.NewTables(testutil.NewDB(t))
	require.NoError(t, tables.Outputs.Create(ctx, "admin", repository.Fields{"outputId": "O1", "outputName": "Old"}))

	err := tables.Outputs.Update(ctx, "editor", "O1", repository.Fields{"outputName": "New", "outputId": "O7"})
	require.NoError(t, err)

	row, err := tables.Outputs.Get(ctx, "O1")
	require.NoError(t, err)
	assert.Equal(t, "New", row.OutputName)
	assert.Equal(t, "editor", row.ModifiedBy)
	assert.NotNil(t, row.ModifiedAt)

	err = tables.Outputs.Update(ctx, "editor", "O404", repository.Fields{"outputName": "X"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	err = tables.Outputs.Update(ctx, "editor", "O1", repository.Fields{"description": "no name"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestDeleteTwice(t *testing.T) {
	ctx := context.Background()
	tables := repository.NewTables(testutil.NewDB(t))
	require.NoError(t, tables.Links.Create(ctx, "admin", repository.Fields{"title": "Docs", "url": "https://example.org"}))

	rows, err := tables.Links.List(ctx, repository.Params{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	id := fmt.Sprint(rows[0].ID)

	require.NoError(t, tables.Links.Delete(ctx, id))
	assert.ErrorIs(t, tables.Links.Delete(ctx, id), apperror.ErrNotFound)
	assert.ErrorIs(t, tables.Links.Delete(ctx, "abc"), apperror.ErrBadRequest)
	assert.ErrorIs(t, tables.Links.Delete(ctx, ""), apperror.ErrBadRequest)
}

func TestDeleteWhereRequiresFilter(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	tables := repository.NewTables(db)
	require.NoError(t, tables.Outputs.Create(ctx, "admin", repository.Fields{"outputId": "O1", "outputName": "One"}))
	require.NoError(t, tables.Activities.Create(ctx, "admin", repository.Fields{"activityId": "A1", "outputId": "O1", "activityName": "a"}))
	require.NoError(t, tables.Activities.Create(ctx, "admin", repository.Fields{"activityId": "A2", "outputId": "O1", "activityName": "b"}))

	_, err := tables.Activities.DeleteWhere(ctx, repository.Params{"unknown": "x"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	n, err := tables.Activities.DeleteWhere(ctx, repository.Params{"outputId": "O1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, int64(0), testutil.Count(t, db, "tracking_activities"))
}

func TestUserTableHidesPassword(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedUser(t, db, model.User{Username: "alice", Department: "Finance"})
	repo := repository.NewUserRepository(db)

	users, err := repo.Table().List(context.Background(), repository.Params{"department": "Finance"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)

	u, err := repo.GetByIdentifier(context.Background(), "alice@mis.local")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = repo.GetByUsername(context.Background(), "bob")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCoerce(t *testing.T) {
	assert.Equal(t, 0, repository.Coerce(repository.Int, "n/a"))
	assert.Equal(t, 12, repository.Coerce(repository.Int, "12.7"))
	assert.Equal(t, 0, repository.Coerce(repository.Int, 1e300))
	assert.Equal(t, 0, repository.Coerce(repository.Int, -1e19))
	assert.Equal(t, 0, repository.Coerce(repository.Int, "9e99"))
	assert.Equal(t, -3, repository.Coerce(repository.Int, -3.9))
	assert.Nil(t, repository.Coerce(repository.Date, "not a date"))
	assert.Equal(t, true, repository.Coerce(repository.Bool, "yes"))
	assert.Equal(t, "42", repository.Coerce(repository.Text, float64(42)))
}
