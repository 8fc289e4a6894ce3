package service_test

import (
	"context"
	"fmt"
	"testing"

	"mis/internal/repository"
	"mis/internal/service"
	"mis/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLifecycle(t *testing.T) {
	f := newFixture(t)
	svc := service.NewProjectService(f.tables, f.audit)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "admin", repository.Fields{
		"projectName":  "Rural water",
		"mainCategory": "WASH",
		"region":       "North",
		"startDate":    "2024-01-01",
		"endDate":      "2024-12-31",
	}))

	projects, err := svc.List(ctx, repository.Params{"region": "North"})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	id := fmt.Sprint(projects[0].ID)

	require.NoError(t, svc.Update(ctx, "admin", id, repository.Fields{"projectName": "Rural water II", "status": "Active"}))
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Rural water II", got.ProjectName)
	assert.Equal(t, "Active", got.Status)

	require.NoError(t, svc.Delete(ctx, "admin", id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	actions := make([]string, 0)
	for _, ev := range f.events.Events() {
		actions = append(actions, ev.Action)
	}
	assert.Equal(t, []string{"CREATE", "UPDATE", "DELETE"}, actions)
}

func TestProjectRejectsInvertedPeriod(t *testing.T) {
	f := newFixture(t)
	svc := service.NewProjectService(f.tables, f.audit)

	err := svc.Create(context.Background(), "admin", repository.Fields{
		"projectName":  "Backwards",
		"mainCategory": "WASH",
		"startDate":    "2024-06-01",
		"endDate":      "2024-01-01",
	})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Empty(t, f.events.Events())
}

func TestAddLinkValidatesURL(t *testing.T) {
	f := newFixture(t)
	library := service.NewLibraryService(f.tables, f.audit)
	ctx := context.Background()

	err := library.AddLink(ctx, "admin", repository.Fields{"title": "Bad", "url": "javascript:alert(1)"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	err = library.AddLink(ctx, "admin", repository.Fields{"title": "No url"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	require.NoError(t, library.AddLink(ctx, "admin", repository.Fields{"title": "Portal", "url": "https://example.org/portal"}))
	links, err := library.Links.List(ctx, repository.Params{"search": "portal"})
	require.NoError(t, err)
	assert.Len(t, links, 1)
}
