package service_test

import (
	"context"
	"testing"
	"time"

	"mis/internal/model"
	"mis/internal/repository"
	"mis/internal/service"
	"mis/internal/session"
	"mis/internal/testutil"
	"mis/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, f *fixture) (service.UserService, *session.Issuer) {
	t.Helper()
	issuer := session.NewIssuer("user-secret", time.Hour)
	return service.NewUserService(repository.NewUserRepository(f.db), issuer, f.audit), issuer
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	testutil.SeedUser(t, f.db, model.User{Username: "alice", Email: "alice@example.org", CanAdd: true})
	users, issuer := newUserService(t, f)
	ctx := context.Background()

	res, err := users.Login(ctx, service.LoginRequest{Email: "alice@example.org", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, []string{model.CapAdd}, res.User.Capabilities)

	claims, err := issuer.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Principal())

	_, err = users.Login(ctx, service.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = users.Login(ctx, service.LoginRequest{Identifier: "nobody", Password: "secret"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = users.Login(ctx, service.LoginRequest{Password: "secret"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	// logins are audited but not broadcast
	assert.Empty(t, f.events.Events())
	logs, total, err := f.audit.GetAuditLogs(ctx, repository.EntityUsers, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, model.ActionLogin, logs[0].Action)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	testutil.SeedUser(t, f.db, model.User{Username: "bob"})
	users, _ := newUserService(t, f)
	ctx := context.Background()

	assert.ErrorIs(t, users.UpdateUser(ctx, "admin", "bob", repository.Fields{"level": "root"}), apperror.ErrBadRequest)
	assert.ErrorIs(t, users.UpdateUser(ctx, "admin", "bob", repository.Fields{"email": "nope"}), apperror.ErrBadRequest)
	assert.ErrorIs(t, users.UpdateUser(ctx, "admin", "ghost", repository.Fields{"name": "G"}), apperror.ErrNotFound)

	require.NoError(t, users.UpdateUser(ctx, "admin", "bob", repository.Fields{"canViewReports": true, "region": "South"}))
	bob, err := users.Profile(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, bob.CanViewReports)
	assert.Equal(t, "South", bob.Region)
}

func TestSeedAdmin(t *testing.T) {
	f := newFixture(t)
	users, _ := newUserService(t, f)
	ctx := context.Background()

	created, err := users.SeedAdmin(ctx, service.SeedAdminRequest{Username: "root", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = users.SeedAdmin(ctx, service.SeedAdminRequest{Username: "root", Password: "other"})
	require.NoError(t, err)
	assert.False(t, created)

	res, err := users.Login(ctx, service.LoginRequest{Identifier: "root", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, model.LevelAdmin, res.User.Level)

	_, err = users.SeedAdmin(ctx, service.SeedAdminRequest{Username: "x"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestAuditLogsNameSystemActor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.audit.Record(ctx, "", model.ActionCreate, repository.EntityProjects, "1", nil)
	f.audit.Record(ctx, "alice", model.ActionDelete, repository.EntityLinks, "2", map[string]string{"k": "v"})

	logs, total, err := f.audit.GetAuditLogs(ctx, repository.EntityProjects, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, logs, 1)
	assert.Equal(t, "System", logs[0].Actor)
	assert.Equal(t, "{}", logs[0].Details)

	all, total, err := f.audit.GetAuditLogs(ctx, "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}
