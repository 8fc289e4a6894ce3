package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mis/internal/model"
	"mis/internal/repository"
	"mis/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

// DTOs for Request validation
type LoginRequest struct {
	// Identifier is a username or an email; Username and Email are accepted as aliases
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password" binding:"required"`
}

func (r LoginRequest) identity() string {
	for _, v := range []string{r.Identifier, r.Username, r.Email} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// SeedAdminRequest provisions the first administrator out-of-band
type SeedAdminRequest struct {
	Username string
	Email    string
	Password string
	Name     string
}

// UserInfo is the compact principal summary used by the dashboard shell
type UserInfo struct {
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Level        string   `json:"level"`
	Capabilities []string `json:"capabilities"`
}

// LoginResult carries the issued token alongside the principal
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserInfo
}

// TokenIssuer signs session tokens
type TokenIssuer interface {
	Issue(principal string) (string, time.Time, error)
}

// UserService defines the interface for business logic related to principals
type UserService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Info(user *model.User) UserInfo
	Profile(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context, params repository.Params) ([]model.User, error)
	UpdateUser(ctx context.Context, actor, username string, fields repository.Fields) error
	SeedAdmin(ctx context.Context, req SeedAdminRequest) (bool, error)
}

type userService struct {
	repo   repository.UserRepository
	tokens TokenIssuer
	audit  AuditService
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository, tokens TokenIssuer, audit AuditService) UserService {
	return &userService{repo: repo, tokens: tokens, audit: audit}
}

func validLevel(level string) bool {
	return level == model.LevelAdmin || level == model.LevelUser
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	identity := req.identity()
	if identity == "" || req.Password == "" {
		return nil, apperror.BadRequest("username or email and password are required")
	}

	// unknown principal and wrong password look the same to the caller
	user, err := s.repo.GetByIdentifier(ctx, identity)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	token, exp, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, apperror.Internal("failed to issue session token", err)
	}

	if s.audit != nil {
		s.audit.Record(ctx, user.Username, model.ActionLogin, repository.EntityUsers, user.Username, nil)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: s.Info(user)}, nil
}

func (s *userService) Info(user *model.User) UserInfo {
	return UserInfo{
		Username:     user.Username,
		Name:         user.Name,
		Level:        user.Level,
		Capabilities: user.Capabilities(),
	}
}

func (s *userService) Profile(ctx context.Context, username string) (*model.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context, params repository.Params) ([]model.User, error) {
	return s.repo.Table().List(ctx, params)
}

// UpdateUser lets an administrator change a principal's profile, level or capabilities.
// The username itself is immutable.
func (s *userService) UpdateUser(ctx context.Context, actor, username string, fields repository.Fields) error {
	if raw, ok := fields["level"]; ok {
		level, _ := raw.(string)
		if !validLevel(level) {
			return apperror.BadRequest(fmt.Sprintf("invalid level: must be %s or %s", model.LevelAdmin, model.LevelUser))
		}
	}
	if raw, ok := fields["email"]; ok {
		email, _ := raw.(string)
		if !strings.Contains(email, "@") {
			return apperror.BadRequest("invalid email format")
		}
	}

	if err := s.repo.Table().Update(ctx, actor, username, fields); err != nil {
		return err
	}
	if s.audit != nil {
		s.audit.Record(ctx, actor, model.ActionUpdate, repository.EntityUsers, username, fields)
	}
	return nil
}

// SeedAdmin inserts an administrator unless the username is already taken.
// It reports whether a row was created.
func (s *userService) SeedAdmin(ctx context.Context, req SeedAdminRequest) (bool, error) {
	if req.Username == "" || req.Password == "" {
		return false, apperror.BadRequest("seed admin needs a username and a password")
	}
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return false, nil
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, apperror.Internal("failed to hash password", err)
	}
	email := req.Email
	if email == "" {
		email = req.Username + "@localhost"
	}
	user := &model.User{
		Username: req.Username,
		Email:    email,
		Password: string(hashed),
		Name:     req.Name,
		Level:    model.LevelAdmin,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return false, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, "", model.ActionCreate, repository.EntityUsers, user.Username, map[string]string{"level": user.Level})
	}
	return true, nil
}
