package service

import (
	"context"
	"encoding/json"

	"mis/internal/model"
	"mis/internal/repository"

	"github.com/rs/zerolog"
)

type AuditLogResponse struct {
	ID        string `json:"id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entityId"`
	Details   string `json:"details"`
	CreatedAt string `json:"createdAt"`
}

// ChangeEvent is pushed to dashboard clients after a mutation
type ChangeEvent struct {
	Type     string `json:"type"`
	Entity   string `json:"entity"`
	Action   string `json:"action"`
	EntityID string `json:"id,omitempty"`
}

// Notifier fans change events out to connected clients
type Notifier interface {
	Broadcast(v interface{})
}

type AuditService interface {
	// Record appends an audit row and publishes a change event. Failures are
	// logged and never fail the mutation that triggered them.
	Record(ctx context.Context, actor, action, entity, entityID string, details interface{})
	GetAuditLogs(ctx context.Context, entity string, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	repo     repository.AuditRepository
	notifier Notifier
}

// NewAuditService creates a new AuditService instance; notifier may be nil
func NewAuditService(repo repository.AuditRepository, notifier Notifier) AuditService {
	return &auditService{repo: repo, notifier: notifier}
}

func (s *auditService) Record(ctx context.Context, actor, action, entity, entityID string, details interface{}) {
	payload := "{}"
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			payload = string(b)
		}
	}

	entry := &model.AuditLog{
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Details:  payload,
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("entity", entity).
			Str("action", action).
			Msg("failed to write audit log")
	}

	// logins are audited but not broadcast
	if s.notifier != nil && action != model.ActionLogin {
		s.notifier.Broadcast(ChangeEvent{Type: "change", Entity: entity, Action: action, EntityID: entityID})
	}
}

// GetAuditLogs returns newest entries first, optionally narrowed to one entity
func (s *auditService) GetAuditLogs(ctx context.Context, entity string, page, limit int) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.repo.List(ctx, entity, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		actor := l.Actor
		if actor == "" {
			actor = "System"
		}
		res = append(res, AuditLogResponse{
			ID:        l.ID.String(),
			Actor:     actor,
			Action:    l.Action,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			Details:   l.Details,
			CreatedAt: l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
