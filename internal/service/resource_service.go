package service

import (
	"context"
	"fmt"

	"mis/internal/model"
	"mis/internal/repository"
)

// Resource is the CRUD service shared by every tabular entity: it forwards to
// the entity's Table and records an audit entry after each successful mutation.
type Resource[T any] struct {
	table *repository.Table[T]
	audit AuditService
}

func NewResource[T any](table *repository.Table[T], audit AuditService) *Resource[T] {
	return &Resource[T]{table: table, audit: audit}
}

func (s *Resource[T]) Entity() string {
	return s.table.Schema().Entity
}

func (s *Resource[T]) List(ctx context.Context, params repository.Params) ([]T, error) {
	return s.table.List(ctx, params)
}

func (s *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	return s.table.Get(ctx, id)
}

func (s *Resource[T]) Create(ctx context.Context, actor string, fields repository.Fields) error {
	if err := s.table.Create(ctx, actor, fields); err != nil {
		return err
	}
	s.record(ctx, actor, model.ActionCreate, idOf(fields, s.table.Schema().ID.Key), fields)
	return nil
}

func (s *Resource[T]) Update(ctx context.Context, actor, id string, fields repository.Fields) error {
	if err := s.table.Update(ctx, actor, id, fields); err != nil {
		return err
	}
	s.record(ctx, actor, model.ActionUpdate, id, fields)
	return nil
}

func (s *Resource[T]) Delete(ctx context.Context, actor, id string) error {
	if err := s.table.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, actor, model.ActionDelete, id, nil)
	return nil
}

// DeleteWhere removes every row matching params and returns how many went.
func (s *Resource[T]) DeleteWhere(ctx context.Context, actor string, params repository.Params) (int64, error) {
	n, err := s.table.DeleteWhere(ctx, params)
	if err != nil {
		return 0, err
	}
	s.record(ctx, actor, model.ActionDelete, "", map[string]interface{}{"filters": params, "deleted": n})
	return n, nil
}

func (s *Resource[T]) record(ctx context.Context, actor, action, id string, details interface{}) {
	if s.audit != nil {
		s.audit.Record(ctx, actor, action, s.Entity(), id, details)
	}
}

func idOf(fields repository.Fields, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
