package service

import (
	"context"

	"mis/internal/model"
	"mis/internal/repository"
	"mis/pkg/apperror"
)

type ProjectService struct {
	*Resource[model.Project]
}

func NewProjectService(tables *repository.Tables, audit AuditService) *ProjectService {
	return &ProjectService{Resource: NewResource(tables.Projects, audit)}
}

func (s *ProjectService) Create(ctx context.Context, actor string, fields repository.Fields) error {
	if err := checkPeriod(fields, "startDate", "endDate"); err != nil {
		return err
	}
	return s.Resource.Create(ctx, actor, fields)
}

func (s *ProjectService) Update(ctx context.Context, actor, id string, fields repository.Fields) error {
	if err := checkPeriod(fields, "startDate", "endDate"); err != nil {
		return err
	}
	return s.Resource.Update(ctx, actor, id, fields)
}

// checkPeriod rejects an end date before the start date when both parse
func checkPeriod(fields repository.Fields, startKey, endKey string) error {
	start, ok1 := fields[startKey].(string)
	end, ok2 := fields[endKey].(string)
	if !ok1 || !ok2 {
		return nil
	}
	s, okS := repository.ParseDate(start)
	e, okE := repository.ParseDate(end)
	if okS && okE && e.Before(s) {
		return apperror.BadRequest(endKey + " must not be before " + startKey)
	}
	return nil
}
