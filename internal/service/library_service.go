package service

import (
	"context"
	"net/url"
	"strings"

	"mis/internal/model"
	"mis/internal/repository"
	"mis/pkg/apperror"
)

// LibraryService manages metadata-only library entries: documents registered
// without an upload, and external links.
type LibraryService struct {
	Documents *Resource[model.Document]
	Links     *Resource[model.Link]
}

func NewLibraryService(tables *repository.Tables, audit AuditService) *LibraryService {
	return &LibraryService{
		Documents: NewResource(tables.Documents, audit),
		Links:     NewResource(tables.Links, audit),
	}
}

// AddLink validates the URL before inserting
func (s *LibraryService) AddLink(ctx context.Context, actor string, fields repository.Fields) error {
	if raw, ok := fields["url"].(string); ok && strings.TrimSpace(raw) != "" {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return apperror.BadRequest("url must be an absolute http(s) URL")
		}
	}
	return s.Links.Create(ctx, actor, fields)
}

// AddDocument registers a document by metadata; the file path may point at an
// earlier upload or stay empty.
func (s *LibraryService) AddDocument(ctx context.Context, actor string, fields repository.Fields) error {
	if fields == nil {
		fields = repository.Fields{}
	}
	if _, ok := fields["uploadedBy"]; !ok && actor != "" {
		fields["uploadedBy"] = actor
	}
	return s.Documents.Create(ctx, actor, fields)
}
