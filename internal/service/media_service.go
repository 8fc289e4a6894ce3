package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"mis/internal/config"
	"mis/internal/model"
	"mis/internal/repository"
	"mis/internal/storage"
	"mis/pkg/apperror"

	"github.com/rs/zerolog"
)

// UploadRequest is the decoded multipart form of an upload endpoint
type UploadRequest struct {
	MainCategory string
	SubCategory  string
	Date         string
	UploadedBy   string
	GroupName    string
	Files        []*multipart.FileHeader
}

// missing lists the blank required form fields
func (r UploadRequest) missing() []string {
	var out []string
	for _, f := range []struct{ key, val string }{
		{"mainCategory", r.MainCategory},
		{"subCategory", r.SubCategory},
		{"date", r.Date},
		{"uploadedBy", r.UploadedBy},
		{"groupName", r.GroupName},
	} {
		if strings.TrimSpace(f.val) == "" {
			out = append(out, f.key)
		}
	}
	return out
}

// FileResult is one manifest entry
type FileResult struct {
	OriginalName string `json:"originalName"`
	FileName     string `json:"fileName,omitempty"`
	FilePath     string `json:"filePath,omitempty"`
	FileSizeKB   int    `json:"fileSizeKB"`
	Error        string `json:"error,omitempty"`
}

// UploadResult is the per-batch manifest
type UploadResult struct {
	Stored int          `json:"stored"`
	Files  []FileResult `json:"files"`
}

// Message summarises the batch for the response envelope
func (r *UploadResult) Message() string {
	if r.Stored == len(r.Files) {
		return fmt.Sprintf("%d file(s) uploaded successfully", r.Stored)
	}
	return fmt.Sprintf("%d of %d file(s) uploaded", r.Stored, len(r.Files))
}

// mediaRecords is implemented by the picture, report and document tables
type mediaRecords interface {
	Create(ctx context.Context, actor string, fields repository.Fields) error
	Delete(ctx context.Context, id string) error
	filePath(ctx context.Context, id string) (string, error)
}

type mediaTable[T interface{ File() model.MediaFile }] struct {
	*repository.Table[T]
}

func (m mediaTable[T]) filePath(ctx context.Context, id string) (string, error) {
	row, err := m.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return (*row).File().FilePath, nil
}

// mediaKind binds an upload kind to its content family, table and record shape
type mediaKind struct {
	name    string
	entity  string
	family  storage.Family
	records mediaRecords
	fields  func(req UploadRequest, s *storage.Stored) repository.Fields
}

// MediaService ingests uploads for pictures, reports and documents
type MediaService struct {
	store  *storage.Store
	tx     repository.TransactionManager
	audit  AuditService
	atomic bool
	kinds  map[string]mediaKind
}

// NewMediaService wires the three upload kinds. batchMode is config.BatchBestEffort or config.BatchAtomic.
func NewMediaService(tables *repository.Tables, store *storage.Store, tx repository.TransactionManager, audit AuditService, batchMode string) *MediaService {
	base := func(req UploadRequest, s *storage.Stored) repository.Fields {
		return repository.Fields{
			"mainCategory": req.MainCategory,
			"subCategory":  req.SubCategory,
			"groupName":    req.GroupName,
			"uploadedBy":   req.UploadedBy,
			"fileName":     s.FileName,
			"originalName": s.OriginalName,
			"filePath":     s.RelPath,
			"fileSizeKB":   s.SizeKB,
			"contentType":  s.ContentType,
		}
	}
	return &MediaService{
		store:  store,
		tx:     tx,
		audit:  audit,
		atomic: batchMode == config.BatchAtomic,
		kinds: map[string]mediaKind{
			storage.KindPictures: {
				name:    storage.KindPictures,
				entity:  repository.EntityPictures,
				family:  storage.Images,
				records: mediaTable[model.Picture]{tables.Pictures},
				fields: func(req UploadRequest, s *storage.Stored) repository.Fields {
					f := base(req, s)
					f["eventDate"] = req.Date
					return f
				},
			},
			storage.KindReports: {
				name:    storage.KindReports,
				entity:  repository.EntityReports,
				family:  storage.Office,
				records: mediaTable[model.Report]{tables.Reports},
				fields: func(req UploadRequest, s *storage.Stored) repository.Fields {
					f := base(req, s)
					f["title"] = s.OriginalName
					f["reportDate"] = req.Date
					return f
				},
			},
			storage.KindDocuments: {
				name:    storage.KindDocuments,
				entity:  repository.EntityDocuments,
				family:  storage.Office,
				records: mediaTable[model.Document]{tables.Documents},
				fields: func(req UploadRequest, s *storage.Stored) repository.Fields {
					f := base(req, s)
					f["title"] = s.OriginalName
					f["documentDate"] = req.Date
					return f
				},
			},
		},
	}
}

func (s *MediaService) kind(name string) (mediaKind, error) {
	k, ok := s.kinds[name]
	if !ok {
		return mediaKind{}, apperror.NotFound("unknown upload kind " + name)
	}
	return k, nil
}

// Upload validates the whole batch, then stores each attachment and inserts its record.
//
// Best-effort batches keep earlier files when a later one fails and report
// per-file errors; the batch fails only when nothing was stored. Atomic batches
// run in one transaction and remove every file they wrote on failure.
// The result is non-nil whenever validation passed, even alongside an error.
func (s *MediaService) Upload(ctx context.Context, kindName, actor string, req UploadRequest) (*UploadResult, error) {
	k, err := s.kind(kindName)
	if err != nil {
		return nil, err
	}
	if missing := req.missing(); len(missing) > 0 {
		return nil, apperror.BadRequest("missing required fields: " + strings.Join(missing, ", "))
	}
	date, ok := repository.ParseDate(req.Date)
	if !ok {
		return nil, apperror.BadRequest("date must be YYYY-MM-DD")
	}
	if err := s.store.Validate(k.family, req.Files); err != nil {
		return nil, err
	}

	placement := storage.Placement{
		MainCategory: req.MainCategory,
		SubCategory:  req.SubCategory,
		GroupName:    req.GroupName,
		Date:         date,
	}
	log := zerolog.Ctx(ctx)
	result := &UploadResult{Files: make([]FileResult, 0, len(req.Files))}
	var written []string

	err = repository.RunMaybeInTx(ctx, s.tx, s.atomic, func(ctx context.Context) error {
		for _, fh := range req.Files {
			entry := FileResult{OriginalName: fh.Filename}

			stored, err := s.store.Save(k.name, placement, fh)
			if err == nil {
				written = append(written, stored.RelPath)
				entry.FileName = stored.FileName
				entry.FilePath = stored.RelPath
				entry.FileSizeKB = stored.SizeKB
				err = k.records.Create(ctx, actor, k.fields(req, stored))
				if err != nil && !s.atomic {
					// the record is the only reference to the file
					_ = s.store.Remove(stored.RelPath)
				}
			}
			if err != nil {
				log.Warn().Err(err).Str("file", fh.Filename).Str("kind", k.name).Msg("upload failed")
				entry.Error = err.Error()
				entry.FileName, entry.FilePath = "", ""
				result.Files = append(result.Files, entry)
				if s.atomic {
					return err
				}
				continue
			}
			result.Stored++
			result.Files = append(result.Files, entry)
		}
		return nil
	})

	if err != nil {
		for _, rel := range written {
			if rmErr := s.store.Remove(rel); rmErr != nil {
				log.Error().Err(rmErr).Str("path", rel).Msg("failed to remove file after rollback")
			}
		}
		result.Stored = 0
		for i := range result.Files {
			f := &result.Files[i]
			f.FileName, f.FilePath = "", ""
			if f.Error == "" {
				f.Error = "rolled back"
			}
		}
		return result, apperror.Internal("upload rolled back", err)
	}
	if result.Stored == 0 {
		return result, apperror.Internal("no file could be stored", nil)
	}

	if s.audit != nil {
		paths := make([]string, 0, result.Stored)
		for _, f := range result.Files {
			if f.Error == "" {
				paths = append(paths, f.FilePath)
			}
		}
		s.audit.Record(ctx, actor, model.ActionUpload, k.entity, "", map[string]interface{}{"files": paths})
	}
	return result, nil
}

// Delete removes the record, then its file. A file that cannot be removed is
// logged; the record deletion still stands.
func (s *MediaService) Delete(ctx context.Context, kindName, actor, id string) error {
	k, err := s.kind(kindName)
	if err != nil {
		return err
	}
	rel, err := k.records.filePath(ctx, id)
	if err != nil {
		return err
	}
	if err := k.records.Delete(ctx, id); err != nil {
		return err
	}
	// only files inside this kind's own tree are ever removed
	if strings.HasPrefix(path.Clean("/"+rel), "/"+k.name+"/") {
		if err := s.store.Remove(rel); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("path", rel).Msg("record deleted but file remains")
		}
	}
	if s.audit != nil {
		s.audit.Record(ctx, actor, model.ActionDelete, k.entity, id, map[string]string{"filePath": rel})
	}
	return nil
}
