package repository

import (
	"context"

	"mis/internal/model"

	"gorm.io/gorm"
)

type AuditRepository interface {
	Log(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, entity string, page, limit int) ([]model.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

// List returns newest entries first, optionally narrowed to one entity
func (r *auditRepository) List(ctx context.Context, entity string, page, limit int) ([]model.AuditLog, int64, error) {
	logs := make([]model.AuditLog, 0)
	var total int64

	base := func() *gorm.DB {
		db := GetDB(ctx, r.db).Model(&model.AuditLog{})
		if entity != "" {
			db = db.Where("entity = ?", entity)
		}
		return db
	}
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := base().Order("created_at desc").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
