package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	model "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/model"
)

// ErrDuplicateSubmission: aynı submission_source_id ikinci kez teslim edildi.
var ErrDuplicateSubmission = errors.New("submission kaydı zaten mevcut")

/* ==============================
   Repository
============================== */

// SubmissionRepository kalıcılık sınırıdır. Create tek yazma yoludur;
// ListActive soft-delete edilmemiş kayıtları sıralama garantisi olmadan döner.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *model.SubmissionModel) error
	ListActive(ctx context.Context) ([]model.SubmissionModel, error)
}

type gormSubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &gormSubmissionRepository{db: db}
}

func (r *gormSubmissionRepository) Create(ctx context.Context, sub *model.SubmissionModel) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSubmission
		}
		return fmt.Errorf("submission kaydı yazılamadı: %w", err)
	}
	return nil
}

func (r *gormSubmissionRepository) ListActive(ctx context.Context) ([]model.SubmissionModel, error) {
	var subs []model.SubmissionModel
	if err := r.db.WithContext(ctx).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("submission listesi okunamadı: %w", err)
	}
	return subs, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
