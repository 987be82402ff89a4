package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: submissions
   ========================================================= */

// SubmissionModel, JotForm'dan gelen bir form gönderimini olduğu gibi saklar.
// submission_source_id kaynak servisin kendi gönderim kimliğidir ve benzersizdir;
// mükerrer teslimat yazmayı reddeder, var olan kaydın üzerine yazmaz.
type SubmissionModel struct {
	// PK
	SubmissionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:submission_id" json:"submission_id"`

	// Kaynak kimlikleri
	SubmissionFormID   string `gorm:"type:varchar(64);not null;column:submission_form_id" json:"submission_form_id"`
	SubmissionSourceID string `gorm:"type:varchar(64);not null;uniqueIndex:uq_submissions_source_id;column:submission_source_id" json:"submission_source_id"`

	// Opsiyonel meta
	SubmissionFormTitle *string `gorm:"type:varchar(255);column:submission_form_title" json:"submission_form_title,omitempty"`
	SubmissionIPAddress *string `gorm:"type:varchar(64);column:submission_ip_address" json:"submission_ip_address,omitempty"`

	// Kaynağın bildirdiği gönderim zamanı (yoksa alındığı an)
	SubmissionDate time.Time `gorm:"type:timestamptz;not null;column:submission_date" json:"submission_date"`

	// Dinamik form cevapları, alındığı haliyle
	SubmissionFormData datatypes.JSON `gorm:"type:jsonb;not null;column:submission_form_data" json:"submission_form_data"`

	// Audit & soft delete
	SubmissionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:submission_created_at" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:submission_updated_at" json:"submission_updated_at"`
	SubmissionDeletedAt gorm.DeletedAt `gorm:"column:submission_deleted_at;index" json:"submission_deleted_at,omitempty"`
}

func (SubmissionModel) TableName() string { return "submissions" }
