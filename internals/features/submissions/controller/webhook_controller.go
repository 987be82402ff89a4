package controller

import (
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	dto "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/dto"
	model "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/model"
	repository "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/repository"
	helper "github.com/EkiciFurkan/goldenpages-search/internals/helpers"
)

// rawRequestPreviewLimit: hata cevabına konan ham içerik önizlemesinin üst
// sınırı. Tam payload asla cevaba yazılmaz.
const rawRequestPreviewLimit = 500

/* ==============================
   Controller
============================== */

type WebhookController struct {
	Repo      repository.SubmissionRepository
	Validator *validator.Validate
}

func NewWebhookController(repo repository.SubmissionRepository) *WebhookController {
	return &WebhookController{
		Repo:      repo,
		Validator: validator.New(),
	}
}

// POST /api/jotform-webhook
func (ctl *WebhookController) HandleWebhook(c *fiber.Ctx) error {
	req, err := dto.ExtractWebhookRequest(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Geçerli her JSON kabul edilir (obje şartı yok); payload alındığı
	// haliyle saklanır
	var parsedRawRequest any
	if err := sonic.Unmarshal([]byte(req.RawRequest), &parsedRawRequest); err != nil {
		log.Printf("rawRequest JSON parse hatası: %v", err)
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest,
			"JotForm 'rawRequest' alanı JSON olarak ayrıştırılamadı.",
			fiber.Map{
				"errorDetails":      err.Error(),
				"rawRequestContent": previewRawRequest(req.RawRequest),
			})
	}

	sub := &model.SubmissionModel{
		SubmissionFormID:   req.FormID,
		SubmissionSourceID: req.SubmissionID,
		SubmissionFormData: datatypes.JSON(req.RawRequest),
		SubmissionDate:     time.Now(),
	}
	if req.SubmissionDate != nil {
		sub.SubmissionDate = *req.SubmissionDate
	}
	if req.FormTitle != "" {
		sub.SubmissionFormTitle = &req.FormTitle
	}
	if req.IP != "" {
		sub.SubmissionIPAddress = &req.IP
	}

	if err := ctl.Repo.Create(c.UserContext(), sub); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubmission) {
			log.Printf("Tekrarlayan gönderim denemesi: %s", req.SubmissionID)
			return helper.JsonError(c, fiber.StatusConflict, "Bu gönderim ID'si zaten kaydedilmiş.")
		}
		log.Printf("JotForm webhook veritabanı hatası: %v", err)
		return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError,
			"Veritabanı hatası oluştu.",
			fiber.Map{"errorDetails": err.Error()})
	}

	log.Printf("JotForm verisi kaydedildi: db_id=%s submission_id=%s", sub.SubmissionID, sub.SubmissionSourceID)

	return helper.JsonOK(c, "Form verisi başarıyla alındı ve kaydedildi", dto.WebhookData{
		DatabaseID:   sub.SubmissionID.String(),
		SubmissionID: sub.SubmissionSourceID,
	})
}

// MethodNotAllowed: webhook endpointine POST dışındaki metodlar
func (ctl *WebhookController) MethodNotAllowed(c *fiber.Ctx) error {
	return helper.JsonError(c, fiber.StatusMethodNotAllowed, "Method Not Allowed")
}

func previewRawRequest(raw string) string {
	runes := []rune(raw)
	if len(runes) > rawRequestPreviewLimit {
		runes = runes[:rawRequestPreviewLimit]
	}
	return string(runes) + "..."
}
