package dto

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

/* ==============================
   Webhook isteği (multipart)
============================== */

// WebhookRequest, JotForm webhook teslimatının multipart alanlarından çıkarılır.
type WebhookRequest struct {
	FormID         string `validate:"required"`
	SubmissionID   string `validate:"required"`
	FormTitle      string
	IP             string
	RawRequest     string `validate:"required"`
	SubmissionDate *time.Time
}

// kaynak bazı kurulumlarda gönderim zamanını bu formatlarla iletir
var submissionDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ExtractWebhookRequest multipart formdan beş adlandırılmış alanı çıkarır.
// Zorunlu alanlardan biri eksikse veya metinsel değilse (yalnızca dosya
// olarak gelmişse) hata döner; opsiyonel alanlar sessizce boş kalır.
func ExtractWebhookRequest(c *fiber.Ctx) (*WebhookRequest, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Multipart form verisi okunamadı")
	}

	req := &WebhookRequest{
		FormID:       textValue(form, "formID"),
		SubmissionID: textValue(form, "submissionID"),
		FormTitle:    textValue(form, "formTitle"),
		IP:           textValue(form, "ip"),
		RawRequest:   textValue(form, "rawRequest"),
	}

	if raw := strings.TrimSpace(textValue(form, "submissionDate")); raw != "" {
		for _, layout := range submissionDateLayouts {
			if t, perr := time.Parse(layout, raw); perr == nil {
				req.SubmissionDate = &t
				break
			}
		}
	}

	return req, nil
}

// textValue sadece metinsel (value) alanları okur; aynı adla gelen dosya
// alanları yok sayılır.
func textValue(form *multipart.Form, key string) string {
	if vals, ok := form.Value[key]; ok && len(vals) > 0 {
		return vals[0]
	}
	return ""
}

/* ==============================
   Cevap gövdeleri
============================== */

// WebhookData başarı cevabındaki data alanıdır.
type WebhookData struct {
	DatabaseID   string `json:"databaseId"`
	SubmissionID string `json:"submissionId"`
}
