package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Success helpers
=================================*/

// JsonOK: generic başarı cevabı
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonCreated: POST sonrası başarı cevabı
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

/* ===============================
   Error helpers
=================================*/

// JsonError: generic hata cevabı
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" && status >= 500 {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonErrorWithDetails: hata + teşhis detayları (webhook cevapları için)
func JsonErrorWithDetails(c *fiber.Ctx, status int, message string, details fiber.Map) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	for k, v := range details {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// ValidationError: validator.v10 alan hatalarını 400 olarak döner
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Geçersiz istek")
	}
	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Eksik veya geçersiz JotForm verisi (formID, submissionID, veya rawRequest eksik/hatalı tip)",
		"errors":  errorsMap,
	})
}
