package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/controller"
	repository "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/repository"
	middlewares "github.com/EkiciFurkan/goldenpages-search/internals/middlewares"
)

// SubmissionRoutes webhook intake ve ham listeleme endpointlerini bağlar.
func SubmissionRoutes(api fiber.Router, db *gorm.DB) {
	repo := repository.NewSubmissionRepository(db)
	webhookCtl := controller.NewWebhookController(repo)
	subCtl := controller.NewSubmissionController(repo)

	api.Post("/jotform-webhook", middlewares.WebhookRateLimiter(), webhookCtl.HandleWebhook)
	// POST dışındaki tüm metodlar 405 alır
	api.All("/jotform-webhook", webhookCtl.MethodNotAllowed)

	api.Get("/submissions", subCtl.List)
}
