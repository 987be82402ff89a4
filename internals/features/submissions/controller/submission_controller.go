package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	repository "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/repository"
)

type SubmissionController struct {
	Repo repository.SubmissionRepository
}

func NewSubmissionController(repo repository.SubmissionRepository) *SubmissionController {
	return &SubmissionController{Repo: repo}
}

// GET /api/submissions — aktif kayıtların ham listesi. Sıralama garantisi
// verilmez; tüketici createdAt'e göre kendisi sıralar.
func (ctl *SubmissionController) List(c *fiber.Ctx) error {
	subs, err := ctl.Repo.ListActive(c.UserContext())
	if err != nil {
		log.Printf("Veri çekme hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gönderiler yüklenirken bir hata oluştu.",
		})
	}
	return c.JSON(subs)
}
