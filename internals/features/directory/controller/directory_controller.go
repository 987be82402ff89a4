package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	dto "github.com/EkiciFurkan/goldenpages-search/internals/features/directory/dto"
	service "github.com/EkiciFurkan/goldenpages-search/internals/features/directory/service"
	repository "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/repository"
	helper "github.com/EkiciFurkan/goldenpages-search/internals/helpers"
)

/* ==============================
   Controller
============================== */

type DirectoryController struct {
	Repo       repository.SubmissionRepository
	Normalizer *service.Normalizer
}

func NewDirectoryController(repo repository.SubmissionRepository, normalizer *service.Normalizer) *DirectoryController {
	return &DirectoryController{Repo: repo, Normalizer: normalizer}
}

// GET /api/directory?name=&country=&sector=&city=
// Aktif kayıtları normalize eder, en yeniden eskiye sıralar ve dört bağımsız
// filtreyi kesişim olarak uygular.
func (ctl *DirectoryController) List(c *fiber.Ctx) error {
	subs, err := ctl.Repo.ListActive(c.UserContext())
	if err != nil {
		log.Printf("Dizin verisi çekme hatası: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"Gönderiler yüklenirken bir hata oluştu. Lütfen daha sonra tekrar deneyin.")
	}

	cards := make([]service.CompanyCard, 0, len(subs))
	for _, sub := range subs {
		cards = append(cards, ctl.Normalizer.BuildCard(sub))
	}
	service.SortByNewest(cards)

	criteria := service.FilterCriteria{
		Name:    c.Query("name"),
		Country: c.Query("country"),
		Sector:  c.Query("sector"),
		City:    c.Query("city"),
	}
	filtered := service.ApplyFilter(cards, criteria)

	resp := dto.DirectoryResponse{
		Companies:       filtered,
		Sectors:         service.UniqueSectors(cards),
		Total:           len(cards),
		Filtered:        len(filtered),
		AnyFilterActive: criteria.Active(),
	}

	// "hiç kayıt yok" ile "filtreye uyan yok" ayrı mesajlardır
	message := "ok"
	switch {
	case len(cards) == 0 && !resp.AnyFilterActive:
		message = "Henüz kaydedilmiş bir gönderi bulunmamaktadır."
	case len(filtered) == 0 && resp.AnyFilterActive:
		message = "Aradığınız kriterlere uygun firma bulunamadı."
	}

	return helper.JsonOK(c, message, resp)
}
