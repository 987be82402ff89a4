package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/EkiciFurkan/goldenpages-search/internals/configs"
	controller "github.com/EkiciFurkan/goldenpages-search/internals/features/directory/controller"
	service "github.com/EkiciFurkan/goldenpages-search/internals/features/directory/service"
	repository "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/repository"
)

// DirectoryRoutes filtrelenmiş dizin endpointini bağlar.
func DirectoryRoutes(api fiber.Router, db *gorm.DB) {
	repo := repository.NewSubmissionRepository(db)
	normalizer := service.NewNormalizer(configs.JotformBaseURL, configs.DirectoryBaseURL)
	ctl := controller.NewDirectoryController(repo, normalizer)

	api.Get("/directory", ctl.List)
}
