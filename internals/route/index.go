package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	directoryRoute "github.com/EkiciFurkan/goldenpages-search/internals/features/directory/route"
	locationRoute "github.com/EkiciFurkan/goldenpages-search/internals/features/location/route"
	submissionRoute "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Mounting Submission routes...")
	submissionRoute.SubmissionRoutes(api, db)

	log.Println("[INFO] Mounting Directory routes...")
	directoryRoute.DirectoryRoutes(api, db)

	log.Println("[INFO] Mounting Location routes...")
	locationRoute.LocationRoutes(api)
}
