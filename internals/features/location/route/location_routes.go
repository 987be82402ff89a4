package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EkiciFurkan/goldenpages-search/internals/configs"
	controller "github.com/EkiciFurkan/goldenpages-search/internals/features/location/controller"
	service "github.com/EkiciFurkan/goldenpages-search/internals/features/location/service"
)

// LocationRoutes ters coğrafi kodlama endpointini bağlar.
func LocationRoutes(api fiber.Router) {
	geocoder := service.NewGeocodeClient(configs.NominatimBaseURL)
	ctl := controller.NewLocationController(geocoder)

	api.Get("/location/reverse", ctl.Reverse)
}
