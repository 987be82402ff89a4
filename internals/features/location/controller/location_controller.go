package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	service "github.com/EkiciFurkan/goldenpages-search/internals/features/location/service"
	helper "github.com/EkiciFurkan/goldenpages-search/internals/helpers"
)

type LocationController struct {
	Geocoder *service.GeocodeClient
}

func NewLocationController(geocoder *service.GeocodeClient) *LocationController {
	return &LocationController{Geocoder: geocoder}
}

// GET /api/location/reverse?lat=&lon=
func (ctl *LocationController) Reverse(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz lat/lon parametresi")
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return helper.JsonError(c, fiber.StatusBadRequest, "lat/lon aralık dışında")
	}

	info, err := ctl.Geocoder.Reverse(lat, lon)
	if err != nil {
		log.Printf("Adres alma hatası: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Adres alınamadı. Lütfen daha sonra tekrar deneyin.")
	}
	return helper.JsonOK(c, "", info)
}
