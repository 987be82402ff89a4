package service

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

/* ==============================
   Nominatim reverse geocoding
============================== */

// AddressInfo ters coğrafi kodlama sonucunun dizin filtrelerinde kullanılan
// kısmıdır.
type AddressInfo struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	District    string `json:"district"`
	FullAddress string `json:"full_address"`
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Country        string `json:"country"`
		City           string `json:"city"`
		Town           string `json:"town"`
		Village        string `json:"village"`
		CityDistrict   string `json:"city_district"`
		Suburb         string `json:"suburb"`
		County         string `json:"county"`
		Administrative string `json:"administrative"`
	} `json:"address"`
}

// GeocodeClient Nominatim reverse endpointine giden ince istemcidir.
type GeocodeClient struct {
	BaseURL string
}

func NewGeocodeClient(baseURL string) *GeocodeClient {
	return &GeocodeClient{BaseURL: baseURL}
}

// Reverse koordinatları adrese çevirir. Üst servis erişilemezse veya adres
// bulunamazsa hata döner; çağıran bunu 502 olarak yüzeyler.
func (g *GeocodeClient) Reverse(lat, lon float64) (*AddressInfo, error) {
	url := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%f&lon=%f&accept-language=tr", g.BaseURL, lat, lon)

	agent := fiber.Get(url)
	agent.UserAgent("goldenpages-search/1.0")
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("nominatim isteği başarısız: %v", errs[0])
	}
	if status != fiber.StatusOK {
		return nil, fmt.Errorf("nominatim HTTP %d döndü", status)
	}

	var resp nominatimResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("nominatim cevabı çözülemedi: %w", err)
	}
	if resp.Address.Country == "" && resp.DisplayName == "" {
		return nil, fmt.Errorf("adres bilgisi bulunamadı")
	}

	info := &AddressInfo{
		Country:     resp.Address.Country,
		City:        firstNonEmpty(resp.Address.City, resp.Address.Town, resp.Address.Village),
		District:    firstNonEmpty(resp.Address.CityDistrict, resp.Address.Suburb, resp.Address.County, resp.Address.Administrative),
		FullAddress: resp.DisplayName,
	}
	return info, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
