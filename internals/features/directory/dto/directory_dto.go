package dto

import (
	service "github.com/EkiciFurkan/goldenpages-search/internals/features/directory/service"
)

// DirectoryResponse dizin sayfasının tek seferde ihtiyaç duyduğu her şeyi
// taşır: filtrelenmiş kartlar, sektör listesi ve boş-sonuç ayrımı için
// sayaçlar.
type DirectoryResponse struct {
	Companies       []service.CompanyCard `json:"companies"`
	Sectors         []string              `json:"sectors"`
	Total           int                   `json:"total"`
	Filtered        int                   `json:"filtered"`
	AnyFilterActive bool                  `json:"any_filter_active"`
}
