package service

import (
	"sort"
	"strings"
)

/* =========================================================
   Dizin filtresi (saf fonksiyonlar)
   ========================================================= */

// FilterCriteria dizin sayfasının dört bağımsız filtre girdisini taşır.
// Boş girdi o filtreyi devre dışı bırakır.
type FilterCriteria struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Sector  string `json:"sector"`
	City    string `json:"city"`
}

// Active: herhangi bir filtre dolu mu. Boş sonuç mesajının hangi varyantının
// gösterileceğini belirler.
func (f FilterCriteria) Active() bool {
	return strings.TrimSpace(f.Name) != "" ||
		strings.TrimSpace(f.Country) != "" ||
		strings.TrimSpace(f.Sector) != "" ||
		strings.TrimSpace(f.City) != ""
}

// ApplyFilter aktif filtrelerin TÜMÜNÜ sağlayan kartları döner (kesişim).
// Ad/sektör/şehir: case-insensitive substring; ülke: case-insensitive tam
// eşleşme. Kart alanı placeholder ise hiçbir aktif filtreyle eşleşmez.
func ApplyFilter(cards []CompanyCard, f FilterCriteria) []CompanyCard {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	country := strings.ToLower(strings.TrimSpace(f.Country))
	sector := strings.ToLower(strings.TrimSpace(f.Sector))
	city := strings.ToLower(strings.TrimSpace(f.City))

	out := make([]CompanyCard, 0, len(cards))
	for _, card := range cards {
		cardName := filterableValue(card.CompanyName)
		cardCountry := filterableValue(strings.TrimSpace(card.Country))
		cardSector := filterableValue(card.Sector)
		cardCity := filterableValue(card.City)

		if name != "" && !strings.Contains(cardName, name) {
			continue
		}
		if country != "" && cardCountry != country {
			continue
		}
		if sector != "" && !strings.Contains(cardSector, sector) {
			continue
		}
		if city != "" && !strings.Contains(cardCity, city) {
			continue
		}
		out = append(out, card)
	}
	return out
}

// filterableValue eşleştirme için normalize eder: placeholder alanlar boş
// sayılır ve aktif hiçbir filtreyle eşleşmez.
func filterableValue(v string) string {
	if v == DefaultFieldValue {
		return ""
	}
	return strings.ToLower(v)
}

// SortByNewest kartları oluşturulma zamanına göre azalan sıralar; zaman
// bilgisi olmayan kayıtlar en sona düşer.
func SortByNewest(cards []CompanyCard) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i].CreatedAt, cards[j].CreatedAt
		if a.IsZero() && b.IsZero() {
			return false
		}
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})
}

// UniqueSectors dizindeki benzersiz sektörleri sıralı döner (kenar çubuğu
// butonları için).
func UniqueSectors(cards []CompanyCard) []string {
	seen := make(map[string]struct{})
	var sectors []string
	for _, card := range cards {
		s := strings.TrimSpace(card.Sector)
		if s == "" || s == DefaultFieldValue {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		sectors = append(sectors, s)
	}
	sort.Slice(sectors, func(i, j int) bool {
		return strings.ToLower(sectors[i]) < strings.ToLower(sectors[j])
	})
	return sectors
}
