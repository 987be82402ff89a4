package helper

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reNonWord    = regexp.MustCompile(`[^\w-]+`)
	reHyphen     = regexp.MustCompile(`-+`)

	// Türkçe karakterler NFD ayrıştırmasından önce sabit tabloyla çevrilir
	// (ı/İ diakritik değildir, norm ile düşmez).
	turkishMap = strings.NewReplacer(
		"ç", "c", "Ç", "C",
		"ğ", "g", "Ğ", "G",
		"ı", "i", "İ", "I",
		"ö", "o", "Ö", "O",
		"ş", "s", "Ş", "S",
		"ü", "u", "Ü", "U",
	)
)

// Slugify serbest metni [a-z0-9-] slug'a çevirir. Boş veya "N/A" girdi için
// boş string döner; çağıran boş slug'ı "link yok" olarak ele almalıdır.
func Slugify(text string) string {
	if text == "" || text == "N/A" {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(turkishMap.Replace(text)))
	if s == "" {
		return ""
	}

	// Kalan aksanlı karakterlerden diakritikleri ayıkla (é → e)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reWhitespace.ReplaceAllString(s, "-")
	s = reNonWord.ReplaceAllString(s, "")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
