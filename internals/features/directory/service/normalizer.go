package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	model "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/model"
	helper "github.com/EkiciFurkan/goldenpages-search/internals/helpers"
)

/* =========================================================
   Form alan anahtarları (JotForm soru id'leri)
   ========================================================= */

const (
	KeyCompanyName    = "q5_nameOf"
	KeyCountry        = "q21_schreibenSie21"
	KeySector         = "q45_businessSector"
	KeyCity           = "q91_city"
	KeyEmail          = "q16_email16"
	KeyPhone          = "q105_telephone105"
	KeyProfilePicture = "q108_profilePicture108"
	KeyInstagram      = "q31_instagramAdresi"
	KeyTiktok         = "q69_tiktok"
	KeyTwitter        = "q70_twitter70"
	KeyLinkedin       = "q32_linkedinAdresi"
	KeyFacebook       = "q33_facebookAdresi"
	KeyWebsite        = "q48_website"
	KeyGoogleMap      = "q103_googleMap"
)

// DefaultFieldValue: eksik/boş alanlar için görüntü değeri.
const DefaultFieldValue = "N/A"

// Payload, saklanan dinamik form cevaplarının çözülmüş halidir. Tanınmayan
// anahtarlar da burada aynen korunur.
type Payload map[string]any

/* =========================================================
   Alan değeri çıkarımı
   ========================================================= */

// phonePayload: telefon alanının beklenen alt yapısı.
type phonePayload struct {
	Country string `json:"country"`
	Area    string `json:"area"`
	Phone   string `json:"phone"`
}

// FieldValue payload'daki bir alanı görüntü string'ine çevirir.
// Telefon anahtarı {country, area, phone} objesinden "+{cc} ({area}) {phone}"
// üretir; profil resmi anahtarı asla generic stringify'a düşmez (onu
// ProfilePictureURL ele alır). Diğer anahtarlarda string aynen geçer,
// obje/dizi JSON'a çevrilir, kalan non-nil değerler stringlenir.
func FieldValue(p Payload, key, defaultValue string) string {
	if p == nil {
		return defaultValue
	}
	v, ok := p[key]
	if !ok || v == nil {
		return defaultValue
	}

	if s, ok := v.(string); ok {
		return s
	}

	switch key {
	case KeyPhone:
		return formatPhone(v, defaultValue)
	case KeyProfilePicture:
		return defaultValue
	}

	switch v.(type) {
	case map[string]any, []any:
		b, err := sonic.Marshal(v)
		if err != nil {
			return defaultValue
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatPhone(v any, defaultValue string) string {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return defaultValue
	}
	var pp phonePayload
	if err := sonic.Unmarshal(raw, &pp); err != nil {
		return defaultValue
	}
	if pp.Country == "" || pp.Area == "" || pp.Phone == "" {
		return defaultValue
	}

	cc := pp.Country
	if strings.HasPrefix(cc, "00") {
		cc = cc[2:]
	} else if strings.HasPrefix(cc, "0") {
		cc = cc[1:]
	}
	cc = strings.TrimPrefix(cc, "+")

	return fmt.Sprintf("+%s (%s) %s", cc, pp.Area, pp.Phone)
}

/* =========================================================
   Sosyal medya linkleri
   ========================================================= */

// FormatSocialURL bir platform + handle/değer çiftinden kanonik profil URL'i
// üretir. Boş ya da placeholder girdi "#" döner; mutlak URL aynen geçer.
func FormatSocialURL(platform, value string) string {
	if value == "" || strings.TrimSpace(value) == "" || value == DefaultFieldValue {
		return "#"
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	cleaned := strings.TrimSpace(strings.Replace(value, "@", "", 1))
	switch strings.ToLower(platform) {
	case "instagram":
		return "https://instagram.com/" + cleaned
	case "tiktok":
		return "https://www.tiktok.com/@" + cleaned
	case "twitter":
		return "https://twitter.com/" + cleaned
	case "linkedin":
		// handle yerine path verilmişse olduğu gibi kullan
		if strings.Contains(cleaned, "/") {
			return "https://www.linkedin.com/" + cleaned
		}
		return "https://www.linkedin.com/in/" + cleaned
	case "facebook":
		return "https://www.facebook.com/" + cleaned
	default:
		return "https://" + cleaned
	}
}

/* =========================================================
   Normalizer
   ========================================================= */

// widgetUpload: profil resmi alanındaki JSON-encoded upload-widget sonucu.
type widgetUpload struct {
	WidgetMetadata struct {
		Value []struct {
			URL string `json:"url"`
		} `json:"value"`
	} `json:"widget_metadata"`
}

// Normalizer saklanan JSON payload'dan türetilmiş görüntü alanlarını üretir.
// Tüm operasyonlar saf ve idempotenttir.
type Normalizer struct {
	JotformBaseURL   string
	DirectoryBaseURL string
}

func NewNormalizer(jotformBaseURL, directoryBaseURL string) *Normalizer {
	return &Normalizer{
		JotformBaseURL:   jotformBaseURL,
		DirectoryBaseURL: directoryBaseURL,
	}
}

// ProfilePictureURL widget JSON'ından resim URL'ini çıkarır. Parse/şekil
// hatası isteği asla kesmez; sadece loglanır ve "" döner.
func (n *Normalizer) ProfilePictureURL(p Payload, key string) string {
	if p == nil {
		return ""
	}
	v, ok := p[key]
	if !ok {
		return ""
	}
	widgetDataString, ok := v.(string)
	if !ok || strings.TrimSpace(widgetDataString) == "" {
		return ""
	}

	var parsed widgetUpload
	if err := sonic.Unmarshal([]byte(widgetDataString), &parsed); err != nil {
		log.Printf("Profil resmi JSON parse hatası: %v", err)
		return ""
	}
	if len(parsed.WidgetMetadata.Value) == 0 || parsed.WidgetMetadata.Value[0].URL == "" {
		return ""
	}

	imageURL := parsed.WidgetMetadata.Value[0].URL
	if strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
		return imageURL
	}
	return n.JotformBaseURL + imageURL
}

/* =========================================================
   CompanyCard
   ========================================================= */

// CompanyCard bir submission'ın dizin sayfası için normalize edilmiş halidir.
// Kalıcı değildir; saklanan payload'dan isteğe bağlı hesaplanır.
type CompanyCard struct {
	SubmissionID      string    `json:"submission_id"`
	CompanyName       string    `json:"company_name"`
	Sector            string    `json:"sector"`
	City              string    `json:"city"`
	Country           string    `json:"country"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	InstagramURL      string    `json:"instagram_url,omitempty"`
	TiktokURL         string    `json:"tiktok_url,omitempty"`
	TwitterURL        string    `json:"twitter_url,omitempty"`
	LinkedinURL       string    `json:"linkedin_url,omitempty"`
	FacebookURL       string    `json:"facebook_url,omitempty"`
	WebsiteURL        string    `json:"website_url,omitempty"`
	DirectoryURL      string    `json:"directory_url,omitempty"`
	HasSocialMedia    bool      `json:"has_social_media"`
	GoogleMapEmbed    string    `json:"google_map_embed,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// BuildCard bir submission kaydını CompanyCard'a çevirir. Payload çözülemezse
// kart varsayılan değerlerle üretilir (soft-fail).
func (n *Normalizer) BuildCard(sub model.SubmissionModel) CompanyCard {
	var p Payload
	if err := sonic.Unmarshal(sub.SubmissionFormData, &p); err != nil {
		log.Printf("Form payload çözülemedi: id=%s err=%v", sub.SubmissionID, err)
		p = nil
	}

	card := CompanyCard{
		SubmissionID: sub.SubmissionID.String(),
		CompanyName:  FieldValue(p, KeyCompanyName, DefaultFieldValue),
		Sector:       FieldValue(p, KeySector, DefaultFieldValue),
		City:         FieldValue(p, KeyCity, DefaultFieldValue),
		Country:      FieldValue(p, KeyCountry, DefaultFieldValue),
		Email:        FieldValue(p, KeyEmail, DefaultFieldValue),
		Phone:        FieldValue(p, KeyPhone, DefaultFieldValue),
		CreatedAt:    sub.SubmissionCreatedAt,
	}

	card.ProfilePictureURL = n.ProfilePictureURL(p, KeyProfilePicture)

	socials := map[string]*string{
		"instagram": &card.InstagramURL,
		"tiktok":    &card.TiktokURL,
		"twitter":   &card.TwitterURL,
		"linkedin":  &card.LinkedinURL,
		"facebook":  &card.FacebookURL,
	}
	handles := map[string]string{
		"instagram": FieldValue(p, KeyInstagram, DefaultFieldValue),
		"tiktok":    FieldValue(p, KeyTiktok, DefaultFieldValue),
		"twitter":   FieldValue(p, KeyTwitter, DefaultFieldValue),
		"linkedin":  FieldValue(p, KeyLinkedin, DefaultFieldValue),
		"facebook":  FieldValue(p, KeyFacebook, DefaultFieldValue),
	}
	for platform, target := range socials {
		h := handles[platform]
		if h != DefaultFieldValue && strings.TrimSpace(h) != "" {
			*target = FormatSocialURL(platform, h)
			card.HasSocialMedia = true
		}
	}

	// Website alanı doluysa firma slug'ı üzerinden dizin linki üret
	website := FieldValue(p, KeyWebsite, DefaultFieldValue)
	if website != DefaultFieldValue && strings.TrimSpace(website) != "" {
		card.WebsiteURL = "https://" + website
		if slug := helper.Slugify(card.CompanyName); slug != "" {
			card.DirectoryURL = n.DirectoryBaseURL + "/" + slug
		}
	}

	// Sadece iframe embed'leri geçir
	if mapHTML := FieldValue(p, KeyGoogleMap, DefaultFieldValue); mapHTML != DefaultFieldValue &&
		strings.HasPrefix(strings.TrimSpace(mapHTML), "<iframe") {
		card.GoogleMapEmbed = mapHTML
	}

	return card
}
