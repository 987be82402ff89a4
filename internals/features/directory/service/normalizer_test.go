package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/model"
)

func TestFieldValueGeneric(t *testing.T) {
	p := Payload{
		"q5_nameOf":       "Acme Ltd",
		"q91_city":        "Istanbul",
		"numField":        float64(42),
		"objField":        map[string]any{"a": "b"},
		"arrField":        []any{"x", "y"},
		"nilField":        nil,
		KeyProfilePicture: map[string]any{"raw": "stuff"},
	}

	cases := []struct {
		key      string
		def      string
		expected string
	}{
		{"q5_nameOf", "N/A", "Acme Ltd"},
		{"missing", "N/A", "N/A"},
		{"nilField", "N/A", "N/A"},
		{"numField", "N/A", "42"},
		{"objField", "N/A", `{"a":"b"}`},
		{"arrField", "N/A", `["x","y"]`},
		// profil resmi anahtarı generic stringify'a düşmez
		{KeyProfilePicture, "N/A", "N/A"},
	}
	for _, tc := range cases {
		got := FieldValue(p, tc.key, tc.def)
		if got != tc.expected {
			t.Fatalf("FieldValue(%q) expected %q, got %q", tc.key, tc.expected, got)
		}
	}

	if got := FieldValue(nil, "q5_nameOf", "N/A"); got != "N/A" {
		t.Fatalf("nil payload expected N/A, got %q", got)
	}
}

func TestFieldValuePhone(t *testing.T) {
	cases := []struct {
		name     string
		value    any
		expected string
	}{
		{
			name:     "leading 00 stripped",
			value:    map[string]any{"country": "0090", "area": "212", "phone": "1234567"},
			expected: "+90 (212) 1234567",
		},
		{
			name:     "leading single 0 stripped",
			value:    map[string]any{"country": "090", "area": "212", "phone": "1234567"},
			expected: "+90 (212) 1234567",
		},
		{
			name:     "leading plus stripped",
			value:    map[string]any{"country": "+49", "area": "30", "phone": "555000"},
			expected: "+49 (30) 555000",
		},
		{
			name:     "plain country code",
			value:    map[string]any{"country": "44", "area": "20", "phone": "7946000"},
			expected: "+44 (20) 7946000",
		},
		{
			name:     "missing area falls back to default",
			value:    map[string]any{"country": "90", "phone": "1234567"},
			expected: "N/A",
		},
		{
			name:     "missing phone falls back to default",
			value:    map[string]any{"country": "90", "area": "212"},
			expected: "N/A",
		},
		{
			name:     "string passes through unchanged",
			value:    "+90 (212) 1234567",
			expected: "+90 (212) 1234567",
		},
	}
	for _, tc := range cases {
		p := Payload{KeyPhone: tc.value}
		got := FieldValue(p, KeyPhone, "N/A")
		if got != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestFormatSocialURL(t *testing.T) {
	platforms := []string{"instagram", "tiktok", "twitter", "linkedin", "facebook", "unknown"}
	for _, platform := range platforms {
		if got := FormatSocialURL(platform, ""); got != "#" {
			t.Fatalf("FormatSocialURL(%q, \"\") expected #, got %q", platform, got)
		}
		if got := FormatSocialURL(platform, "N/A"); got != "#" {
			t.Fatalf("FormatSocialURL(%q, N/A) expected #, got %q", platform, got)
		}
	}

	cases := []struct {
		platform string
		value    string
		expected string
	}{
		{"instagram", "foo", "https://instagram.com/foo"},
		{"instagram", "@foo", "https://instagram.com/foo"},
		{"tiktok", "@dans", "https://www.tiktok.com/@dans"},
		{"twitter", "acme", "https://twitter.com/acme"},
		{"linkedin", "acme", "https://www.linkedin.com/in/acme"},
		{"linkedin", "company/acme", "https://www.linkedin.com/company/acme"},
		{"facebook", "acmepage", "https://www.facebook.com/acmepage"},
		{"instagram", "https://instagram.com/zaten", "https://instagram.com/zaten"},
		{"unknown", "acme.com", "https://acme.com"},
	}
	for _, tc := range cases {
		got := FormatSocialURL(tc.platform, tc.value)
		if got != tc.expected {
			t.Fatalf("FormatSocialURL(%q, %q) expected %q, got %q", tc.platform, tc.value, tc.expected, got)
		}
	}
}

func TestProfilePictureURL(t *testing.T) {
	n := NewNormalizer("https://www.jotform.com", "https://goldenpages.io")

	cases := []struct {
		name     string
		value    any
		expected string
	}{
		{
			name:     "relative url gets base prefix",
			value:    `{"widget_metadata":{"value":[{"url":"/uploads/pic.png"}]}}`,
			expected: "https://www.jotform.com/uploads/pic.png",
		},
		{
			name:     "absolute url passes through",
			value:    `{"widget_metadata":{"value":[{"url":"https://cdn.example.com/pic.png"}]}}`,
			expected: "https://cdn.example.com/pic.png",
		},
		{
			name:     "broken json fails soft",
			value:    `{not json`,
			expected: "",
		},
		{
			name:     "empty value array fails soft",
			value:    `{"widget_metadata":{"value":[]}}`,
			expected: "",
		},
		{
			name:     "missing metadata fails soft",
			value:    `{"something":"else"}`,
			expected: "",
		},
		{
			name:     "non-string value fails soft",
			value:    map[string]any{"url": "/x.png"},
			expected: "",
		},
		{
			name:     "blank string fails soft",
			value:    "   ",
			expected: "",
		},
	}
	for _, tc := range cases {
		p := Payload{KeyProfilePicture: tc.value}
		got := n.ProfilePictureURL(p, KeyProfilePicture)
		if got != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}

	if got := n.ProfilePictureURL(nil, KeyProfilePicture); got != "" {
		t.Fatalf("nil payload expected empty, got %q", got)
	}
}

func TestBuildCard(t *testing.T) {
	n := NewNormalizer("https://www.jotform.com", "https://goldenpages.io")

	sub := model.SubmissionModel{
		SubmissionID:        uuid.New(),
		SubmissionFormID:    "250010",
		SubmissionSourceID:  "6200001",
		SubmissionCreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		SubmissionFormData: datatypes.JSON([]byte(`{
			"q5_nameOf": "Güneş Çiçeği Ltd",
			"q45_businessSector": "Tech",
			"q91_city": "Istanbul",
			"q21_schreibenSie21": "Turkey",
			"q16_email16": "info@gunes.example",
			"q105_telephone105": {"country":"0090","area":"212","phone":"1234567"},
			"q31_instagramAdresi": "@gunescicegi",
			"q48_website": "gunes.example",
			"q103_googleMap": "<iframe src=\"https://maps.example\"></iframe>"
		}`)),
	}

	card := n.BuildCard(sub)

	if card.CompanyName != "Güneş Çiçeği Ltd" {
		t.Fatalf("company name: got %q", card.CompanyName)
	}
	if card.Phone != "+90 (212) 1234567" {
		t.Fatalf("phone: got %q", card.Phone)
	}
	if card.InstagramURL != "https://instagram.com/gunescicegi" {
		t.Fatalf("instagram: got %q", card.InstagramURL)
	}
	if !card.HasSocialMedia {
		t.Fatalf("expected HasSocialMedia true")
	}
	if card.WebsiteURL != "https://gunes.example" {
		t.Fatalf("website: got %q", card.WebsiteURL)
	}
	if card.DirectoryURL != "https://goldenpages.io/gunes-cicegi-ltd" {
		t.Fatalf("directory url: got %q", card.DirectoryURL)
	}
	if card.GoogleMapEmbed == "" {
		t.Fatalf("expected map embed to pass through")
	}
	if card.TiktokURL != "" {
		t.Fatalf("tiktok should stay empty, got %q", card.TiktokURL)
	}
}

func TestBuildCardBrokenPayload(t *testing.T) {
	n := NewNormalizer("https://www.jotform.com", "https://goldenpages.io")
	sub := model.SubmissionModel{
		SubmissionID:       uuid.New(),
		SubmissionFormData: datatypes.JSON([]byte(`{broken`)),
	}
	card := n.BuildCard(sub)
	if card.CompanyName != DefaultFieldValue {
		t.Fatalf("broken payload expected default name, got %q", card.CompanyName)
	}
	if card.HasSocialMedia {
		t.Fatalf("broken payload should have no socials")
	}
}
