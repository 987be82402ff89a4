package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	service "github.com/EkiciFurkan/goldenpages-search/internals/features/directory/service"
	model "github.com/EkiciFurkan/goldenpages-search/internals/features/submissions/model"
)

type stubRepo struct {
	subs []model.SubmissionModel
}

func (s *stubRepo) Create(_ context.Context, sub *model.SubmissionModel) error {
	s.subs = append(s.subs, *sub)
	return nil
}

func (s *stubRepo) ListActive(_ context.Context) ([]model.SubmissionModel, error) {
	return s.subs, nil
}

func submission(sourceID, payload string, createdAt time.Time) model.SubmissionModel {
	return model.SubmissionModel{
		SubmissionID:        uuid.New(),
		SubmissionFormID:    "250010",
		SubmissionSourceID:  sourceID,
		SubmissionCreatedAt: createdAt,
		SubmissionFormData:  datatypes.JSON([]byte(payload)),
	}
}

func newDirectoryApp(repo *stubRepo) *fiber.App {
	app := fiber.New()
	n := service.NewNormalizer("https://www.jotform.com", "https://goldenpages.io")
	ctl := NewDirectoryController(repo, n)
	app.Get("/api/directory", ctl.List)
	return app
}

func getDirectory(t *testing.T, app *fiber.App, query string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/directory"+query, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("body not JSON: %v (%s)", err, raw)
	}
	return resp.StatusCode, body
}

func TestDirectoryListSortsAndFilters(t *testing.T) {
	repo := &stubRepo{subs: []model.SubmissionModel{
		submission("1", `{"q5_nameOf":"Eski Firma","q45_businessSector":"Tech","q91_city":"Istanbul"}`,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		submission("2", `{"q5_nameOf":"Yeni Firma","q45_businessSector":"Tech","q91_city":"Ankara"}`,
			time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)),
	}}
	app := newDirectoryApp(repo)

	status, body := getDirectory(t, app, "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	data := body["data"].(map[string]any)
	companies := data["companies"].([]any)
	if len(companies) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(companies))
	}
	first := companies[0].(map[string]any)
	if first["company_name"] != "Yeni Firma" {
		t.Fatalf("expected newest first, got %v", first["company_name"])
	}
	if data["any_filter_active"] != false {
		t.Fatalf("no filters given, flag should be false")
	}

	status, body = getDirectory(t, app, "?city=ist&sector=tech")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	data = body["data"].(map[string]any)
	companies = data["companies"].([]any)
	if len(companies) != 1 {
		t.Fatalf("conjunction filter expected 1 company, got %d", len(companies))
	}
	if companies[0].(map[string]any)["company_name"] != "Eski Firma" {
		t.Fatalf("wrong company passed the filter: %v", companies[0])
	}
	if data["any_filter_active"] != true {
		t.Fatalf("filters given, flag should be true")
	}
}

func TestDirectoryEmptyMessageVariants(t *testing.T) {
	// hiç kayıt yok
	app := newDirectoryApp(&stubRepo{})
	_, body := getDirectory(t, app, "")
	if body["message"] != "Henüz kaydedilmiş bir gönderi bulunmamaktadır." {
		t.Fatalf("empty store message variant wrong: %v", body["message"])
	}

	// kayıt var ama filtreye uyan yok
	repo := &stubRepo{subs: []model.SubmissionModel{
		submission("1", `{"q5_nameOf":"Firma","q91_city":"Istanbul"}`, time.Now()),
	}}
	app = newDirectoryApp(repo)
	_, body = getDirectory(t, app, "?city=ankara")
	if body["message"] != "Aradığınız kriterlere uygun firma bulunamadı." {
		t.Fatalf("no-match message variant wrong: %v", body["message"])
	}
}
