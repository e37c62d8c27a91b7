package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dub-translator/internal/domain/dto"
	"dub-translator/internal/domain/repositories"
	infra_repo "dub-translator/internal/infrastructure/repositories"
	"dub-translator/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type notFoundErr struct{}

func (notFoundErr) Error() string   { return "not found" }
func (notFoundErr) HTTPStatus() int { return http.StatusNotFound }

type fakeGateway struct {
	lastRequest   repositories.DubbingRequest
	uploadedBytes string
	failUpload    bool
	noTranscript  bool
	audioLang     string
}

func (g *fakeGateway) CreateDubbing(_ context.Context, req repositories.DubbingRequest) (*dto.UploadResponse, error) {
	if g.failUpload {
		return nil, io.ErrUnexpectedEOF
	}
	b, _ := io.ReadAll(req.Audio)
	g.uploadedBytes = string(b)
	g.lastRequest = req
	return &dto.UploadResponse{DubbingID: "abc123", ExpectedDurationSec: 5}, nil
}

func (g *fakeGateway) GetDubbing(_ context.Context, id string) (*dto.StatusResponse, error) {
	return &dto.StatusResponse{DubbingID: id, Status: "in progress", Raw: []byte(`{"dubbing_id":"abc123","status":"in progress","extra":1}`)}, nil
}

func (g *fakeGateway) DubbedAudio(_ context.Context, _ string, lang string) (*repositories.AudioStream, error) {
	g.audioLang = lang
	return &repositories.AudioStream{Body: io.NopCloser(strings.NewReader("mp3-data")), ContentType: "audio/mpeg", ContentLength: -1}, nil
}

func (g *fakeGateway) Transcript(context.Context, string, string, string) (string, error) {
	if g.noTranscript {
		return "", notFoundErr{}
	}
	return "1\n00:00:00,000 --> 00:00:01,000\nhola\n", nil
}

func newTestApp(gw *fakeGateway) *fiber.App {
	svc := usecases.NewDubbingService(gw, infra_repo.NewInMemoryJobRepository(), infra_repo.NewInMemoryHistoryRepository(), nil, nil, zap.NewNop())
	h := NewDubbingHandler(svc, zap.NewNop())

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/upload", h.Upload)
	api.Get("/translations", h.ListHistory)
	api.Get("/translations/:id", h.GetJob)
	api.Get("/translations/:id/status", h.Status)
	api.Get("/translations/:id/audio", h.Audio)
	api.Get("/translations/:id/download", h.Download)
	api.Get("/translations/:id/transcript", h.Transcript)
	api.Get("/translations/:id/archive", h.Archived)
	return app
}

func multipartUpload(t *testing.T, withFile bool, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if withFile {
		fw, err := mw.CreateFormFile("audio", "recording.webm")
		if err != nil {
			t.Fatal(err)
		}
		_, _ = fw.Write([]byte("pcm-bytes"))
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadForwardsAudioWithDefaults(t *testing.T) {
	gw := &fakeGateway{}
	app := newTestApp(gw)

	resp, err := app.Test(multipartUpload(t, true, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out dto.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.DubbingID != "abc123" || out.ExpectedDurationSec != 5 {
		t.Fatalf("response = %+v", out)
	}
	if gw.uploadedBytes != "pcm-bytes" || gw.lastRequest.SourceLang != "en" || gw.lastRequest.TargetLang != "es" {
		t.Fatalf("forwarded = %q %s/%s", gw.uploadedBytes, gw.lastRequest.SourceLang, gw.lastRequest.TargetLang)
	}

	jobResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/translations/abc123", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if jobResp.StatusCode != http.StatusOK {
		t.Fatalf("tracked job status = %d", jobResp.StatusCode)
	}
}

func TestUploadMissingAudio(t *testing.T) {
	resp, err := newTestApp(&fakeGateway{}).Test(multipartUpload(t, false, map[string]string{"source_lang": "en"}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUploadFailureReturns5xx(t *testing.T) {
	resp, err := newTestApp(&fakeGateway{failUpload: true}).Test(multipartUpload(t, true, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode < 500 {
		t.Fatalf("status = %d, want 5xx", resp.StatusCode)
	}
	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body["error"] == "" {
		t.Fatal("error body expected")
	}
}

func TestStatusPassesUpstreamBody(t *testing.T) {
	resp, err := newTestApp(&fakeGateway{}).Test(httptest.NewRequest(http.MethodGet, "/api/translations/abc123/status", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	if string(b) != `{"dubbing_id":"abc123","status":"in progress","extra":1}` {
		t.Fatalf("body = %s", b)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %s", ct)
	}
}

func TestDownloadHeaders(t *testing.T) {
	gw := &fakeGateway{}
	resp, err := newTestApp(gw).Test(httptest.NewRequest(http.MethodGet, "/api/translations/abc123/download?target_lang=fr", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="dubbed_abc123_fr.mp3"` {
		t.Fatalf("Content-Disposition = %q", got)
	}
	if got := resp.Header.Get("Cache-Control"); !strings.Contains(got, "no-cache") {
		t.Fatalf("Cache-Control = %q", got)
	}
	b, _ := io.ReadAll(resp.Body)
	if string(b) != "mp3-data" || gw.audioLang != "fr" {
		t.Fatalf("body = %q lang = %s", b, gw.audioLang)
	}
}

func TestAudioHasNoAttachmentHeader(t *testing.T) {
	gw := &fakeGateway{}
	resp, err := newTestApp(gw).Test(httptest.NewRequest(http.MethodGet, "/api/translations/abc123/audio", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.Header.Get("Content-Disposition") != "" {
		t.Fatal("audio endpoint must not force a download")
	}
	if resp.Header.Get("Content-Type") != "audio/mpeg" || gw.audioLang != "es" {
		t.Fatalf("content type = %s lang = %s", resp.Header.Get("Content-Type"), gw.audioLang)
	}
}

func TestTranscript(t *testing.T) {
	resp, err := newTestApp(&fakeGateway{}).Test(httptest.NewRequest(http.MethodGet, "/api/translations/abc123/transcript?language=target", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(b), "hola") {
		t.Fatalf("body = %q", b)
	}

	resp, err = newTestApp(&fakeGateway{noTranscript: true}).Test(httptest.NewRequest(http.MethodGet, "/api/translations/abc123/transcript", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing transcript status = %d, want 404", resp.StatusCode)
	}

	resp, err = newTestApp(&fakeGateway{}).Test(httptest.NewRequest(http.MethodGet, "/api/translations/abc123/transcript?format=docx", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad format status = %d, want 400", resp.StatusCode)
	}
}

func TestListHistoryEmpty(t *testing.T) {
	resp, err := newTestApp(&fakeGateway{}).Test(httptest.NewRequest(http.MethodGet, "/api/translations", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(b)) != "[]" {
		t.Fatalf("body = %s", b)
	}
}

func TestArchivedUnknownIsNotFound(t *testing.T) {
	resp, err := newTestApp(&fakeGateway{}).Test(httptest.NewRequest(http.MethodGet, "/api/translations/abc123/archive", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
