package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"dub-translator/internal/domain/dto"
	"dub-translator/internal/domain/repositories"
	"dub-translator/internal/pkg/config"
	"dub-translator/pkg/file"
)

const apiKeyHeader = "xi-api-key"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// UpstreamError is a non-2xx answer from the dubbing API.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("elevenlabs %s http %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *UpstreamError) HTTPStatus() int {
	return e.StatusCode
}

type Client struct {
	baseURL     string
	apiKey      string
	numSpeakers int64
	watermark   bool
	hc          *http.Client
}

func NewClient(cfg config.DubbingConfig) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		numSpeakers: cfg.NumSpeakers,
		watermark:   cfg.Watermark,
		hc:          &http.Client{Timeout: cfg.RequestTimeout},
	}
}

var _ repositories.DubbingGateway = (*Client)(nil)

type createDubbingResp struct {
	DubbingID           string  `json:"dubbing_id"`
	ExpectedDurationSec float64 `json:"expected_duration_sec"`
}

func (c *Client) CreateDubbing(ctx context.Context, req repositories.DubbingRequest) (*dto.UploadResponse, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"source_lang":  req.SourceLang,
		"target_lang":  req.TargetLang,
		"num_speakers": strconv.FormatInt(c.numSpeakers, 10),
		"watermark":    strconv.FormatBool(c.watermark),
		"mode":         "automatic",
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, err
		}
	}

	filename := req.Filename
	if filename == "" {
		filename = "recording.webm"
	}
	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	partHeader.Set("Content-Type", file.AudioContentType(filename))
	fw, err := mw.CreatePart(partHeader)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, req.Audio); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/dubbing", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(httpReq, "create dubbing")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out createDubbingResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode create dubbing response: %w", err)
	}
	if out.DubbingID == "" {
		return nil, fmt.Errorf("create dubbing response has no dubbing_id")
	}

	return &dto.UploadResponse{
		DubbingID:           out.DubbingID,
		ExpectedDurationSec: out.ExpectedDurationSec,
	}, nil
}

func (c *Client) GetDubbing(ctx context.Context, dubbingID string) (*dto.StatusResponse, error) {
	httpReq, err := c.newRequest(ctx, http.MethodGet, "/dubbing/"+url.PathEscape(dubbingID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(httpReq, "get dubbing")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dubbing status: %w", err)
	}

	var parsed struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode dubbing status: %w", err)
	}

	return &dto.StatusResponse{
		DubbingID: dubbingID,
		Status:    parsed.Status,
		Raw:       raw,
	}, nil
}

// DubbedAudio streams the dubbed file; the caller closes Body.
func (c *Client) DubbedAudio(ctx context.Context, dubbingID, lang string) (*repositories.AudioStream, error) {
	path := fmt.Sprintf("/dubbing/%s/audio/%s", url.PathEscape(dubbingID), url.PathEscape(lang))
	httpReq, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(httpReq, "dubbed audio")
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	return &repositories.AudioStream{
		Body:          resp.Body,
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
	}, nil
}

func (c *Client) Transcript(ctx context.Context, dubbingID, lang, format string) (string, error) {
	path := fmt.Sprintf("/dubbing/%s/transcript/%s?format_type=%s",
		url.PathEscape(dubbingID), url.PathEscape(lang), url.QueryEscape(format))
	httpReq, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.do(httpReq, "transcript")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(b), nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	return req, nil
}

// do sends the request and turns any non-2xx answer into *UpstreamError.
func (c *Client) do(req *http.Request, op string) (*http.Response, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs %s: %w", op, err)
	}
	if resp.StatusCode >= 300 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}
