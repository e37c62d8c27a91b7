package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"dub-translator/internal/domain/dto"
	"dub-translator/internal/session"
)

// HTTPError is a non-2xx answer from the relay.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}

func (e *HTTPError) HTTPStatus() int {
	return e.StatusCode
}

// Client talks to the relay's /api routes.
type Client struct {
	base string
	hc   *http.Client
}

func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), hc: hc}
}

var _ session.Backend = (*Client)(nil)

func (c *Client) Upload(ctx context.Context, in session.UploadInput) (*dto.UploadResponse, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	w.WriteField("source_lang", in.SourceLang)
	w.WriteField("target_lang", in.TargetLang)

	filename := in.Filename
	if filename == "" {
		filename = "recording.webm"
	}
	part, err := w.CreateFormFile("audio", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(in.Audio); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out dto.UploadResponse
	if err := c.doJSON(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Status(ctx context.Context, dubbingID string) (*dto.StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.translationURL(dubbingID, "status", nil), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var st dto.StatusResponse
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	st.DubbingID = dubbingID
	st.Raw = raw
	return &st, nil
}

func (c *Client) Audio(ctx context.Context, dubbingID, targetLang string) ([]byte, error) {
	q := url.Values{"target_lang": {targetLang}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.translationURL(dubbingID, "audio", q), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (c *Client) Transcript(ctx context.Context, r dto.TranscriptRequestDTO) (string, error) {
	q := url.Values{}
	for k, v := range map[string]string{
		"language":    r.Language,
		"source_lang": r.SourceLang,
		"target_lang": r.TargetLang,
		"format":      r.Format,
	} {
		if v != "" {
			q.Set(k, v)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.translationURL(r.DubbingID, "transcript", q), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *Client) translationURL(id, action string, q url.Values) string {
	u := c.base + "/translations/" + url.PathEscape(id) + "/" + action
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		herr := &HTTPError{StatusCode: resp.StatusCode}
		var body dto.ErrorResponse
		if json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body) == nil {
			herr.Code, herr.Message = body.Error, body.Message
		}
		return nil, herr
	}
	return resp, nil
}
