package tuzi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lookbook/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("tuzi: api key is required")

// uploadFilename is the fixed filename attached to the image form part.
const uploadFilename = "upload.png"

// Options configures the tu-zi images/edits client.
type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the tu-zi image editing API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
}

// EditRequest captures the inputs for one image edit.
type EditRequest struct {
	Prompt    string
	ImageData []byte
	ImageMIME string
}

// EditResult is the normalized result from the API.
type EditResult struct {
	URL string
}

type editResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 90 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.tu-zi.com/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gemini-3-pro-image-preview"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.apiKey != ""
}

// EditImage performs a single images/edits call and returns the URL of the
// generated image. There is no retry: the caller consumes quota per attempt
// and treats any failure as final.
func (c *Client) EditImage(ctx context.Context, req EditRequest) (*EditResult, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingAPIKey
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, errors.New("tuzi: prompt is required")
	}
	if len(req.ImageData) == 0 {
		return nil, errors.New("tuzi: image data is required")
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("model", c.model); err != nil {
		return nil, fmt.Errorf("tuzi: encode form: %w", err)
	}
	if err := form.WriteField("prompt", prompt); err != nil {
		return nil, fmt.Errorf("tuzi: encode form: %w", err)
	}
	if err := form.WriteField("response_format", "url"); err != nil {
		return nil, fmt.Errorf("tuzi: encode form: %w", err)
	}
	part, err := form.CreatePart(imagePartHeader(req.ImageMIME))
	if err != nil {
		return nil, fmt.Errorf("tuzi: encode form: %w", err)
	}
	if _, err := part.Write(req.ImageData); err != nil {
		return nil, fmt.Errorf("tuzi: encode form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("tuzi: encode form: %w", err)
	}

	endpoint := c.baseURL + "/images/edits"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("tuzi: build request: %w", err)
	}
	// The form writer's content type carries the multipart boundary; nothing
	// else may be set here.
	httpReq.Header.Set("Content-Type", form.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tuzi: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tuzi: read response: %w", err)
	}

	var decoded editResponse
	if resp.StatusCode >= 300 {
		if err := json.Unmarshal(raw, &decoded); err == nil && decoded.Error != nil && decoded.Error.Message != "" {
			return nil, fmt.Errorf("tuzi: %s", decoded.Error.Message)
		}
		return nil, fmt.Errorf("tuzi: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("tuzi: decode response: %w", err)
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return nil, fmt.Errorf("tuzi: %s", decoded.Error.Message)
	}
	if len(decoded.Data) == 0 || strings.TrimSpace(decoded.Data[0].URL) == "" {
		return nil, errors.New("tuzi: response missing image url")
	}

	url := strings.TrimSpace(decoded.Data[0].URL)
	c.logger.Debug().
		Str("model", c.model).
		Str("url", url).
		Dur("elapsed", time.Since(start)).
		Msg("tuzi: generated image")
	return &EditResult{URL: url}, nil
}

// imagePartHeader builds the MIME header for the image form part, carrying
// the upload's own content type rather than the octet-stream default.
func imagePartHeader(mimeType string) textproto.MIMEHeader {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, uploadFilename))
	header.Set("Content-Type", mimeType)
	return header
}
