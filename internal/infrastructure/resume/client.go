package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ExtractedSkill is the structured skill entry the external analyzer
// returns. Category values are validated downstream, not here.
type ExtractedSkill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Extraction mirrors the analyzer response. Experience and education are
// pass-through; only Skills feeds the gap analyzer and ranker.
type Extraction struct {
	Skills     []ExtractedSkill `json:"skills"`
	Experience json.RawMessage  `json:"experience,omitempty"`
	Education  json.RawMessage  `json:"education,omitempty"`
}

type Extractor interface {
	Extract(ctx context.Context, resumeText string) (Extraction, error)
}

type httpExtractor struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type extractRequest struct {
	ResumeText string `json:"resume_text"`
}

// NewHTTPExtractor returns nil when no service URL is configured; callers
// treat a nil extractor as "feature disabled".
func NewHTTPExtractor(baseURL string, timeout time.Duration, logger *log.Logger) Extractor {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpExtractor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *httpExtractor) Extract(ctx context.Context, resumeText string) (Extraction, error) {
	if c == nil || c.client == nil {
		return Extraction{}, errors.New("nil resume client")
	}
	endpoint := c.baseURL + "/analyze"

	b, err := json.Marshal(extractRequest{ResumeText: resumeText})
	if err != nil {
		return Extraction{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return Extraction{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Extraction{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Resume] extract error endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return Extraction{}, fmt.Errorf("resume extraction failed: status=%d body=%s", resp.StatusCode, bodyStr)
	}

	var out Extraction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Extraction{}, err
	}
	return out, nil
}
