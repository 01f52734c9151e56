// Package content reads the project catalog from the Sanity content lake.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultAPIVersion = "2024-01-01"
	defaultDataset    = "production"

	projectsQuery = `*[_type == "projeto" && !(_id in path("drafts.**"))] | order(ordem asc, _createdAt desc){
  "id": _id,
  titulo,
  "slug": slug.current,
  descricao,
  "categoria": categoria->nome,
  "capa_url": capa.asset->url,
  "video_url": videoUrl,
  "ordem": coalesce(ordem, 0)
}`
)

// Config identifies the Sanity project. Token is only needed for private
// datasets.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	Timeout    time.Duration
	// BaseURL overrides https://<project>.api.sanity.io, for tests.
	BaseURL string
}

// Sanity implements ports.ProjectSource over the GROQ query HTTP API.
type Sanity struct {
	endpoint string
	token    string
	http     *http.Client
}

func NewSanity(cfg Config) (*Sanity, error) {
	if cfg.ProjectID == "" && cfg.BaseURL == "" {
		return nil, fmt.Errorf("sanity: project id not configured")
	}
	if cfg.Dataset == "" {
		cfg.Dataset = defaultDataset
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	}
	return &Sanity{
		endpoint: fmt.Sprintf("%s/v%s/data/query/%s", base, strings.TrimPrefix(cfg.APIVersion, "v"), cfg.Dataset),
		token:    cfg.Token,
		http:     &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
	} `json:"error"`
}

// Projects runs the catalog query.
func (s *Sanity) Projects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := s.query(ctx, projectsQuery, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Project{}
	}
	return out, nil
}

func (s *Sanity) query(ctx context.Context, groq string, dst any) error {
	reqURL := s.endpoint + "?" + url.Values{"query": {groq}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("sanity request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("sanity query: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("sanity read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if json.Unmarshal(body, &e) == nil && e.Error.Description != "" {
			return fmt.Errorf("sanity query: status %d: %s", resp.StatusCode, e.Error.Description)
		}
		return fmt.Errorf("sanity query: status %d", resp.StatusCode)
	}

	var qr queryResponse
	if err := json.Unmarshal(body, &qr); err != nil {
		return fmt.Errorf("sanity decode: %w", err)
	}
	if len(qr.Result) == 0 || string(qr.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(qr.Result, dst); err != nil {
		return fmt.Errorf("sanity decode result: %w", err)
	}
	return nil
}
