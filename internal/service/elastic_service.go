package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fadilmartias/recruit-track/internal/config"
	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type ElasticServiceInterface interface {
	Ping() error
	EnsureIndex() error
	IndexCandidate(doc dto.CandidateDocument) error
	Search(body map[string]any) (*dto.SearchResult, error)
}

// ElasticService talks to Elasticsearch over its REST API.
type ElasticService struct {
	client *resty.Client
	index  string
}

func NewElasticService() *ElasticService {
	cfg := config.LoadSearchConfig()
	s := NewElasticServiceFor(cfg.URL, cfg.Index)
	if cfg.Username != "" {
		s.client.SetBasicAuth(cfg.Username, cfg.Password)
	}
	return s
}

// NewElasticServiceFor builds a client against an explicit endpoint, used by
// tooling and tests.
func NewElasticServiceFor(baseURL, index string) *ElasticService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &ElasticService{client: client, index: index}
}

func (s *ElasticService) Ping() error {
	resp, err := s.client.R().Get("/")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("elasticsearch ping failed: %s", resp.Status())
	}
	return nil
}

// EnsureIndex creates the candidate index with its mapping if it does not
// exist yet. Exact-match fields are keywords; the free-text fields carry the
// standard analyzer.
func (s *ElasticService) EnsureIndex() error {
	resp, err := s.client.R().Head("/" + s.index)
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusOK {
		return nil
	}
	if resp.StatusCode() != http.StatusNotFound {
		return fmt.Errorf("index check failed: %s", resp.Status())
	}

	mapping := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"id":               map[string]any{"type": "keyword"},
				"full_name":        map[string]any{"type": "text"},
				"designation":      map[string]any{"type": "text"},
				"companies":        map[string]any{"type": "text"},
				"top_skills":       map[string]any{"type": "keyword"},
				"all_skills":       map[string]any{"type": "keyword"},
				"location":         map[string]any{"type": "keyword"},
				"portal":           map[string]any{"type": "keyword"},
				"experience":       map[string]any{"type": "float"},
				"ctc_current":      map[string]any{"type": "float"},
				"ctc_expected":     map[string]any{"type": "float"},
				"portal_date":      map[string]any{"type": "keyword"},
				"application_date": map[string]any{"type": "keyword"},
			},
		},
	}
	resp, err = s.client.R().SetBody(mapping).Put("/" + s.index)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("index create failed: %s %s", resp.Status(), resp.String())
	}
	return nil
}

// IndexCandidate upserts the projection document by id (create-or-replace).
func (s *ElasticService) IndexCandidate(doc dto.CandidateDocument) error {
	resp, err := s.client.R().SetBody(doc).Put("/" + s.index + "/_doc/" + doc.ID)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("index document failed: %s %s", resp.Status(), resp.String())
	}
	return nil
}

func (s *ElasticService) Search(body map[string]any) (*dto.SearchResult, error) {
	resp, err := s.client.R().SetBody(body).Post("/" + s.index + "/_search")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search failed: %s %s", resp.Status(), resp.String())
	}

	raw := resp.String()
	result := &dto.SearchResult{
		Total:   gjson.Get(raw, "hits.total.value").Int(),
		Results: []dto.SearchHit{},
	}
	for _, hit := range gjson.Get(raw, "hits.hits").Array() {
		result.Results = append(result.Results, dto.SearchHit{
			ID:     hit.Get("_id").String(),
			Score:  hit.Get("_score").Float(),
			Source: json.RawMessage(hit.Get("_source").Raw),
		})
	}
	return result, nil
}
