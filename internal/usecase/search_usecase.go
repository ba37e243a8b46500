package usecase

import (
	"encoding/json"
	"log"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/fadilmartias/recruit-track/internal/repository"
	"github.com/fadilmartias/recruit-track/internal/service"
	"github.com/google/uuid"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

type SearchUsecase struct {
	elastic      service.ElasticServiceInterface
	activityRepo repository.ActivityLogRepositoryInterface
}

func NewSearchUsecase(elastic service.ElasticServiceInterface, activityRepo repository.ActivityLogRepositoryInterface) *SearchUsecase {
	return &SearchUsecase{elastic: elastic, activityRepo: activityRepo}
}

// Search runs the recruiter's filter set against the search index. There is
// no fallback to the record store: an unreachable index fails the request.
func (uc *SearchUsecase) Search(userID uuid.UUID, query dto.SearchQuery) (*dto.SearchResult, error) {
	body := BuildSearchBody(query)
	result, err := uc.elastic.Search(body)
	if err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(query)
	if err := uc.activityRepo.Append(userID, model.ActionSearch, string(payload)); err != nil {
		log.Printf("activity log append failed: %v", err)
	}
	return result, nil
}

// BuildSearchBody translates the filter set into an Elasticsearch request.
// Free text becomes a fuzzy multi_match over weighted fields; the structured
// filters are ANDed in as non-scoring conditions.
func BuildSearchBody(q dto.SearchQuery) map[string]any {
	page, pageSize := NormalizePage(q.Page, q.PageSize)

	var must any
	if q.Query != "" {
		must = map[string]any{
			"multi_match": map[string]any{
				"query":     q.Query,
				"fuzziness": "AUTO",
				"fields": []string{
					"full_name^4", "designation^3", "top_skills^2",
					"all_skills^2", "companies^2", "location",
				},
			},
		}
	} else {
		must = map[string]any{"match_all": map[string]any{}}
	}

	filters := []any{}
	if q.Location != "" {
		filters = append(filters, map[string]any{
			"term": map[string]any{"location": q.Location},
		})
	}
	if q.MinExp != nil || q.MaxExp != nil {
		bounds := map[string]any{}
		if q.MinExp != nil {
			bounds["gte"] = *q.MinExp
		}
		if q.MaxExp != nil {
			bounds["lte"] = *q.MaxExp
		}
		filters = append(filters, map[string]any{
			"range": map[string]any{"experience": bounds},
		})
	}
	if q.Designation != "" {
		filters = append(filters, map[string]any{
			"match": map[string]any{"designation": q.Designation},
		})
	}
	if len(q.Skills) > 0 {
		filters = append(filters, map[string]any{
			"terms": map[string]any{"all_skills": q.Skills},
		})
	}

	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must":   []any{must},
				"filter": filters,
			},
		},
		"from": (page - 1) * pageSize,
		"size": pageSize,
	}
}

// NormalizePage clamps pagination inputs: page starts at 1, page size
// defaults to DefaultPageSize and is capped at MaxPageSize.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
