package dto

import (
	"encoding/json"

	"github.com/fadilmartias/recruit-track/internal/model"
)

// CandidateDocument is the denormalized projection indexed for search. It is
// rebuilt from the canonical record on every upsert; the index never sees a
// shape the Record Store did not produce.
type CandidateDocument struct {
	ID              string   `json:"id"`
	FullName        string   `json:"full_name"`
	Designation     string   `json:"designation"`
	Experience      float64  `json:"experience"`
	CtcCurrent      float64  `json:"ctc_current"`
	CtcExpected     float64  `json:"ctc_expected"`
	TopSkills       []string `json:"top_skills"`
	AllSkills       []string `json:"all_skills"`
	Companies       []string `json:"companies"`
	Location        string   `json:"location"`
	Portal          string   `json:"portal"`
	PortalDate      string   `json:"portal_date"`
	ApplicationDate string   `json:"application_date"`
}

func NewCandidateDocument(c *model.Candidate) CandidateDocument {
	return CandidateDocument{
		ID:              c.ID.String(),
		FullName:        c.FullName,
		Designation:     c.Designation,
		Experience:      c.Experience,
		CtcCurrent:      c.CurrentCTC,
		CtcExpected:     c.ExpectedCTC,
		TopSkills:       c.TopSkills,
		AllSkills:       c.AllSkills,
		Companies:       c.Companies,
		Location:        c.Location,
		Portal:          c.Portal,
		PortalDate:      c.PortalDate,
		ApplicationDate: c.ApplicationDate,
	}
}

// SearchQuery is the recruiter-supplied filter set.
type SearchQuery struct {
	Query       string   `json:"query"`
	Location    string   `json:"location"`
	MinExp      *float64 `json:"minExp"`
	MaxExp      *float64 `json:"maxExp"`
	Designation string   `json:"designation"`
	Skills      []string `json:"skills"`
	Page        int      `json:"page"`
	PageSize    int      `json:"pageSize"`
}

type SearchHit struct {
	ID     string          `json:"id"`
	Score  float64         `json:"score"`
	Source json.RawMessage `json:"source"`
}

type SearchResult struct {
	Total   int64       `json:"total"`
	Results []SearchHit `json:"results"`
}
