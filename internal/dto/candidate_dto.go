package dto

import (
	"strconv"
	"strings"

	"github.com/fadilmartias/recruit-track/internal/model"
)

// The two ingestion paths historically used different field names for the
// same data (fullName/skills/ctcCurrent vs name/skillsAll/currCTC). Each
// path gets its own input form here, and both are adapted into the
// canonical model.Candidate before anything downstream sees them.

// ManualCandidateInput is the request body of the manual add/update form.
type ManualCandidateInput struct {
	UniqueID        string   `json:"uniqueId"`
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Designation     string   `json:"designation"`
	Experience      any      `json:"experience"`
	CtcCurrent      any      `json:"ctcCurrent"`
	CtcExpected     any      `json:"ctcExpected"`
	TopSkills       []string `json:"topSkills"`
	Skills          []string `json:"skills"`
	Companies       []string `json:"companies"`
	Location        string   `json:"location"`
	Portal          string   `json:"portal"`
	PortalDate      string   `json:"portalDate"`
	ApplicationDate string   `json:"applicationDate"`
	Remark          string   `json:"remark"`
	ResumeURL       string   `json:"resumeUrl"`
}

func (in *ManualCandidateInput) ToModel() *model.Candidate {
	return &model.Candidate{
		UniqueID:        strings.TrimSpace(in.UniqueID),
		FullName:        strings.TrimSpace(in.FullName),
		Email:           in.Email,
		Phone:           in.Phone,
		Designation:     in.Designation,
		Experience:      ParseExperience(in.Experience),
		CurrentCTC:      ParseNumber(in.CtcCurrent),
		ExpectedCTC:     ParseNumber(in.CtcExpected),
		TopSkills:       cleanSkills(in.TopSkills),
		AllSkills:       cleanSkills(in.Skills),
		Companies:       cleanSkills(in.Companies),
		Location:        strings.TrimSpace(in.Location),
		Portal:          in.Portal,
		PortalDate:      in.PortalDate,
		ApplicationDate: in.ApplicationDate,
		Remark:          in.Remark,
		ResumeURL:       strings.TrimSpace(in.ResumeURL),
	}
}

// BulkCandidateRow is one row of a bulk upload request.
type BulkCandidateRow struct {
	UniqueID        string   `json:"uniqueId"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Designation     string   `json:"designation"`
	Experience      any      `json:"experience"`
	CurrCTC         any      `json:"currCTC"`
	ExpectedCTC     any      `json:"expectedCTC"`
	SkillsTop       []string `json:"skillsTop"`
	SkillsAll       []string `json:"skillsAll"`
	Companies       []string `json:"companies"`
	Location        string   `json:"location"`
	Portal          string   `json:"portal"`
	PortalDate      string   `json:"portalDate"`
	ApplicationDate string   `json:"applicationDate"`
	Remark          string   `json:"remark"`
	ResumeURL       string   `json:"resumeUrl"`
}

func (row *BulkCandidateRow) ToModel() *model.Candidate {
	return &model.Candidate{
		UniqueID:        strings.TrimSpace(row.UniqueID),
		FullName:        strings.TrimSpace(row.Name),
		Email:           row.Email,
		Phone:           row.Phone,
		Designation:     row.Designation,
		Experience:      ParseExperience(row.Experience),
		CurrentCTC:      ParseNumber(row.CurrCTC),
		ExpectedCTC:     ParseNumber(row.ExpectedCTC),
		TopSkills:       cleanSkills(row.SkillsTop),
		AllSkills:       cleanSkills(row.SkillsAll),
		Companies:       cleanSkills(row.Companies),
		Location:        strings.TrimSpace(row.Location),
		Portal:          row.Portal,
		PortalDate:      row.PortalDate,
		ApplicationDate: row.ApplicationDate,
		Remark:          row.Remark,
		ResumeURL:       strings.TrimSpace(row.ResumeURL),
	}
}

// ParseExperience absorbs the historical mix of value shapes: plain numbers,
// numeric strings, and range strings like "3-5" (the lower bound wins).
func ParseExperience(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0
		}
		// "3-5" / "3 - 5" / "3+" all reduce to the first number
		for _, sep := range []string{"-", "+", " "} {
			if i := strings.Index(s, sep); i > 0 {
				s = s[:i]
				break
			}
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ParseNumber converts numbers and numeric strings, defaulting to 0.
func ParseNumber(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// BulkImportResult is the response body of a bulk upload.
type BulkImportResult struct {
	Total   int            `json:"total"`
	Success int            `json:"success"`
	Failed  int            `json:"failed"`
	Errors  []BulkRowError `json:"errors"`
}

// BulkRowError reports one failed row; Row is 1-based.
type BulkRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}
