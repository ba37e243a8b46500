package usecase

import (
	"encoding/json"
	"log"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/fadilmartias/recruit-track/internal/repository"
	"github.com/fadilmartias/recruit-track/internal/service"
	"github.com/fadilmartias/recruit-track/internal/util"
	"github.com/google/uuid"
)

type CandidateUsecase struct {
	candidateRepo repository.CandidateRepositoryInterface
	activityRepo  repository.ActivityLogRepositoryInterface
	elastic       service.ElasticServiceInterface
}

func NewCandidateUsecase(candidateRepo repository.CandidateRepositoryInterface, activityRepo repository.ActivityLogRepositoryInterface, elastic service.ElasticServiceInterface) *CandidateUsecase {
	return &CandidateUsecase{candidateRepo: candidateRepo, activityRepo: activityRepo, elastic: elastic}
}

// AddManual stores a candidate coming from the manual entry form and pushes
// the projection into the search index.
func (uc *CandidateUsecase) AddManual(userID uuid.UUID, in *dto.ManualCandidateInput) (*model.Candidate, error) {
	candidate := in.ToModel()
	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}
	stored, err := uc.candidateRepo.Upsert(candidate)
	if err != nil {
		return nil, err
	}
	uc.syncToIndex(stored)

	payload, _ := json.Marshal(map[string]string{"unique_id": stored.UniqueID})
	if err := uc.activityRepo.Append(userID, model.ActionAddCandidate, string(payload)); err != nil {
		log.Printf("activity log append failed: %v", err)
	}
	return stored, nil
}

// ImportBulk processes rows sequentially. A failing row is recorded in the
// error list and does not abort the remaining rows.
func (uc *CandidateUsecase) ImportBulk(userID uuid.UUID, rows []dto.BulkCandidateRow) (*dto.BulkImportResult, error) {
	result := &dto.BulkImportResult{Total: len(rows), Errors: []dto.BulkRowError{}}
	for i := range rows {
		candidate := rows[i].ToModel()
		if err := validateCandidate(candidate); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.BulkRowError{Row: i + 1, Error: err.Error()})
			continue
		}
		stored, err := uc.candidateRepo.Upsert(candidate)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.BulkRowError{Row: i + 1, Error: err.Error()})
			continue
		}
		uc.syncToIndex(stored)
		result.Success++
	}

	payload, _ := json.Marshal(result)
	if err := uc.activityRepo.Append(userID, model.ActionBulkImport, string(payload)); err != nil {
		log.Printf("activity log append failed: %v", err)
	}
	return result, nil
}

func (uc *CandidateUsecase) GetByID(userID uuid.UUID, id string) (*model.Candidate, error) {
	candidate, err := uc.candidateRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	payload, _ := json.Marshal(map[string]string{"candidate_id": id})
	if err := uc.activityRepo.Append(userID, model.ActionViewProfile, string(payload)); err != nil {
		log.Printf("activity log append failed: %v", err)
	}
	return candidate, nil
}

func (uc *CandidateUsecase) List(page, pageSize int) ([]model.Candidate, int64, error) {
	page, pageSize = NormalizePage(page, pageSize)
	return uc.candidateRepo.List((page-1)*pageSize, pageSize)
}

// syncToIndex pushes the candidate projection into the search index. The
// index is a rebuildable cache: a failure here is logged and swallowed, the
// primary write is never rolled back.
func (uc *CandidateUsecase) syncToIndex(candidate *model.Candidate) {
	doc := dto.NewCandidateDocument(candidate)
	if err := uc.elastic.IndexCandidate(doc); err != nil {
		log.Printf("index sync failed for candidate %s: %v", candidate.UniqueID, err)
	}
}

// RebuildIndex re-projects every stored candidate into the search index.
// It is not checkpointed; a failed run is simply re-run.
func (uc *CandidateUsecase) RebuildIndex() (int, error) {
	if err := uc.elastic.EnsureIndex(); err != nil {
		return 0, err
	}
	candidates, err := uc.candidateRepo.FindAll()
	if err != nil {
		return 0, err
	}
	synced := 0
	for i := range candidates {
		if err := uc.elastic.IndexCandidate(dto.NewCandidateDocument(&candidates[i])); err != nil {
			log.Printf("reindex failed for candidate %s: %v", candidates[i].UniqueID, err)
			continue
		}
		synced++
	}
	return synced, nil
}

func validateCandidate(c *model.Candidate) error {
	fieldErrors := map[string]string{}
	if c.UniqueID == "" {
		fieldErrors["uniqueId"] = "unique id is required"
	}
	if c.FullName == "" {
		fieldErrors["fullName"] = "name is required"
	}
	if c.ResumeURL == "" {
		fieldErrors["resumeUrl"] = "resume url is required"
	}
	if len(fieldErrors) > 0 {
		return util.NewFormError("missing required candidate fields", fieldErrors)
	}
	return nil
}
