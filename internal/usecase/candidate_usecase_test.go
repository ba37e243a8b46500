package usecase_test

import (
	"errors"
	"testing"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/fadilmartias/recruit-track/internal/usecase"
	"github.com/fadilmartias/recruit-track/internal/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCandidateRepo struct {
	byUniqueID map[string]*model.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{byUniqueID: map[string]*model.Candidate{}}
}

func (r *fakeCandidateRepo) Upsert(candidate *model.Candidate) (*model.Candidate, error) {
	if existing, ok := r.byUniqueID[candidate.UniqueID]; ok {
		candidate.ID = existing.ID
		candidate.CreatedAt = existing.CreatedAt
	} else if candidate.ID == uuid.Nil {
		candidate.ID = uuid.New()
	}
	stored := *candidate
	r.byUniqueID[candidate.UniqueID] = &stored
	return &stored, nil
}

func (r *fakeCandidateRepo) FindByID(id string) (*model.Candidate, error) {
	for _, c := range r.byUniqueID {
		if c.ID.String() == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCandidateRepo) FindByUniqueID(uniqueID string) (*model.Candidate, error) {
	if c, ok := r.byUniqueID[uniqueID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCandidateRepo) FindAll() ([]model.Candidate, error) {
	var out []model.Candidate
	for _, c := range r.byUniqueID {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCandidateRepo) List(offset, limit int) ([]model.Candidate, int64, error) {
	all, _ := r.FindAll()
	return all, int64(len(all)), nil
}

func (r *fakeCandidateRepo) Count() (int64, error) {
	return int64(len(r.byUniqueID)), nil
}

type fakeElastic struct {
	docs       map[string]dto.CandidateDocument
	indexCalls int
	failIndex  bool
	searchBody map[string]any
	result     *dto.SearchResult
	searchErr  error
}

func newFakeElastic() *fakeElastic {
	return &fakeElastic{docs: map[string]dto.CandidateDocument{}, result: &dto.SearchResult{Results: []dto.SearchHit{}}}
}

func (f *fakeElastic) Ping() error        { return nil }
func (f *fakeElastic) EnsureIndex() error { return nil }

func (f *fakeElastic) IndexCandidate(doc dto.CandidateDocument) error {
	f.indexCalls++
	if f.failIndex {
		return errors.New("index unreachable")
	}
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakeElastic) Search(body map[string]any) (*dto.SearchResult, error) {
	f.searchBody = body
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.result, nil
}

func TestAddManualProjectsIntoIndex(t *testing.T) {
	repo := newFakeCandidateRepo()
	elastic := newFakeElastic()
	uc := usecase.NewCandidateUsecase(repo, &fakeActivityRepo{}, elastic)

	stored, err := uc.AddManual(uuid.New(), &dto.ManualCandidateInput{
		UniqueID:    "NPX-1001",
		FullName:    "Asha Verma",
		Designation: "Backend Engineer",
		Experience:  "3-5",
		CtcCurrent:  12.5,
		Skills:      []string{"Go", "Postgres"},
		TopSkills:   []string{"Go"},
		Location:    "Bangalore",
		ResumeURL:   "https://files.example.com/npx-1001.pdf",
	})
	require.NoError(t, err)

	doc, ok := elastic.docs[stored.ID.String()]
	require.True(t, ok)
	assert.Equal(t, "Asha Verma", doc.FullName)
	assert.Equal(t, 3.0, doc.Experience) // lower bound of "3-5"
	assert.Equal(t, 12.5, doc.CtcCurrent)
	assert.Equal(t, "Bangalore", doc.Location)
	assert.Equal(t, []string{"Go", "Postgres"}, doc.AllSkills)
}

func TestAddManualValidation(t *testing.T) {
	uc := usecase.NewCandidateUsecase(newFakeCandidateRepo(), &fakeActivityRepo{}, newFakeElastic())

	_, err := uc.AddManual(uuid.New(), &dto.ManualCandidateInput{FullName: "No ID"})
	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Errors, "uniqueId")
	assert.Contains(t, formErr.Errors, "resumeUrl")
}

func TestAddManualSurvivesIndexFailure(t *testing.T) {
	repo := newFakeCandidateRepo()
	elastic := newFakeElastic()
	elastic.failIndex = true
	uc := usecase.NewCandidateUsecase(repo, &fakeActivityRepo{}, elastic)

	// the index is a rebuildable cache: a failed sync never fails the write
	stored, err := uc.AddManual(uuid.New(), &dto.ManualCandidateInput{
		UniqueID:  "NPX-2001",
		FullName:  "Ravi Kumar",
		ResumeURL: "https://files.example.com/r.pdf",
	})
	require.NoError(t, err)

	_, err = repo.FindByUniqueID("NPX-2001")
	require.NoError(t, err)
	assert.Empty(t, elastic.docs)
	assert.NotNil(t, stored)
}

func TestSyncIdempotence(t *testing.T) {
	repo := newFakeCandidateRepo()
	elastic := newFakeElastic()
	uc := usecase.NewCandidateUsecase(repo, &fakeActivityRepo{}, elastic)

	in := &dto.ManualCandidateInput{
		UniqueID:  "NPX-3001",
		FullName:  "Meera Nair",
		ResumeURL: "https://files.example.com/m.pdf",
	}
	first, err := uc.AddManual(uuid.New(), in)
	require.NoError(t, err)
	docAfterFirst := elastic.docs[first.ID.String()]

	second, err := uc.AddManual(uuid.New(), in)
	require.NoError(t, err)

	// same natural key, same state: one record, one identical document
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, docAfterFirst, elastic.docs[second.ID.String()])
	assert.Len(t, elastic.docs, 1)
	count, _ := repo.Count()
	assert.Equal(t, int64(1), count)
}

func TestManualAndBulkProduceIdenticalProjections(t *testing.T) {
	manual := &dto.ManualCandidateInput{
		UniqueID:    "NPX-4001",
		FullName:    "Divya Singh",
		Designation: "Data Engineer",
		Experience:  "4-6",
		CtcCurrent:  "18",
		CtcExpected: 24.0,
		TopSkills:   []string{"Spark"},
		Skills:      []string{"Spark", "Airflow"},
		Location:    "Pune",
		ResumeURL:   "https://files.example.com/d.pdf",
	}
	bulk := &dto.BulkCandidateRow{
		UniqueID:    "NPX-4001",
		Name:        "Divya Singh",
		Designation: "Data Engineer",
		Experience:  "4-6",
		CurrCTC:     "18",
		ExpectedCTC: 24.0,
		SkillsTop:   []string{"Spark"},
		SkillsAll:   []string{"Spark", "Airflow"},
		Location:    "Pune",
		ResumeURL:   "https://files.example.com/d.pdf",
	}

	fromManual := manual.ToModel()
	fromBulk := bulk.ToModel()
	fromManual.ID = fromBulk.ID

	assert.Equal(t, dto.NewCandidateDocument(fromManual), dto.NewCandidateDocument(fromBulk))
}

func TestImportBulkPartialFailure(t *testing.T) {
	repo := newFakeCandidateRepo()
	elastic := newFakeElastic()
	activityRepo := &fakeActivityRepo{}
	uc := usecase.NewCandidateUsecase(repo, activityRepo, elastic)

	rows := []dto.BulkCandidateRow{
		{UniqueID: "ROW-1", Name: "One", ResumeURL: "https://files.example.com/1.pdf"},
		{UniqueID: "ROW-2", Name: "Two"}, // missing resume URL
		{UniqueID: "ROW-3", Name: "Three", ResumeURL: "https://files.example.com/3.pdf"},
	}
	result, err := uc.ImportBulk(uuid.New(), rows)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)

	// rows 1 and 3 made it into the store
	_, err = repo.FindByUniqueID("ROW-1")
	assert.NoError(t, err)
	_, err = repo.FindByUniqueID("ROW-2")
	assert.Error(t, err)
	_, err = repo.FindByUniqueID("ROW-3")
	assert.NoError(t, err)

	assert.Equal(t, []string{model.ActionBulkImport}, activityRepo.actions())
}

func TestRebuildIndex(t *testing.T) {
	repo := newFakeCandidateRepo()
	elastic := newFakeElastic()
	uc := usecase.NewCandidateUsecase(repo, &fakeActivityRepo{}, elastic)

	for _, uid := range []string{"R-1", "R-2", "R-3"} {
		_, err := repo.Upsert(&model.Candidate{UniqueID: uid, FullName: uid, ResumeURL: "https://files.example.com/x.pdf"})
		require.NoError(t, err)
	}

	synced, err := uc.RebuildIndex()
	require.NoError(t, err)
	assert.Equal(t, 3, synced)
	assert.Len(t, elastic.docs, 3)
}
