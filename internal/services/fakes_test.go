package services

import (
	"context"
	"sync"

	"github.com/karyahq/compass/internal/models"
	"github.com/karyahq/compass/internal/utils"
)

type fakeAssessmentRepo struct {
	mu     sync.Mutex
	byUser map[string]*models.Assessment
	nextID uint
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{byUser: make(map[string]*models.Assessment), nextID: 1}
}

func (r *fakeAssessmentRepo) GetByUserID(_ context.Context, userID string) (*models.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byUser[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAssessmentRepo) Create(_ context.Context, a *models.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.byUser[a.UserID] = &cp
	return nil
}

func (r *fakeAssessmentRepo) Save(_ context.Context, a *models.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.byUser[a.UserID] = &cp
	return nil
}

type fakeSkillRepo struct {
	mu     sync.Mutex
	byUser map[string][]models.UserSkill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{byUser: make(map[string][]models.UserSkill)}
}

func (r *fakeSkillRepo) ListByUser(_ context.Context, userID string) ([]models.UserSkill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.UserSkill(nil), r.byUser[userID]...), nil
}

func (r *fakeSkillRepo) ReplaceForUser(_ context.Context, userID string, skills []models.UserSkill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = append([]models.UserSkill(nil), skills...)
	return nil
}

type fakeJobRepo struct {
	jobs []models.Job
}

func (r *fakeJobRepo) List(_ context.Context) ([]models.Job, error) {
	return append([]models.Job(nil), r.jobs...), nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, jobID uint) (*models.Job, error) {
	for _, j := range r.jobs {
		if j.ID == jobID {
			cp := j
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeJobRepo) SeedIfEmpty(_ context.Context, jobs []models.Job) error {
	if len(r.jobs) == 0 {
		r.jobs = append([]models.Job(nil), jobs...)
	}
	return nil
}

type fakePlanRepo struct {
	mu     sync.Mutex
	byUser map[string]*models.LearningPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{byUser: make(map[string]*models.LearningPlan)}
}

func (r *fakePlanRepo) Upsert(_ context.Context, plan *models.LearningPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *plan
	r.byUser[plan.UserID] = &cp
	return nil
}

func (r *fakePlanRepo) GetByUserID(_ context.Context, userID string) (*models.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byUser[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) GetByPlanID(_ context.Context, planID string) (*models.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byUser {
		if p.PlanID == planID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakePlanRepo) SaveProgress(_ context.Context, plan *models.LearningPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, p := range r.byUser {
		if p.PlanID == plan.PlanID {
			cp := *plan
			r.byUser[userID] = &cp
			return nil
		}
	}
	return utils.ErrNotFound
}
