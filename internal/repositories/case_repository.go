package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legalassist_backend/internal/models"
)

// CaseCriteria filters case listings.
type CaseCriteria struct {
	UserID       *uuid.UUID
	Status       string
	CaseType     string
	PracticeArea string
	CourtLevel   string
	Search       string
	Limit        int
	Offset       int
}

type CaseRepository interface {
	Create(ctx context.Context, c *models.Case) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error)
	GetByNumber(ctx context.Context, number string) (*models.Case, error)
	Update(ctx context.Context, c *models.Case) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, criteria CaseCriteria) ([]models.Case, int64, error)
	AttachClient(ctx context.Context, c *models.Case, client *models.Client) error
	DetachClient(ctx context.Context, c *models.Case, client *models.Client) error

	CreateMilestone(ctx context.Context, m *models.CaseMilestone) error
	ListMilestones(ctx context.Context, caseID uuid.UUID) ([]models.CaseMilestone, error)
	UpdateMilestone(ctx context.Context, m *models.CaseMilestone) error
}

type caseRepository struct {
	base *gorm.DB
}

func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &caseRepository{base: db}
}

func (r *caseRepository) Create(ctx context.Context, c *models.Case) error {
	return translateError(dbFromContext(ctx, r.base).Create(c).Error)
}

func (r *caseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	var c models.Case
	err := dbFromContext(ctx, r.base).
		Preload("Clients").
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *caseRepository) GetByNumber(ctx context.Context, number string) (*models.Case, error) {
	var c models.Case
	err := dbFromContext(ctx, r.base).First(&c, "case_number = ?", number).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *caseRepository) Update(ctx context.Context, c *models.Case) error {
	return translateError(dbFromContext(ctx, r.base).Save(c).Error)
}

func (r *caseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := dbFromContext(ctx, r.base).Delete(&models.Case{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *caseRepository) List(ctx context.Context, criteria CaseCriteria) ([]models.Case, int64, error) {
	db := dbFromContext(ctx, r.base).Model(&models.Case{})

	if criteria.UserID != nil {
		db = db.Where("user_id = ?", *criteria.UserID)
	}
	if criteria.Status != "" {
		db = db.Where("status = ?", criteria.Status)
	}
	if criteria.CaseType != "" {
		db = db.Where("case_type = ?", criteria.CaseType)
	}
	if criteria.PracticeArea != "" {
		db = db.Where("practice_area = ?", criteria.PracticeArea)
	}
	if criteria.CourtLevel != "" {
		db = db.Where("court_level = ?", criteria.CourtLevel)
	}
	if criteria.Search != "" {
		like := "%" + criteria.Search + "%"
		db = db.Where("title ILIKE ? OR case_number ILIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cases []models.Case
	err := db.Order("created_at DESC").
		Limit(criteria.Limit).Offset(criteria.Offset).
		Find(&cases).Error
	return cases, total, err
}

func (r *caseRepository) AttachClient(ctx context.Context, c *models.Case, client *models.Client) error {
	return dbFromContext(ctx, r.base).Model(c).Association("Clients").Append(client)
}

func (r *caseRepository) DetachClient(ctx context.Context, c *models.Case, client *models.Client) error {
	return dbFromContext(ctx, r.base).Model(c).Association("Clients").Delete(client)
}

func (r *caseRepository) CreateMilestone(ctx context.Context, m *models.CaseMilestone) error {
	return translateError(dbFromContext(ctx, r.base).Create(m).Error)
}

func (r *caseRepository) ListMilestones(ctx context.Context, caseID uuid.UUID) ([]models.CaseMilestone, error) {
	var milestones []models.CaseMilestone
	err := dbFromContext(ctx, r.base).
		Where("case_id = ?", caseID).
		Order("order_index ASC").
		Find(&milestones).Error
	return milestones, err
}

func (r *caseRepository) UpdateMilestone(ctx context.Context, m *models.CaseMilestone) error {
	return translateError(dbFromContext(ctx, r.base).Save(m).Error)
}
