package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legalassist_backend/internal/models"
)

// RulingCriteria filters ruling listings.
type RulingCriteria struct {
	Court    string
	Category string
	Landmark *bool
	Search   string
	Limit    int
	Offset   int
}

type RulingRepository interface {
	Create(ctx context.Context, ruling *models.Ruling) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ruling, error)
	Update(ctx context.Context, ruling *models.Ruling) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, criteria RulingCriteria) ([]models.Ruling, int64, error)

	CreateAnnotation(ctx context.Context, annotation *models.RulingAnnotation) error
	ListAnnotations(ctx context.Context, rulingID uuid.UUID) ([]models.RulingAnnotation, error)
	ListJudges(ctx context.Context) ([]models.Judge, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

type rulingRepository struct {
	base *gorm.DB
}

func NewRulingRepository(db *gorm.DB) RulingRepository {
	return &rulingRepository{base: db}
}

func (r *rulingRepository) Create(ctx context.Context, ruling *models.Ruling) error {
	return translateError(dbFromContext(ctx, r.base).Create(ruling).Error)
}

func (r *rulingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Ruling, error) {
	var ruling models.Ruling
	err := dbFromContext(ctx, r.base).
		Preload("Judges").
		Preload("Tags").
		Preload("Annotations").
		First(&ruling, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &ruling, nil
}

func (r *rulingRepository) Update(ctx context.Context, ruling *models.Ruling) error {
	return translateError(dbFromContext(ctx, r.base).Save(ruling).Error)
}

func (r *rulingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := dbFromContext(ctx, r.base).Delete(&models.Ruling{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *rulingRepository) List(ctx context.Context, criteria RulingCriteria) ([]models.Ruling, int64, error) {
	db := dbFromContext(ctx, r.base).Model(&models.Ruling{})

	if criteria.Court != "" {
		db = db.Where("court = ?", criteria.Court)
	}
	if criteria.Category != "" {
		db = db.Where("category = ?", criteria.Category)
	}
	if criteria.Landmark != nil {
		db = db.Where("is_landmark = ?", *criteria.Landmark)
	}
	if criteria.Search != "" {
		like := "%" + criteria.Search + "%"
		db = db.Where("title ILIKE ? OR case_number ILIKE ? OR summary ILIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rulings []models.Ruling
	err := db.Order("date_of_ruling DESC NULLS LAST").
		Limit(criteria.Limit).Offset(criteria.Offset).
		Find(&rulings).Error
	return rulings, total, err
}

func (r *rulingRepository) CreateAnnotation(ctx context.Context, annotation *models.RulingAnnotation) error {
	return translateError(dbFromContext(ctx, r.base).Create(annotation).Error)
}

func (r *rulingRepository) ListAnnotations(ctx context.Context, rulingID uuid.UUID) ([]models.RulingAnnotation, error) {
	var annotations []models.RulingAnnotation
	err := dbFromContext(ctx, r.base).
		Where("ruling_id = ?", rulingID).
		Order("created_at ASC").
		Find(&annotations).Error
	return annotations, err
}

func (r *rulingRepository) ListJudges(ctx context.Context) ([]models.Judge, error) {
	var judges []models.Judge
	err := dbFromContext(ctx, r.base).Order("name ASC").Find(&judges).Error
	return judges, err
}

func (r *rulingRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := dbFromContext(ctx, r.base).Order("name ASC").Find(&tags).Error
	return tags, err
}
