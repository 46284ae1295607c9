package companies

import (
	"context"

	"github.com/angelmondragon/lojavirtual-backend/internal/repo"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists empresas.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// List returns every company ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Company, error) {
	companies := []models.Company{}
	if err := r.DB(ctx).Order("nome").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Company, error) {
	var company models.Company
	if err := r.DB(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *Repository) Create(ctx context.Context, company *models.Company) error {
	return r.DB(ctx).Create(company).Error
}

// Update overwrites the given columns and reports how many rows matched.
func (r *Repository) Update(ctx context.Context, id int64, columns map[string]any) (int64, error) {
	res := r.DB(ctx).Model(&models.Company{}).Where("id = ?", id).Updates(columns)
	return res.RowsAffected, res.Error
}

// Delete removes the company and reports how many rows were deleted.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Company{})
	return res.RowsAffected, res.Error
}
