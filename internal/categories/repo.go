package categories

import (
	"context"

	"github.com/angelmondragon/lojavirtual-backend/internal/repo"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists categorias.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.DB(ctx).Order("nome").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := r.DB(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *Repository) Create(ctx context.Context, category *models.Category) error {
	return r.DB(ctx).Create(category).Error
}

func (r *Repository) Update(ctx context.Context, id int64, columns map[string]any) (int64, error) {
	res := r.DB(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(columns)
	return res.RowsAffected, res.Error
}

// Delete removes the category. Products referencing it keep existing with a
// NULL id_categoria (ON DELETE SET NULL).
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Category{})
	return res.RowsAffected, res.Error
}
