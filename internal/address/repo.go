package address

import (
	"context"

	"github.com/angelmondragon/lojavirtual-backend/internal/repo"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists enderecos.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) ListByCompany(ctx context.Context, companyID int64) ([]models.Address, error) {
	addresses := []models.Address{}
	err := r.DB(ctx).
		Where("id_empresa = ?", companyID).
		Order("id").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Address, error) {
	var address models.Address
	if err := r.DB(ctx).First(&address, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *Repository) Create(ctx context.Context, address *models.Address) error {
	return r.DB(ctx).Create(address).Error
}

func (r *Repository) Update(ctx context.Context, id int64, columns map[string]any) (int64, error) {
	res := r.DB(ctx).Model(&models.Address{}).Where("id = ?", id).Updates(columns)
	return res.RowsAffected, res.Error
}

func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Address{})
	return res.RowsAffected, res.Error
}
