package product

import (
	"context"

	"github.com/angelmondragon/lojavirtual-backend/internal/repo"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	"gorm.io/gorm"
)

type productRow struct {
	models.Product `gorm:"embedded"`
	CategoryName   *string `gorm:"column:categoria_nome"`
	CompanyName    *string `gorm:"column:empresa_nome"`
}

// Repository persists produtos.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) detailQuery(ctx context.Context) *gorm.DB {
	return r.DB(ctx).
		Table("produtos AS p").
		Select("p.*, c.nome AS categoria_nome, e.nome AS empresa_nome").
		Joins("LEFT JOIN categorias c ON p.id_categoria = c.id").
		Joins("LEFT JOIN empresas e ON p.id_empresa = e.id")
}

// List returns every product with its category and company names, ordered by name.
func (r *Repository) List(ctx context.Context) ([]productRow, error) {
	rows := []productRow{}
	if err := r.detailQuery(ctx).Order("p.nome").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindDetail returns gorm.ErrRecordNotFound when the product does not exist.
func (r *Repository) FindDetail(ctx context.Context, id int64) (*productRow, error) {
	var rows []productRow
	if err := r.detailQuery(ctx).Where("p.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.DB(ctx).Create(product).Error
}

func (r *Repository) Update(ctx context.Context, id int64, columns map[string]any) (int64, error) {
	res := r.DB(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(columns)
	return res.RowsAffected, res.Error
}

func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Product{})
	return res.RowsAffected, res.Error
}
