package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductDTO is a product row enriched with the display names of its
// category and company.
type ProductDTO struct {
	ID            int64           `json:"id"`
	Name          string          `json:"nome"`
	Description   *string         `json:"descricao"`
	Price         decimal.Decimal `json:"preco"`
	StockQuantity int             `json:"quantidade_estoque"`
	CategoryID    *int64          `json:"id_categoria"`
	CompanyID     int64           `json:"id_empresa"`
	CreatedAt     time.Time       `json:"criado_em"`
	CategoryName  *string         `json:"categoria_nome"`
	CompanyName   *string         `json:"empresa_nome"`
}

// ProductInput is the body accepted by create and update. Price and stock are
// pointers so an explicit zero is distinguishable from an absent field.
type ProductInput struct {
	Name          string           `json:"nome" validate:"required"`
	Description   *string          `json:"descricao"`
	Price         *decimal.Decimal `json:"preco" validate:"required"`
	StockQuantity *int             `json:"quantidade_estoque" validate:"required"`
	CategoryID    *int64           `json:"id_categoria"`
	CompanyID     int64            `json:"id_empresa" validate:"required"`
}

func (in ProductInput) columns() map[string]any {
	return map[string]any{
		"nome":               in.Name,
		"descricao":          in.Description,
		"preco":              *in.Price,
		"quantidade_estoque": *in.StockQuantity,
		"id_categoria":       in.CategoryID,
		"id_empresa":         in.CompanyID,
	}
}

func (r productRow) toDTO() ProductDTO {
	return ProductDTO{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		CategoryID:    r.CategoryID,
		CompanyID:     r.CompanyID,
		CreatedAt:     r.CreatedAt,
		CategoryName:  r.CategoryName,
		CompanyName:   r.CompanyName,
	}
}
