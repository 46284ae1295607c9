package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item owned by exactly one company.
type Product struct {
	ID            int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string          `gorm:"column:nome;not null"`
	Description   *string         `gorm:"column:descricao"`
	Price         decimal.Decimal `gorm:"column:preco;type:numeric(12,2);not null"`
	StockQuantity int             `gorm:"column:quantidade_estoque;not null"`
	CategoryID    *int64          `gorm:"column:id_categoria"`
	CompanyID     int64           `gorm:"column:id_empresa;not null"`
	CreatedAt     time.Time       `gorm:"column:criado_em;autoCreateTime"`
}

func (Product) TableName() string { return "produtos" }
