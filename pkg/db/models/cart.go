package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart belongs to one user. At most one cart per user has Finalized=false;
// the carrinhos_um_ativo_por_usuario partial unique index enforces it.
type Cart struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:id_usuario;not null"`
	Finalized bool      `gorm:"column:finalizado;not null;default:false"`
	CreatedAt time.Time `gorm:"column:criado_em;autoCreateTime"`
}

func (Cart) TableName() string { return "carrinhos" }

// CartItem holds the unit price captured when the product was first added.
type CartItem struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	CartID    int64           `gorm:"column:id_carrinho;not null"`
	ProductID int64           `gorm:"column:id_produto;not null"`
	Quantity  int             `gorm:"column:quantidade;not null"`
	UnitPrice decimal.Decimal `gorm:"column:preco_unitario;type:numeric(12,2);not null"`
}

func (CartItem) TableName() string { return "carrinho_itens" }
