package cart

import (
	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// CartView is the body of GET /carrinho.
type CartView struct {
	ID    int64      `json:"id"`
	Items []ItemView `json:"itens"`
}

// ItemView is one cart line joined with product display fields. ProductID is
// rendered as "id".
type ItemView struct {
	ProductID   int64           `json:"id" gorm:"column:id"`
	Name        string          `json:"nome" gorm:"column:nome"`
	Description *string         `json:"descricao" gorm:"column:descricao"`
	Quantity    int             `json:"quantidade" gorm:"column:quantidade"`
	UnitPrice   decimal.Decimal `json:"preco_unitario" gorm:"column:preco_unitario"`
}

// AddItemInput is the body of POST /carrinho/adicionar. Zero values are
// treated as missing.
type AddItemInput struct {
	ProductID int64 `json:"id_produto"`
	Quantity  int   `json:"quantidade"`
}

// CartItemDTO is the stored carrinho_itens row.
type CartItemDTO struct {
	ID        int64           `json:"id"`
	CartID    int64           `json:"id_carrinho"`
	ProductID int64           `json:"id_produto"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"preco_unitario"`
}

func FromItemModel(item *models.CartItem) *CartItemDTO {
	if item == nil {
		return nil
	}
	return &CartItemDTO{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
	}
}
