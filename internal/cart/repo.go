package cart

import (
	"context"

	"github.com/angelmondragon/lojavirtual-backend/internal/repo"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists carrinhos and carrinho_itens.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// FindActive loads the user's non-finalized cart.
func (r *Repository) FindActive(ctx context.Context, userID int64) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB(ctx).
		Where("id_usuario = ? AND finalizado = ?", userID, false).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// CreateCart inserts an active cart. A concurrent insert for the same user
// fails on carrinhos_um_ativo_por_usuario.
func (r *Repository) CreateCart(ctx context.Context, cart *models.Cart) error {
	return r.DB(ctx).Create(cart).Error
}

// ListItems returns the cart lines ordered by product name.
func (r *Repository) ListItems(ctx context.Context, cartID int64) ([]ItemView, error) {
	items := []ItemView{}
	err := r.DB(ctx).
		Table("carrinho_itens AS ci").
		Select("p.id, p.nome, p.descricao, ci.quantidade, ci.preco_unitario").
		Joins("JOIN produtos p ON ci.id_produto = p.id").
		Where("ci.id_carrinho = ?", cartID).
		Order("p.nome").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) FindProduct(ctx context.Context, productID int64) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).First(&product, "id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) InsertItem(ctx context.Context, item *models.CartItem) error {
	return r.DB(ctx).Create(item).Error
}

// IncrementItem adds qty to an existing line in a single statement and
// returns the updated row. It returns gorm.ErrRecordNotFound when the cart
// has no line for the product.
func (r *Repository) IncrementItem(ctx context.Context, cartID, productID int64, qty int) (*models.CartItem, error) {
	res := r.DB(ctx).
		Model(&models.CartItem{}).
		Where("id_carrinho = ? AND id_produto = ?", cartID, productID).
		Update("quantidade", gorm.Expr("quantidade + ?", qty))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var item models.CartItem
	err := r.DB(ctx).
		Where("id_carrinho = ? AND id_produto = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) DeleteItem(ctx context.Context, cartID, productID int64) (int64, error) {
	res := r.DB(ctx).
		Where("id_carrinho = ? AND id_produto = ?", cartID, productID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}
