package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/lojavirtual-backend/pkg/db"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/lojavirtual-backend/pkg/errors"
	"github.com/angelmondragon/lojavirtual-backend/pkg/metrics"
	"gorm.io/gorm"
)

const (
	MsgItemFieldsRequired = "ID do produto e quantidade são necessários."
	MsgProductNotFound    = "Produto não encontrado."
	MsgInsufficientStock  = "Estoque insuficiente."
	MsgItemNotFound       = "Item não encontrado no carrinho."
)

// Service owns the user's active cart.
type Service interface {
	GetOrCreateActive(ctx context.Context, userID int64) (*models.Cart, error)
	List(ctx context.Context, userID int64) (*CartView, error)
	AddItem(ctx context.Context, userID int64, input AddItemInput) (*CartItemDTO, error)
	RemoveItem(ctx context.Context, userID, productID int64) error
}

type repository interface {
	FindActive(ctx context.Context, userID int64) (*models.Cart, error)
	CreateCart(ctx context.Context, cart *models.Cart) error
	ListItems(ctx context.Context, cartID int64) ([]ItemView, error)
	FindProduct(ctx context.Context, productID int64) (*models.Product, error)
	InsertItem(ctx context.Context, item *models.CartItem) error
	IncrementItem(ctx context.Context, cartID, productID int64, qty int) (*models.CartItem, error)
	DeleteItem(ctx context.Context, cartID, productID int64) (int64, error)
}

type service struct {
	repo    repository
	metrics *metrics.CartMetrics
}

// NewService builds the cart service. m may be nil.
func NewService(repo repository, m *metrics.CartMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{repo: repo, metrics: m}, nil
}

// GetOrCreateActive returns the user's active cart, creating it on first use.
// Losing the insert race to a concurrent request re-reads the winner's cart.
func (s *service) GetOrCreateActive(ctx context.Context, userID int64) (*models.Cart, error) {
	cart, err := s.repo.FindActive(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = &models.Cart{UserID: userID}
	if err := s.repo.CreateCart(ctx, cart); err != nil {
		if !db.IsUniqueViolation(err, "") {
			return nil, err
		}
		return s.repo.FindActive(ctx, userID)
	}
	s.metrics.IncCartCreated()
	return cart, nil
}

func (s *service) List(ctx context.Context, userID int64) (*CartView, error) {
	cart, err := s.GetOrCreateActive(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao buscar carrinho.")
	}
	items, err := s.repo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao buscar carrinho.")
	}
	if items == nil {
		items = []ItemView{}
	}
	return &CartView{ID: cart.ID, Items: items}, nil
}

// AddItem checks the requested quantity against the product's current stock
// and either merges into the existing line (price kept) or inserts a new line
// priced at the product's current price.
func (s *service) AddItem(ctx context.Context, userID int64, input AddItemInput) (*CartItemDTO, error) {
	if input.ProductID <= 0 || input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, MsgItemFieldsRequired)
	}

	cart, err := s.GetOrCreateActive(ctx, userID)
	if err != nil {
		return nil, addError(err)
	}

	product, err := s.repo.FindProduct(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, MsgProductNotFound)
		}
		return nil, addError(err)
	}
	if product.StockQuantity < input.Quantity {
		s.metrics.IncStockRejection()
		return nil, pkgerrors.New(pkgerrors.CodeInsufficientStock, MsgInsufficientStock).
			WithDetails(map[string]int{"disponivel": product.StockQuantity, "solicitado": input.Quantity})
	}

	item, err := s.merge(ctx, cart.ID, input)
	if err == nil {
		return FromItemModel(item), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, addError(err)
	}

	item = &models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  input.Quantity,
		UnitPrice: product.Price,
	}
	if err := s.repo.InsertItem(ctx, item); err != nil {
		if !db.IsUniqueViolation(err, "") {
			return nil, addError(err)
		}
		// a concurrent add created the line first
		merged, mergeErr := s.merge(ctx, cart.ID, input)
		if mergeErr != nil {
			return nil, addError(mergeErr)
		}
		return FromItemModel(merged), nil
	}
	s.metrics.IncItemAdded(metrics.AddResultInserted)
	return FromItemModel(item), nil
}

func (s *service) merge(ctx context.Context, cartID int64, input AddItemInput) (*models.CartItem, error) {
	item, err := s.repo.IncrementItem(ctx, cartID, input.ProductID, input.Quantity)
	if err != nil {
		return nil, err
	}
	s.metrics.IncItemAdded(metrics.AddResultMerged)
	return item, nil
}

func (s *service) RemoveItem(ctx context.Context, userID, productID int64) error {
	cart, err := s.GetOrCreateActive(ctx, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao remover item do carrinho.")
	}
	affected, err := s.repo.DeleteItem(ctx, cart.ID, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao remover item do carrinho.")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, MsgItemNotFound)
	}
	s.metrics.IncItemRemoved()
	return nil
}

func addError(err error) error {
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao adicionar item ao carrinho.")
}
