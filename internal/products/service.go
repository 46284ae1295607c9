package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/lojavirtual-backend/pkg/db"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/lojavirtual-backend/pkg/errors"
	"gorm.io/gorm"
)

const (
	MsgRequiredFields   = "Nome, preço, estoque e id da empresa são obrigatórios."
	MsgNegativeValues   = "Preço e estoque não podem ser negativos."
	MsgUnknownReference = "Empresa ou categoria informada não existe."
	MsgNotFound         = "Produto não encontrado."
)

// Service exposes product catalog operations.
type Service interface {
	List(ctx context.Context) ([]ProductDTO, error)
	Get(ctx context.Context, id int64) (*ProductDTO, error)
	Create(ctx context.Context, input ProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id int64, input ProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id int64) error
}

type repository interface {
	List(ctx context.Context) ([]productRow, error)
	FindDetail(ctx context.Context, id int64) (*productRow, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id int64, columns map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type service struct {
	repo repository
}

func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao buscar produtos.")
	}
	out := make([]ProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDTO())
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ProductDTO, error) {
	return s.detail(ctx, id, "Erro ao buscar produto.")
}

func (s *service) Create(ctx context.Context, input ProductInput) (*ProductDTO, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         *input.Price,
		StockQuantity: *input.StockQuantity,
		CategoryID:    input.CategoryID,
		CompanyID:     input.CompanyID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, writeError(err, "Erro ao criar produto.")
	}
	return s.detail(ctx, product.ID, "Erro ao criar produto.")
}

func (s *service) Update(ctx context.Context, id int64, input ProductInput) (*ProductDTO, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	affected, err := s.repo.Update(ctx, id, input.columns())
	if err != nil {
		return nil, writeError(err, "Erro ao atualizar produto.")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFound)
	}
	return s.detail(ctx, id, "Erro ao atualizar produto.")
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao deletar produto.")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFound)
	}
	return nil
}

func (s *service) detail(ctx context.Context, id int64, internalMsg string) (*ProductDTO, error) {
	row, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFound)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, internalMsg)
	}
	dto := row.toDTO()
	return &dto, nil
}

func validateInput(input *ProductInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.Price == nil || input.StockQuantity == nil || input.CompanyID == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgRequiredFields)
	}
	if input.Price.IsNegative() || *input.StockQuantity < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgNegativeValues)
	}
	return nil
}

func writeError(err error, internalMsg string) error {
	if db.IsForeignKeyViolation(err, "") {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, MsgUnknownReference).WithDetails(db.ViolationDetail(err))
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, internalMsg)
}
