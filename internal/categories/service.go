package categories

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
	MsgNameRequired = "Nome é um campo obrigatório."
	MsgDuplicate    = "Categoria com este nome já existe."
	MsgNotFound     = "Categoria não encontrada."
)

type Service interface {
	List(ctx context.Context) ([]CategoryDTO, error)
	Get(ctx context.Context, id int64) (*CategoryDTO, error)
	Create(ctx context.Context, input CategoryInput) (*CategoryDTO, error)
	Update(ctx context.Context, id int64, input CategoryInput) (*CategoryDTO, error)
	Delete(ctx context.Context, id int64) error
}

type repository interface {
	List(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id int64, columns map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type service struct {
	repo repository
}

func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao buscar categorias.")
	}
	out := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*CategoryDTO, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFound)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao buscar categoria.")
	}
	return FromModel(category), nil
}

func (s *service) Create(ctx context.Context, input CategoryInput) (*CategoryDTO, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, MsgNameRequired)
	}

	category := input.toModel()
	if err := s.repo.Create(ctx, category); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, duplicate(err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao criar categoria.")
	}
	return FromModel(category), nil
}

func (s *service) Update(ctx context.Context, id int64, input CategoryInput) (*CategoryDTO, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, MsgNameRequired)
	}

	affected, err := s.repo.Update(ctx, id, input.columns())
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, duplicate(err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao atualizar categoria.")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFound)
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao atualizar categoria.")
	}
	return FromModel(category), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao deletar categoria.")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFound)
	}
	return nil
}

func duplicate(err error) error {
	return pkgerrors.Wrap(pkgerrors.CodeConflict, err, MsgDuplicate).WithDetails(db.ViolationDetail(err))
}
