package companies

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
	MsgRequiredFields    = "Nome, CNPJ e Email são campos obrigatórios."
	MsgDuplicateOnCreate = "CNPJ ou Email já cadastrado."
	MsgDuplicateOnUpdate = "CNPJ ou Email já pertence a outra empresa."
	MsgNotFound          = "Empresa não encontrada."
	MsgNotFoundForUpdate = "Empresa não encontrada para atualizar."
	MsgNotFoundForDelete = "Empresa não encontrada para deletar."
	MsgHasDependents     = "Empresa possui produtos ou endereços vinculados."
)

// Service manages empresas.
type Service interface {
	List(ctx context.Context) ([]CompanyDTO, error)
	Get(ctx context.Context, id int64) (*CompanyDTO, error)
	Create(ctx context.Context, input CompanyInput) (*CompanyDTO, error)
	Update(ctx context.Context, id int64, input CompanyInput) (*CompanyDTO, error)
	Delete(ctx context.Context, id int64) error
}

type repository interface {
	List(ctx context.Context) ([]models.Company, error)
	FindByID(ctx context.Context, id int64) (*models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, id int64, columns map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type service struct {
	repo repository
}

func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("company repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]CompanyDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao buscar empresas.")
	}
	out := make([]CompanyDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*CompanyDTO, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFound)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao buscar empresa.")
	}
	return FromModel(company), nil
}

func (s *service) Create(ctx context.Context, input CompanyInput) (*CompanyDTO, error) {
	input = input.normalized()
	if !input.valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, MsgRequiredFields)
	}

	company := input.toModel()
	if err := s.repo.Create(ctx, company); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, MsgDuplicateOnCreate).WithDetails(db.ViolationDetail(err))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao criar empresa.")
	}
	return FromModel(company), nil
}

func (s *service) Update(ctx context.Context, id int64, input CompanyInput) (*CompanyDTO, error) {
	input = input.normalized()
	if !input.valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, MsgRequiredFields)
	}

	affected, err := s.repo.Update(ctx, id, input.columns())
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, MsgDuplicateOnUpdate).WithDetails(db.ViolationDetail(err))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao atualizar empresa.")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFoundForUpdate)
	}

	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao atualizar empresa.")
	}
	return FromModel(company), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		if db.IsForeignKeyViolation(err, "") {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, MsgHasDependents).WithDetails(db.ViolationDetail(err))
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao deletar empresa.")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFoundForDelete)
	}
	return nil
}

func trim(value string) string {
	return strings.TrimSpace(value)
}
