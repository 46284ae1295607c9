package address

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/lojavirtual-backend/pkg/db"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/lojavirtual-backend/pkg/errors"
	"gorm.io/gorm"
)

const (
	MsgCreateFieldsRequired = "Campos obrigatórios: id_empresa, logradouro, cidade, estado, cep"
	MsgUpdateFieldsRequired = "Campos obrigatórios: logradouro, cidade, estado, cep"
	MsgUnknownCompany       = "Empresa informada não existe."
	MsgNotFound             = "Endereço não encontrado."
)

type Service interface {
	ListByCompany(ctx context.Context, companyID int64) ([]AddressDTO, error)
	Create(ctx context.Context, input AddressInput) (*AddressDTO, error)
	Update(ctx context.Context, id int64, input AddressInput) (*AddressDTO, error)
	Delete(ctx context.Context, id int64) error
}

type repository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]models.Address, error)
	FindByID(ctx context.Context, id int64) (*models.Address, error)
	Create(ctx context.Context, address *models.Address) error
	Update(ctx context.Context, id int64, columns map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type service struct {
	repo repository
	now  func() time.Time
}

// NewService builds the address service. now defaults to time.Now.
func NewService(repo repository, now func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("address repository required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, now: now}, nil
}

func (s *service) ListByCompany(ctx context.Context, companyID int64) ([]AddressDTO, error) {
	rows, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao buscar endereços.")
	}
	out := make([]AddressDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input AddressInput) (*AddressDTO, error) {
	input = input.normalized()
	if input.CompanyID == 0 || !input.hasPostalFields() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, MsgCreateFieldsRequired)
	}

	address := input.toModel()
	if err := s.repo.Create(ctx, address); err != nil {
		if db.IsForeignKeyViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, MsgUnknownCompany).WithDetails(db.ViolationDetail(err))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao criar endereço.")
	}
	return FromModel(address), nil
}

func (s *service) Update(ctx context.Context, id int64, input AddressInput) (*AddressDTO, error) {
	input = input.normalized()
	if !input.hasPostalFields() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, MsgUpdateFieldsRequired)
	}

	affected, err := s.repo.Update(ctx, id, input.columns(s.now().UTC()))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao atualizar endereço.")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFound)
	}

	address, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFound)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao atualizar endereço.")
	}
	return FromModel(address), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao deletar endereço.")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, MsgNotFound)
	}
	return nil
}

func trim(value string) string {
	return strings.TrimSpace(value)
}
