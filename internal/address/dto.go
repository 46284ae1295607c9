package address

import (
	"time"

	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
)

type AddressDTO struct {
	ID         int64      `json:"id"`
	CompanyID  int64      `json:"id_empresa"`
	Street     string     `json:"logradouro"`
	Number     *string    `json:"numero"`
	Complement *string    `json:"complemento"`
	District   *string    `json:"bairro"`
	City       string     `json:"cidade"`
	State      string     `json:"estado"`
	PostalCode string     `json:"cep"`
	CreatedAt  time.Time  `json:"criado_em"`
	UpdatedAt  *time.Time `json:"atualizado_em"`
}

// AddressInput is the body of create. Update ignores CompanyID: an address
// never moves between companies.
type AddressInput struct {
	CompanyID  int64   `json:"id_empresa"`
	Street     string  `json:"logradouro" validate:"required"`
	Number     *string `json:"numero"`
	Complement *string `json:"complemento"`
	District   *string `json:"bairro"`
	City       string  `json:"cidade" validate:"required"`
	State      string  `json:"estado" validate:"required"`
	PostalCode string  `json:"cep" validate:"required"`
}

func FromModel(a *models.Address) *AddressDTO {
	if a == nil {
		return nil
	}
	return &AddressDTO{
		ID:         a.ID,
		CompanyID:  a.CompanyID,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (in AddressInput) normalized() AddressInput {
	in.Street = trim(in.Street)
	in.City = trim(in.City)
	in.State = trim(in.State)
	in.PostalCode = trim(in.PostalCode)
	return in
}

func (in AddressInput) hasPostalFields() bool {
	return in.Street != "" && in.City != "" && in.State != "" && in.PostalCode != ""
}

func (in AddressInput) toModel() *models.Address {
	return &models.Address{
		CompanyID:  in.CompanyID,
		Street:     in.Street,
		Number:     in.Number,
		Complement: in.Complement,
		District:   in.District,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
	}
}

func (in AddressInput) columns(now time.Time) map[string]any {
	return map[string]any{
		"logradouro":    in.Street,
		"numero":        in.Number,
		"complemento":   in.Complement,
		"bairro":        in.District,
		"cidade":        in.City,
		"estado":        in.State,
		"cep":           in.PostalCode,
		"atualizado_em": now,
	}
}
