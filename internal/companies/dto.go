package companies

import (
	"time"

	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
)

// CompanyDTO is the wire shape of an empresa.
type CompanyDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Email     string    `json:"email"`
	Phone     *string   `json:"telefone"`
	Logo      *string   `json:"logo"`
	CreatedAt time.Time `json:"criado_em"`
}

// CompanyInput is the body accepted by create and update.
type CompanyInput struct {
	Name  string  `json:"nome" validate:"required"`
	CNPJ  string  `json:"cnpj" validate:"required"`
	Email string  `json:"email" validate:"required"`
	Phone *string `json:"telefone"`
	Logo  *string `json:"logo"`
}

func FromModel(c *models.Company) *CompanyDTO {
	if c == nil {
		return nil
	}
	return &CompanyDTO{
		ID:        c.ID,
		Name:      c.Name,
		CNPJ:      c.CNPJ,
		Email:     c.Email,
		Phone:     c.Phone,
		Logo:      c.Logo,
		CreatedAt: c.CreatedAt,
	}
}

func (in CompanyInput) normalized() CompanyInput {
	in.Name = trim(in.Name)
	in.CNPJ = trim(in.CNPJ)
	in.Email = trim(in.Email)
	return in
}

func (in CompanyInput) valid() bool {
	return in.Name != "" && in.CNPJ != "" && in.Email != ""
}

func (in CompanyInput) toModel() *models.Company {
	return &models.Company{
		Name:  in.Name,
		CNPJ:  in.CNPJ,
		Email: in.Email,
		Phone: in.Phone,
		Logo:  in.Logo,
	}
}

func (in CompanyInput) columns() map[string]any {
	return map[string]any{
		"nome":     in.Name,
		"cnpj":     in.CNPJ,
		"email":    in.Email,
		"telefone": in.Phone,
		"logo":     in.Logo,
	}
}
