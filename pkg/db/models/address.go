package models

import "time"

// Address is a postal address belonging to a company.
type Address struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement"`
	CompanyID  int64      `gorm:"column:id_empresa;not null"`
	Street     string     `gorm:"column:logradouro;not null"`
	Number     *string    `gorm:"column:numero"`
	Complement *string    `gorm:"column:complemento"`
	District   *string    `gorm:"column:bairro"`
	City       string     `gorm:"column:cidade;not null"`
	State      string     `gorm:"column:estado;not null"`
	PostalCode string     `gorm:"column:cep;not null"`
	CreatedAt  time.Time  `gorm:"column:criado_em;autoCreateTime"`
	UpdatedAt  *time.Time `gorm:"column:atualizado_em"`
}

func (Address) TableName() string { return "enderecos" }
