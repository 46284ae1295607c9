package models

import "time"

// Company is a vendor; it owns products and addresses.
type Company struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:nome;not null"`
	CNPJ      string    `gorm:"column:cnpj;not null;uniqueIndex:empresas_cnpj_key"`
	Email     string    `gorm:"column:email;not null;uniqueIndex:empresas_email_key"`
	Phone     *string   `gorm:"column:telefone"`
	Logo      *string   `gorm:"column:logo"`
	CreatedAt time.Time `gorm:"column:criado_em;autoCreateTime"`
}

func (Company) TableName() string { return "empresas" }
