package models

type Category struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:nome;not null;uniqueIndex:categorias_nome_key"`
	Description *string `gorm:"column:descricao"`
}

func (Category) TableName() string { return "categorias" }
