package categories

import "github.com/angelmondragon/lojavirtual-backend/pkg/db/models"

type CategoryDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nome"`
	Description *string `json:"descricao"`
}

// CategoryInput is the body accepted by create and update.
type CategoryInput struct {
	Name        string  `json:"nome" validate:"required"`
	Description *string `json:"descricao"`
}

func FromModel(c *models.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func (in CategoryInput) toModel() *models.Category {
	return &models.Category{Name: in.Name, Description: in.Description}
}

func (in CategoryInput) columns() map[string]any {
	return map[string]any{
		"nome":      in.Name,
		"descricao": in.Description,
	}
}
