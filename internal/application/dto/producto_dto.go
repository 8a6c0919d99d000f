package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest alta de un producto en el catálogo.
type CreateProductoRequest struct {
	Codigo      string          `json:"codigo" validate:"required"`
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria" validate:"required"`
	Precio      decimal.Decimal `json:"precio" validate:"required"`
}
