package entity

import "github.com/shopspring/decimal"

// Producto del catálogo de los puntos de venta.
type Producto struct {
	ID            string          `json:"id"`
	Codigo        string          `json:"codigo"`
	Nombre        string          `json:"nombre"`
	Descripcion   string          `json:"descripcion"`
	Categoria     string          `json:"categoria"`
	Precio        decimal.Decimal `json:"precio"`
	Disponible    int             `json:"disponible"`
	FechaCreacion string          `json:"fecha_creacion"`
}
