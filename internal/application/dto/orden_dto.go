package dto

import (
	"github.com/shopspring/decimal"

	"github.com/udining/pos-api/internal/domain/entity"
)

// ItemOrdenRequest una línea de la orden entrante. El precio unitario lo aporta
// el llamador y no se revalida contra el catálogo.
type ItemOrdenRequest struct {
	IDProducto     string          `json:"id_producto" validate:"required"`
	Cantidad       int64           `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CreateOrdenRequest creación de una orden con sus líneas.
type CreateOrdenRequest struct {
	Cedula           string             `json:"cedula" validate:"required"`
	IDPuntoVenta     string             `json:"id_punto_venta" validate:"required"`
	MetodoPago       string             `json:"metodo_pago"`
	MetodoValidacion string             `json:"metodo_validacion"`
	Items            []ItemOrdenRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateOrdenResponse resultado de la creación: id de la orden, número del
// documento equivalente y su CUFE.
type CreateOrdenResponse struct {
	Message         string `json:"message"`
	IDOrden         string `json:"idOrden"`
	NumeroDocumento string `json:"numero_documento"`
	CUFE            string `json:"cufe"`
}

// OrdenConDetalles cabecera de la orden con sus líneas anidadas.
type OrdenConDetalles struct {
	entity.Orden
	Detalles []*entity.DetalleOrden `json:"detalles"`
}

// CambiarEstadoRequest cambio de estado de una orden.
type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}
