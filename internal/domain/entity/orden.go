package entity

import "github.com/shopspring/decimal"

// Estados del ciclo de vida de una orden.
const (
	EstadoOrdenPendiente  = "PENDIENTE"
	EstadoOrdenPreparando = "PREPARANDO"
	EstadoOrdenCompletada = "COMPLETADA"
	EstadoOrdenCancelada  = "CANCELADA"
)

// EstadoOrdenValido indica si el estado pertenece al conjunto permitido.
func EstadoOrdenValido(estado string) bool {
	switch estado {
	case EstadoOrdenPendiente, EstadoOrdenPreparando, EstadoOrdenCompletada, EstadoOrdenCancelada:
		return true
	}
	return false
}

// Orden es la cabecera de una compra. Invariante: Total = Subtotal + Impuestos,
// con Impuestos = Subtotal * 19% al momento de la creación.
type Orden struct {
	ID               string          `json:"id"`
	Numero           int64           `json:"numero"`
	Cedula           string          `json:"cedula"`
	IDPuntoVenta     string          `json:"id_punto_venta"`
	Fecha            string          `json:"fecha"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Impuestos        decimal.Decimal `json:"impuestos"`
	Total            decimal.Decimal `json:"total"`
	MetodoPago       string          `json:"metodo_pago"`
	MetodoValidacion string          `json:"metodo_validacion"`
	Estado           string          `json:"estado"`
}

// OrdenResumen es la fila del listado de órdenes: cabecera más los nombres del
// usuario y del punto de venta (join de solo lectura).
type OrdenResumen struct {
	Orden
	NombreUsuario string `json:"nombre_usuario"`
	PuntoVenta    string `json:"punto_venta"`
}

// DetalleOrden es una línea de la orden: Subtotal = Cantidad * PrecioUnitario.
// Se crea atómicamente con la orden y se elimina solo en cascada.
type DetalleOrden struct {
	ID             string          `json:"id"`
	IDOrden        string          `json:"id_orden"`
	IDProducto     string          `json:"id_producto"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Notas          string          `json:"notas"`
}
