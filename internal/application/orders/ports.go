package orders

import (
	"context"

	"github.com/udining/pos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción única: los repos que recibe el
// callback están atados a esa transacción y todo lo escrito a través de ellos
// se confirma o se descarta en bloque.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ordenes repository.OrdenRepository,
		documentos repository.DocumentoRepository,
		consecutivos repository.ConsecutivoRepository,
	) error) error
}
