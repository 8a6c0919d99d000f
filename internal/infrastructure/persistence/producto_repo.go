package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/internal/infrastructure/store"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository. Acepta Store o Tx (Querier).
type ProductoRepo struct {
	q store.Querier
}

// NewProductoRepository construye el adaptador del catálogo.
func NewProductoRepository(q store.Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, codigo, nombre, COALESCE(descripcion, ''), categoria, precio, disponible, COALESCE(fecha_creacion, '')`

// Create persiste un producto. Un código repetido produce domain.ErrDuplicate.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, codigo, nombre, descripcion, categoria, precio, disponible, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	err := r.q.Exec(ctx, query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Categoria, p.Precio, p.Disponible, p.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	p, err := scanProducto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// List devuelve el catálogo completo.
func (r *ProductoRepo) List(ctx context.Context) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY codigo`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza precio y disponibilidad (los campos mutables del catálogo).
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $1, descripcion = $2, categoria = $3, precio = $4, disponible = $5
		WHERE id = $6`
	if err := r.q.Exec(ctx, query, p.Nombre, p.Descripcion, p.Categoria, p.Precio, p.Disponible, p.ID); err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

func scanProducto(row store.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Categoria, &p.Precio, &p.Disponible, &p.FechaCreacion)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
