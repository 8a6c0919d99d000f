package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/internal/infrastructure/store"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository. Acepta Store o Tx (Querier).
type UsuarioRepo struct {
	q store.Querier
}

// NewUsuarioRepository construye el adaptador de persistencia de usuarios.
func NewUsuarioRepository(q store.Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColumns = `cedula, tipo_documento, nombre, COALESCE(telefono, ''), correo,
	COALESCE(codigo_qr, ''), COALESCE(fecha_registro, ''), validacion_legal,
	COALESCE(fecha_validacion_legal, ''), terminos_aceptados,
	COALESCE(fecha_aceptacion_terminos, ''), estado`

// Create persiste un nuevo usuario. Una cédula o código QR repetido produce
// domain.ErrDuplicate (traducción del adaptador de store).
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (cedula, tipo_documento, nombre, telefono, correo, codigo_qr,
			fecha_registro, validacion_legal, fecha_validacion_legal, terminos_aceptados,
			fecha_aceptacion_terminos, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	err := r.q.Exec(ctx, query,
		u.Cedula, u.TipoDocumento, u.Nombre, u.Telefono, u.Correo, nullIfEmpty(u.CodigoQR),
		u.FechaRegistro, u.ValidacionLegal, u.FechaValidacionLegal, u.TerminosAceptados,
		u.FechaAceptacionTerminos, u.Estado,
	)
	if err != nil {
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByCedula obtiene un usuario por cédula. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByCedula(ctx context.Context, cedula string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE cedula = $1`
	u, err := scanUsuario(r.q.QueryRow(ctx, query, cedula))
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// List devuelve todos los usuarios registrados.
func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios ORDER BY cedula`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables del usuario.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	// Placeholders en orden ascendente de aparición: SQLite los indexa por
	// primera aparición en el texto, no por el número.
	query := `
		UPDATE usuarios
		SET nombre = $1, telefono = $2, correo = $3, estado = $4
		WHERE cedula = $5`
	if err := r.q.Exec(ctx, query, u.Nombre, u.Telefono, u.Correo, u.Estado, u.Cedula); err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

func scanUsuario(row store.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.Cedula, &u.TipoDocumento, &u.Nombre, &u.Telefono, &u.Correo,
		&u.CodigoQR, &u.FechaRegistro, &u.ValidacionLegal,
		&u.FechaValidacionLegal, &u.TerminosAceptados,
		&u.FechaAceptacionTerminos, &u.Estado,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
