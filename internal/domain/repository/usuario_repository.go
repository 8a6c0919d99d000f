package repository

import (
	"context"

	"github.com/udining/pos-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia de usuarios.
// Los Get devuelven (nil, nil) cuando el usuario no existe.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByCedula(ctx context.Context, cedula string) (*entity.Usuario, error)
	List(ctx context.Context) ([]*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) error
}
