package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/udining/pos-api/internal/application/dto"
	"github.com/udining/pos-api/internal/domain"
	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
)

// ValidacionUseCase registro y consulta de validaciones de acceso.
type ValidacionUseCase struct {
	repo        repository.ValidacionRepository
	usuarioRepo repository.UsuarioRepository
}

// NewValidacionUseCase construye el caso de uso.
func NewValidacionUseCase(repo repository.ValidacionRepository, usuarioRepo repository.UsuarioRepository) *ValidacionUseCase {
	return &ValidacionUseCase{repo: repo, usuarioRepo: usuarioRepo}
}

// Registrar agrega un intento de validación de acceso. El usuario debe existir;
// el resultado (exitosa o no) lo aporta el llamador.
func (uc *ValidacionUseCase) Registrar(ctx context.Context, in dto.CreateValidacionRequest, ip string) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.GetByCedula(ctx, in.Cedula)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrNotFound
	}
	v := &entity.ValidacionAcceso{
		ID:               uuid.New().String(),
		Cedula:           in.Cedula,
		MetodoValidacion: in.MetodoValidacion,
		FechaHora:        time.Now().UTC().Format(time.RFC3339Nano),
		IDPuntoVenta:     in.IDPuntoVenta,
		Exitosa:          in.Exitosa,
		IPValidacion:     ip,
		MensajeError:     in.MensajeError,
	}
	return uc.repo.Create(ctx, v)
}

// List devuelve los intentos registrados.
func (uc *ValidacionUseCase) List(ctx context.Context) ([]*entity.ValidacionAcceso, error) {
	return uc.repo.List(ctx)
}
