package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/udining/pos-api/internal/application/audit"
	"github.com/udining/pos-api/internal/application/dto"
	"github.com/udining/pos-api/internal/domain"
	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/fiscal"
	"github.com/udining/pos-api/internal/domain/repository"
)

// validate instancia compartida por los casos de uso del paquete.
var validate = validator.New()

// UsuarioUseCase casos de uso de usuarios: registro, consulta y actualización.
// Los usuarios nunca se eliminan físicamente.
type UsuarioUseCase struct {
	repo    repository.UsuarioRepository
	auditor *audit.Recorder
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository, auditor *audit.Recorder) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, auditor: auditor}
}

// List devuelve todos los usuarios.
func (uc *UsuarioUseCase) List(ctx context.Context) ([]*entity.Usuario, error) {
	return uc.repo.List(ctx)
}

// GetByCedula obtiene un usuario. Devuelve (nil, nil) si no existe.
func (uc *UsuarioUseCase) GetByCedula(ctx context.Context, cedula string) (*entity.Usuario, error) {
	return uc.repo.GetByCedula(ctx, cedula)
}

// Create registra un usuario nuevo con su token QR generado. Una cédula ya
// registrada produce domain.ErrDuplicate.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}
	tipoDoc := in.TipoDocumento
	if tipoDoc == "" {
		tipoDoc = "CC"
	}
	u := &entity.Usuario{
		Cedula:        in.Cedula,
		TipoDocumento: tipoDoc,
		Nombre:        in.Nombre,
		Telefono:      in.Telefono,
		Correo:        in.Correo,
		CodigoQR:      fiscal.CodigoQRUsuario(in.Cedula),
		FechaRegistro: time.Now().UTC().Format(time.RFC3339),
		Estado:        entity.EstadoUsuarioActivo,
	}
	return uc.repo.Create(ctx, u)
}

// Update actualiza los campos enviados; los vacíos conservan el valor actual.
// Registra la instantánea anterior y la nueva en la bitácora.
func (uc *UsuarioUseCase) Update(ctx context.Context, cedula string, in dto.UpdateUsuarioRequest, ip string) error {
	actual, err := uc.repo.GetByCedula(ctx, cedula)
	if err != nil {
		return err
	}
	if actual == nil {
		return domain.ErrNotFound
	}

	nuevo := *actual
	if in.Nombre != "" {
		nuevo.Nombre = in.Nombre
	}
	if in.Telefono != "" {
		nuevo.Telefono = in.Telefono
	}
	if in.Correo != "" {
		nuevo.Correo = in.Correo
	}
	if in.Estado != "" {
		nuevo.Estado = in.Estado
	}
	if err := uc.repo.Update(ctx, &nuevo); err != nil {
		return err
	}

	uc.auditor.Registrar(ctx, "usuarios", cedula, entity.AccionUpdate, actual, in, "", cedula, ip)
	return nil
}
