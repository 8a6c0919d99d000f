// Package orders implementa el flujo de toma de órdenes: validación, cálculo
// de totales, numeración, persistencia transaccional de la orden con sus líneas
// y emisión del documento equivalente.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/udining/pos-api/internal/application/audit"
	"github.com/udining/pos-api/internal/application/dto"
	"github.com/udining/pos-api/internal/domain"
	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/fiscal"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/pkg/config"
)

// PrefijoOrden es la clave reservada bajo la que se numeran las órdenes en la
// tabla de consecutivos: una sola secuencia global, sin corte diario (fecha vacía).
const PrefijoOrden = "ORDEN"

// tasaIVA tarifa general vigente aplicada al subtotal de la orden.
var tasaIVA = decimal.NewFromFloat(0.19)

var validate = validator.New()

// UseCase orquesta el ciclo de vida de las órdenes.
type UseCase struct {
	tx        TxRunner
	ordenes   repository.OrdenRepository
	usuarios  repository.UsuarioRepository
	cufe      *fiscal.CufeCalculator
	auditor   *audit.Recorder
	fiscalCfg config.FiscalConfig

	// ahora es inyectable para fijar el reloj en pruebas.
	ahora func() time.Time
}

// NewUseCase construye el caso de uso. El repo de órdenes que recibe es el de
// lectura (fuera de transacción); las escrituras del flujo de creación pasan
// por el TxRunner.
func NewUseCase(
	tx TxRunner,
	ordenes repository.OrdenRepository,
	usuarios repository.UsuarioRepository,
	cufe *fiscal.CufeCalculator,
	auditor *audit.Recorder,
	fiscalCfg config.FiscalConfig,
) *UseCase {
	return &UseCase{
		tx:        tx,
		ordenes:   ordenes,
		usuarios:  usuarios,
		cufe:      cufe,
		auditor:   auditor,
		fiscalCfg: fiscalCfg,
		ahora:     time.Now,
	}
}

// List devuelve todas las órdenes con nombre de usuario y punto de venta.
func (uc *UseCase) List(ctx context.Context) ([]*entity.OrdenResumen, error) {
	return uc.ordenes.ListConNombres(ctx)
}

// Get devuelve una orden con sus líneas. domain.ErrNotFound si no existe.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.OrdenConDetalles, error) {
	orden, err := uc.ordenes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.ordenes.GetDetalles(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.OrdenConDetalles{Orden: *orden, Detalles: detalles}, nil
}

// Create valida la solicitud, calcula los totales (IVA 19 % sobre el subtotal)
// y dentro de una sola transacción: asigna el número de orden, inserta la orden
// y sus líneas, asigna el consecutivo diario del documento, calcula el CUFE e
// inserta el documento equivalente. Nada queda escrito si algún paso falla.
// La auditoría se registra después del commit.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrdenRequest, ip string) (*dto.CreateOrdenResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	usuario, err := uc.usuarios.GetByCedula(ctx, in.Cedula)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}

	subtotal := decimal.Zero
	for _, item := range in.Items {
		subtotal = subtotal.Add(item.PrecioUnitario.Mul(decimal.NewFromInt(item.Cantidad)))
	}
	impuestos := subtotal.Mul(tasaIVA)
	total := subtotal.Add(impuestos)

	emision := uc.ahora().UTC()
	idOrden := uuid.New().String()

	var resp *dto.CreateOrdenResponse
	err = uc.tx.Run(ctx, func(
		ordenes repository.OrdenRepository,
		documentos repository.DocumentoRepository,
		consecutivos repository.ConsecutivoRepository,
	) error {
		numeroOrden, err := consecutivos.Siguiente(ctx, PrefijoOrden, "")
		if err != nil {
			return fmt.Errorf("asignar numero de orden: %w", err)
		}

		orden := &entity.Orden{
			ID:               idOrden,
			Numero:           numeroOrden,
			Cedula:           in.Cedula,
			IDPuntoVenta:     in.IDPuntoVenta,
			Fecha:            emision.Format(time.RFC3339),
			Subtotal:         subtotal,
			Impuestos:        impuestos,
			Total:            total,
			MetodoPago:       in.MetodoPago,
			MetodoValidacion: in.MetodoValidacion,
			Estado:           entity.EstadoOrdenCompletada,
		}
		if err := ordenes.Create(ctx, orden); err != nil {
			return err
		}

		for _, item := range in.Items {
			detalle := &entity.DetalleOrden{
				ID:             uuid.New().String(),
				IDOrden:        idOrden,
				IDProducto:     item.IDProducto,
				Cantidad:       item.Cantidad,
				PrecioUnitario: item.PrecioUnitario,
				Subtotal:       item.PrecioUnitario.Mul(decimal.NewFromInt(item.Cantidad)),
			}
			if err := ordenes.CreateDetalle(ctx, detalle); err != nil {
				return err
			}
		}

		consecutivo, err := consecutivos.Siguiente(ctx, uc.fiscalCfg.Prefijo, fiscal.FechaDocumento(emision))
		if err != nil {
			return fmt.Errorf("asignar consecutivo del documento: %w", err)
		}
		numeroDoc, err := fiscal.NumeroDocumento(uc.fiscalCfg.Prefijo, emision, consecutivo)
		if err != nil {
			return err
		}

		cufe, err := uc.cufe.Calculate(&fiscal.CufeParams{
			NumeroDocumento: numeroDoc,
			FechaEmision:    emision.Format(time.RFC3339),
			Total:           total,
			NIT:             uc.fiscalCfg.NIT,
		})
		if err != nil {
			return err
		}

		doc := &entity.DocumentoEquivalente{
			ID:                     uuid.New().String(),
			IDOrden:                idOrden,
			NumeroDocumento:        numeroDoc,
			TipoDocumento:          entity.TipoDocumentoEquivalente,
			CUFE:                   cufe,
			FechaEmision:           emision.Format(time.RFC3339),
			EstadoEnvio:            entity.EnvioPendiente,
			CumpleResolucion000165: 1,
		}
		if err := documentos.Create(ctx, doc); err != nil {
			return err
		}

		resp = &dto.CreateOrdenResponse{
			Message:         "Orden creada y documento equivalente generado",
			IDOrden:         idOrden,
			NumeroDocumento: numeroDoc,
			CUFE:            cufe,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Registrar(ctx, "ordenes", idOrden, entity.AccionInsert, nil, in, "", in.Cedula, ip)
	return resp, nil
}

// CambiarEstado mueve la orden a un estado del conjunto permitido y registra
// la transición en la bitácora. Estados fuera del conjunto producen
// domain.ErrInvalidInput sin tocar la orden.
func (uc *UseCase) CambiarEstado(ctx context.Context, id, estado, ip string) error {
	if !entity.EstadoOrdenValido(estado) {
		return domain.ErrInvalidInput
	}
	orden, err := uc.ordenes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if orden == nil {
		return domain.ErrNotFound
	}
	if err := uc.ordenes.UpdateEstado(ctx, id, estado); err != nil {
		return err
	}
	uc.auditor.Registrar(ctx, "ordenes", id, entity.AccionUpdate, orden, map[string]string{"estado": estado}, "", orden.Cedula, ip)
	return nil
}
