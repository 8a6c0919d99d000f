package persistence

import (
	"context"
	"fmt"

	"github.com/udining/pos-api/internal/infrastructure/store"
)

// Sentencias de esquema. El texto es idéntico para PostgreSQL y SQLite:
// tipos TEXT/INTEGER/NUMERIC, sin defaults de timestamp del motor (la aplicación
// escribe las fechas) y upserts ON CONFLICT, válidos en ambos dialectos.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		cedula TEXT PRIMARY KEY,
		tipo_documento TEXT NOT NULL DEFAULT 'CC',
		nombre TEXT NOT NULL,
		telefono TEXT,
		correo TEXT NOT NULL,
		codigo_qr TEXT UNIQUE,
		fecha_registro TEXT,
		validacion_legal INTEGER DEFAULT 0,
		fecha_validacion_legal TEXT,
		terminos_aceptados INTEGER DEFAULT 0,
		fecha_aceptacion_terminos TEXT,
		estado TEXT DEFAULT 'ACTIVO'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_usuarios_qr ON usuarios(codigo_qr)`,
	`CREATE INDEX IF NOT EXISTS idx_usuarios_correo ON usuarios(correo)`,

	`CREATE TABLE IF NOT EXISTS puntos_venta (
		id TEXT PRIMARY KEY,
		codigo TEXT UNIQUE NOT NULL,
		nombre TEXT NOT NULL,
		tipo_servicio TEXT NOT NULL,
		ubicacion TEXT NOT NULL,
		estado TEXT DEFAULT 'ACTIVO',
		fecha_creacion TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS productos (
		id TEXT PRIMARY KEY,
		codigo TEXT UNIQUE NOT NULL,
		nombre TEXT NOT NULL,
		descripcion TEXT,
		categoria TEXT NOT NULL,
		precio NUMERIC NOT NULL,
		disponible INTEGER DEFAULT 1,
		fecha_creacion TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS ordenes (
		id TEXT PRIMARY KEY,
		numero INTEGER UNIQUE NOT NULL,
		cedula TEXT NOT NULL,
		id_punto_venta TEXT NOT NULL,
		fecha TEXT,
		subtotal NUMERIC NOT NULL,
		impuestos NUMERIC DEFAULT 0,
		total NUMERIC NOT NULL,
		metodo_pago TEXT,
		metodo_validacion TEXT,
		estado TEXT DEFAULT 'COMPLETADA',
		FOREIGN KEY(cedula) REFERENCES usuarios(cedula),
		FOREIGN KEY(id_punto_venta) REFERENCES puntos_venta(id)
	)`,

	`CREATE TABLE IF NOT EXISTS detalle_ordenes (
		id TEXT PRIMARY KEY,
		id_orden TEXT NOT NULL,
		id_producto TEXT NOT NULL,
		cantidad INTEGER NOT NULL,
		precio_unitario NUMERIC NOT NULL,
		subtotal NUMERIC NOT NULL,
		notas TEXT,
		FOREIGN KEY(id_orden) REFERENCES ordenes(id) ON DELETE CASCADE,
		FOREIGN KEY(id_producto) REFERENCES productos(id)
	)`,

	`CREATE TABLE IF NOT EXISTS documentos_equivalentes (
		id TEXT PRIMARY KEY,
		id_orden TEXT UNIQUE NOT NULL,
		numero_documento TEXT UNIQUE NOT NULL,
		tipo_documento TEXT DEFAULT 'DOCUMENTO_EQUIVALENTE',
		cufe TEXT UNIQUE,
		qr_documento TEXT,
		fecha_emision TEXT,
		fecha_envio_correo TEXT,
		estado_envio TEXT DEFAULT 'PENDIENTE',
		intentos_envio INTEGER DEFAULT 0,
		url_documento TEXT,
		cumple_resolucion_000165 INTEGER DEFAULT 1,
		hash_documento TEXT,
		FOREIGN KEY(id_orden) REFERENCES ordenes(id)
	)`,

	`CREATE TABLE IF NOT EXISTS facturas (
		id TEXT PRIMARY KEY,
		numero TEXT UNIQUE NOT NULL,
		fecha TEXT,
		cedula TEXT NOT NULL,
		id_orden TEXT,
		total NUMERIC NOT NULL,
		detalle TEXT,
		cufe TEXT,
		qr_factura TEXT,
		estado_envio TEXT DEFAULT 'PENDIENTE',
		FOREIGN KEY(cedula) REFERENCES usuarios(cedula),
		FOREIGN KEY(id_orden) REFERENCES ordenes(id)
	)`,

	`CREATE TABLE IF NOT EXISTS validaciones_acceso (
		id TEXT PRIMARY KEY,
		cedula TEXT NOT NULL,
		metodo_validacion TEXT NOT NULL,
		fecha_hora TEXT,
		id_punto_venta TEXT,
		exitosa INTEGER NOT NULL,
		ip_validacion TEXT,
		mensaje_error TEXT,
		FOREIGN KEY(cedula) REFERENCES usuarios(cedula),
		FOREIGN KEY(id_punto_venta) REFERENCES puntos_venta(id)
	)`,

	`CREATE TABLE IF NOT EXISTS auditoria (
		id TEXT PRIMARY KEY,
		tabla TEXT NOT NULL,
		id_registro TEXT NOT NULL,
		accion TEXT NOT NULL,
		usuario TEXT,
		cedula_relacionada TEXT,
		fecha_hora TEXT,
		datos_anteriores TEXT,
		datos_nuevos TEXT,
		ip_origen TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS configuracion_normativa (
		id TEXT PRIMARY KEY,
		parametro TEXT UNIQUE NOT NULL,
		valor TEXT NOT NULL,
		descripcion TEXT,
		resolucion_aplicable TEXT,
		fecha_vigencia TEXT,
		activo INTEGER DEFAULT 1,
		fecha_actualizacion TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS consecutivos (
		prefijo TEXT NOT NULL,
		fecha TEXT NOT NULL,
		valor INTEGER NOT NULL,
		PRIMARY KEY (prefijo, fecha)
	)`,
}

// Datos de referencia: los tres puntos de venta del campus y los parámetros
// normativos base. Idempotentes gracias a ON CONFLICT DO NOTHING.
var seedStatements = []string{
	`INSERT INTO puntos_venta (id, codigo, nombre, tipo_servicio, ubicacion, estado, fecha_creacion)
	 VALUES
	 ('pv-1', 'PV-CC-01', 'Punto Café Zona Central', 'CAFETERIA', 'Campus Central', 'ACTIVO', ''),
	 ('pv-2', 'PV-CC-02', 'Punto Cipreses', 'CAFETERIA', 'Campus Central', 'ACTIVO', ''),
	 ('pv-3', 'PV-CC-03', 'Café de La Bolsa', 'CAFETERIA', 'Campus Central', 'ACTIVO', '')
	 ON CONFLICT DO NOTHING`,

	`INSERT INTO configuracion_normativa (id, parametro, valor, descripcion, resolucion_aplicable, fecha_vigencia, activo, fecha_actualizacion)
	 VALUES
	 ('cfg-1', 'IVA_TASA', '0.19', 'Tarifa general de IVA aplicada a las ordenes', 'Estatuto Tributario Art. 468', '', 1, ''),
	 ('cfg-2', 'PREFIJO_DOCUMENTO', 'UDINING', 'Prefijo del numero de documento equivalente', 'Resolucion DIAN 000165', '', 1, ''),
	 ('cfg-3', 'NIT_EMPRESA', '860012357-6', 'NIT de la empresa emisora del documento equivalente', 'Resolucion DIAN 000165', '', 1, '')
	 ON CONFLICT DO NOTHING`,
}

// InitSchema crea las tablas y siembra los datos de referencia. Se ejecuta en
// cada arranque; todas las sentencias son idempotentes.
func InitSchema(ctx context.Context, st store.Store) error {
	for _, stmt := range schemaStatements {
		if err := st.ExecScript(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	for _, stmt := range seedStatements {
		if err := st.ExecScript(ctx, stmt); err != nil {
			return fmt.Errorf("sembrar datos: %w", err)
		}
	}
	return nil
}
