package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

const businessColumns = `id, usuario_id, categoria_id, nombre_negocio, rfc, descripcion, direccion, telefono, activo, fecha_registro`

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	db Querier
}

// NewBusinessRepository construye el adaptador de persistencia para negocios.
func NewBusinessRepository(db Querier) *BusinessRepo {
	return &BusinessRepo{db: db}
}

// Create persiste un nuevo negocio.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO negocios (id, usuario_id, categoria_id, nombre_negocio, rfc, descripcion, direccion, telefono, activo, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.UsuarioID, b.CategoriaID, b.NombreNegocio, b.RFC,
		b.Descripcion, b.Direccion, b.Telefono, b.Activo, b.FechaRegistro,
	)
	if err != nil {
		return fmt.Errorf("insert negocio: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID. (nil, nil) si no existe.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	var b entity.Business
	err := r.db.QueryRow(ctx, `SELECT `+businessColumns+` FROM negocios WHERE id = $1`, id).Scan(
		&b.ID, &b.UsuarioID, &b.CategoriaID, &b.NombreNegocio, &b.RFC,
		&b.Descripcion, &b.Direccion, &b.Telefono, &b.Activo, &b.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negocio: %w", err)
	}
	return &b, nil
}

// Update actualiza un negocio.
func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	query := `
		UPDATE negocios
		SET categoria_id = $2, nombre_negocio = $3, rfc = $4, descripcion = $5,
		    direccion = $6, telefono = $7, activo = $8
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.CategoriaID, b.NombreNegocio, b.RFC, b.Descripcion, b.Direccion, b.Telefono, b.Activo,
	)
	if err != nil {
		return fmt.Errorf("update negocio: %w", err)
	}
	return nil
}

// List lista negocios con filtros opcionales. El filtro UsuarioID se aplica en
// la consulta: un cliente nunca recibe negocios ajenos.
func (r *BusinessRepo) List(ctx context.Context, f repository.BusinessFilter) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM negocios WHERE 1=1`
	args := []any{}
	if f.CategoriaID != "" {
		args = append(args, f.CategoriaID)
		query += fmt.Sprintf(" AND categoria_id = $%d", len(args))
	}
	if f.Activo != nil {
		args = append(args, *f.Activo)
		query += fmt.Sprintf(" AND activo = $%d", len(args))
	}
	if f.Buscar != "" {
		args = append(args, "%"+f.Buscar+"%")
		query += fmt.Sprintf(" AND (nombre_negocio ILIKE $%d OR rfc ILIKE $%d)", len(args), len(args))
	}
	if f.UsuarioID != "" {
		args = append(args, f.UsuarioID)
		query += fmt.Sprintf(" AND usuario_id = $%d", len(args))
	}
	query += " ORDER BY fecha_registro DESC"

	return r.queryMany(ctx, query, args...)
}

// Latest devuelve los negocios más recientes (dashboard).
func (r *BusinessRepo) Latest(ctx context.Context, limit int) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM negocios ORDER BY fecha_registro DESC LIMIT $1`
	return r.queryMany(ctx, query, limit)
}

func (r *BusinessRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Business, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list negocios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Business
	for rows.Next() {
		var b entity.Business
		if err := rows.Scan(&b.ID, &b.UsuarioID, &b.CategoriaID, &b.NombreNegocio, &b.RFC,
			&b.Descripcion, &b.Direccion, &b.Telefono, &b.Activo, &b.FechaRegistro); err != nil {
			return nil, fmt.Errorf("scan negocio: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina un negocio por ID.
func (r *BusinessRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM negocios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete negocio: %w", err)
	}
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	db Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(db Querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `INSERT INTO categorias_negocio (id, nombre, descripcion, activo) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, c.ID, c.Nombre, c.Descripcion, c.Activo)
	if err != nil {
		return fmt.Errorf("insert categoría: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, nombre, descripcion, activo FROM categorias_negocio WHERE id = $1`, id,
	).Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Activo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoría: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `UPDATE categorias_negocio SET nombre = $2, descripcion = $3, activo = $4 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, c.ID, c.Nombre, c.Descripcion, c.Activo)
	if err != nil {
		return fmt.Errorf("update categoría: %w", err)
	}
	return nil
}

// List lista categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context, activo *bool) ([]*entity.Category, error) {
	query := `SELECT id, nombre, descripcion, activo FROM categorias_negocio WHERE 1=1`
	args := []any{}
	if activo != nil {
		args = append(args, *activo)
		query += fmt.Sprintf(" AND activo = $%d", len(args))
	}
	query += " ORDER BY nombre ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categorías: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Activo); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categorias_negocio WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoría: %w", err)
	}
	return nil
}
