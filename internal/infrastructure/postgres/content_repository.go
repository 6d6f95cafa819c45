package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

var _ repository.AnnouncementRepository = (*AnnouncementRepo)(nil)

const announcementColumns = `id, titulo, contenido, tipo, destinatario, activo, creado_por, fecha_publicacion`

// AnnouncementRepo implementación del puerto AnnouncementRepository sobre PostgreSQL.
type AnnouncementRepo struct {
	db Querier
}

// NewAnnouncementRepository construye el adaptador de persistencia para avisos.
func NewAnnouncementRepository(db Querier) *AnnouncementRepo {
	return &AnnouncementRepo{db: db}
}

// Create persiste un nuevo aviso.
func (r *AnnouncementRepo) Create(ctx context.Context, a *entity.Announcement) error {
	query := `
		INSERT INTO avisos (id, titulo, contenido, tipo, destinatario, activo, creado_por, fecha_publicacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.Titulo, a.Contenido, a.Tipo, a.Destinatario, a.Activo, a.CreadoPor, a.FechaPublicacion,
	)
	if err != nil {
		return fmt.Errorf("insert aviso: %w", err)
	}
	return nil
}

// GetByID obtiene un aviso por ID. (nil, nil) si no existe.
func (r *AnnouncementRepo) GetByID(ctx context.Context, id string) (*entity.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM avisos WHERE id = $1`
	var a entity.Announcement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Titulo, &a.Contenido, &a.Tipo, &a.Destinatario, &a.Activo, &a.CreadoPor, &a.FechaPublicacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get aviso: %w", err)
	}
	return &a, nil
}

// Update actualiza un aviso.
func (r *AnnouncementRepo) Update(ctx context.Context, a *entity.Announcement) error {
	query := `
		UPDATE avisos
		SET titulo = $2, contenido = $3, tipo = $4, destinatario = $5, activo = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, a.ID, a.Titulo, a.Contenido, a.Tipo, a.Destinatario, a.Activo)
	if err != nil {
		return fmt.Errorf("update aviso: %w", err)
	}
	return nil
}

// List lista avisos, más recientes primero. Audiencias restringe la
// visibilidad en la propia consulta.
func (r *AnnouncementRepo) List(ctx context.Context, f repository.AnnouncementFilter) ([]*entity.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM avisos WHERE 1=1`
	args := []any{}
	if f.Activo != nil {
		args = append(args, *f.Activo)
		query += fmt.Sprintf(" AND activo = $%d", len(args))
	}
	if f.Tipo != "" {
		args = append(args, f.Tipo)
		query += fmt.Sprintf(" AND tipo = $%d", len(args))
	}
	if len(f.Audiencias) > 0 {
		args = append(args, f.Audiencias)
		query += fmt.Sprintf(" AND destinatario = ANY($%d)", len(args))
	}
	query += " ORDER BY fecha_publicacion DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list avisos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Announcement
	for rows.Next() {
		var a entity.Announcement
		if err := rows.Scan(&a.ID, &a.Titulo, &a.Contenido, &a.Tipo, &a.Destinatario,
			&a.Activo, &a.CreadoPor, &a.FechaPublicacion); err != nil {
			return nil, fmt.Errorf("scan aviso: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina un aviso por ID.
func (r *AnnouncementRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM avisos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete aviso: %w", err)
	}
	return nil
}

var _ repository.ResourceLinkRepository = (*ResourceLinkRepo)(nil)

const resourceLinkColumns = `id, titulo, url, descripcion, tipo, categoria, visible_para, activo, creado_por, fecha_creacion`

// ResourceLinkRepo implementación del puerto ResourceLinkRepository sobre PostgreSQL.
type ResourceLinkRepo struct {
	db Querier
}

// NewResourceLinkRepository construye el adaptador de persistencia para enlaces.
func NewResourceLinkRepository(db Querier) *ResourceLinkRepo {
	return &ResourceLinkRepo{db: db}
}

// Create persiste un nuevo enlace de recurso.
func (r *ResourceLinkRepo) Create(ctx context.Context, l *entity.ResourceLink) error {
	query := `
		INSERT INTO enlaces_recurso (id, titulo, url, descripcion, tipo, categoria, visible_para, activo, creado_por, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		l.ID, l.Titulo, l.URL, l.Descripcion, l.Tipo, l.Categoria, l.VisiblePara, l.Activo, l.CreadoPor, l.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("insert enlace: %w", err)
	}
	return nil
}

// GetByID obtiene un enlace por ID. (nil, nil) si no existe.
func (r *ResourceLinkRepo) GetByID(ctx context.Context, id string) (*entity.ResourceLink, error) {
	query := `SELECT ` + resourceLinkColumns + ` FROM enlaces_recurso WHERE id = $1`
	var l entity.ResourceLink
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Titulo, &l.URL, &l.Descripcion, &l.Tipo, &l.Categoria,
		&l.VisiblePara, &l.Activo, &l.CreadoPor, &l.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enlace: %w", err)
	}
	return &l, nil
}

// Update actualiza un enlace de recurso.
func (r *ResourceLinkRepo) Update(ctx context.Context, l *entity.ResourceLink) error {
	query := `
		UPDATE enlaces_recurso
		SET titulo = $2, url = $3, descripcion = $4, tipo = $5, categoria = $6, visible_para = $7, activo = $8
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		l.ID, l.Titulo, l.URL, l.Descripcion, l.Tipo, l.Categoria, l.VisiblePara, l.Activo,
	)
	if err != nil {
		return fmt.Errorf("update enlace: %w", err)
	}
	return nil
}

// List lista enlaces, más recientes primero.
func (r *ResourceLinkRepo) List(ctx context.Context, f repository.ResourceLinkFilter) ([]*entity.ResourceLink, error) {
	query := `SELECT ` + resourceLinkColumns + ` FROM enlaces_recurso WHERE 1=1`
	args := []any{}
	if f.Activo != nil {
		args = append(args, *f.Activo)
		query += fmt.Sprintf(" AND activo = $%d", len(args))
	}
	if f.Tipo != "" {
		args = append(args, f.Tipo)
		query += fmt.Sprintf(" AND tipo = $%d", len(args))
	}
	if f.Categoria != "" {
		args = append(args, f.Categoria)
		query += fmt.Sprintf(" AND categoria = $%d", len(args))
	}
	if len(f.Audiencias) > 0 {
		args = append(args, f.Audiencias)
		query += fmt.Sprintf(" AND visible_para = ANY($%d)", len(args))
	}
	query += " ORDER BY fecha_creacion DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list enlaces: %w", err)
	}
	defer rows.Close()

	var list []*entity.ResourceLink
	for rows.Next() {
		var l entity.ResourceLink
		if err := rows.Scan(&l.ID, &l.Titulo, &l.URL, &l.Descripcion, &l.Tipo, &l.Categoria,
			&l.VisiblePara, &l.Activo, &l.CreadoPor, &l.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan enlace: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina un enlace por ID.
func (r *ResourceLinkRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM enlaces_recurso WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete enlace: %w", err)
	}
	return nil
}

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	db Querier
}

// NewContactRepository construye el adaptador de persistencia para contacto.
func NewContactRepository(db Querier) *ContactRepo {
	return &ContactRepo{db: db}
}

// GetFirst devuelve la única fila de contacto, o (nil, nil) si aún no existe.
func (r *ContactRepo) GetFirst(ctx context.Context) (*entity.ContactInfo, error) {
	query := `
		SELECT id, telefono, email, direccion, horario, facebook, instagram
		FROM contacto_capyme LIMIT 1`
	var c entity.ContactInfo
	err := r.db.QueryRow(ctx, query).Scan(
		&c.ID, &c.Telefono, &c.Email, &c.Direccion, &c.Horario, &c.Facebook, &c.Instagram,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contacto: %w", err)
	}
	return &c, nil
}

// Create persiste la fila de contacto.
func (r *ContactRepo) Create(ctx context.Context, c *entity.ContactInfo) error {
	query := `
		INSERT INTO contacto_capyme (id, telefono, email, direccion, horario, facebook, instagram)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, c.ID, c.Telefono, c.Email, c.Direccion, c.Horario, c.Facebook, c.Instagram)
	if err != nil {
		return fmt.Errorf("insert contacto: %w", err)
	}
	return nil
}

// Update actualiza la fila de contacto.
func (r *ContactRepo) Update(ctx context.Context, c *entity.ContactInfo) error {
	query := `
		UPDATE contacto_capyme
		SET telefono = $2, email = $3, direccion = $4, horario = $5, facebook = $6, instagram = $7
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, c.ID, c.Telefono, c.Email, c.Direccion, c.Horario, c.Facebook, c.Instagram)
	if err != nil {
		return fmt.Errorf("update contacto: %w", err)
	}
	return nil
}
