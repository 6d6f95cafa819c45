package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, nombre, apellido, email, password_hash, telefono, rol, activo, foto_perfil_url, fecha_registro, ultima_sesion`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. Devuelve domain.ErrEmailAlreadyExists si
// el email ya está registrado (índice único sobre email).
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuarios (id, nombre, apellido, email, password_hash, telefono, rol, activo, foto_perfil_url, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Nombre, user.Apellido, user.Email, user.PasswordHash,
		user.Telefono, string(user.Rol), user.Activo, user.FotoPerfilURL, user.FechaRegistro,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM usuarios WHERE email = $1 LIMIT 1`, email)
}

func (r *UserRepo) get(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	var rol string
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.PasswordHash, &u.Telefono,
		&rol, &u.Activo, &u.FotoPerfilURL, &u.FechaRegistro, &u.UltimaSesion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	u.Rol = entity.Role(rol)
	return &u, nil
}

// Update actualiza los campos editables de un usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE usuarios
		SET nombre = $2, apellido = $3, email = $4, password_hash = $5, telefono = $6,
		    rol = $7, activo = $8, foto_perfil_url = $9
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Nombre, user.Apellido, user.Email, user.PasswordHash,
		user.Telefono, string(user.Rol), user.Activo, user.FotoPerfilURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista usuarios con filtros opcionales de rol y activo, más recientes primero.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE 1=1`
	args := []any{}
	if f.Rol != "" {
		args = append(args, f.Rol)
		query += fmt.Sprintf(" AND rol = $%d", len(args))
	}
	if f.Activo != nil {
		args = append(args, *f.Activo)
		query += fmt.Sprintf(" AND activo = $%d", len(args))
	}
	query += " ORDER BY fecha_registro DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var rol string
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.PasswordHash, &u.Telefono,
			&rol, &u.Activo, &u.FotoPerfilURL, &u.FechaRegistro, &u.UltimaSesion); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		u.Rol = entity.Role(rol)
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

// StampSession registra la última sesión del usuario.
func (r *UserRepo) StampSession(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE usuarios SET ultima_sesion = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("stamp sesión: %w", err)
	}
	return nil
}
