package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

var _ repository.FinancingRepository = (*FinancingRepo)(nil)

const financingColumns = `id, negocio_id, usuario_id, monto_solicitado, plazo_meses, destino, estado, fecha_solicitud`

// FinancingRepo implementación del puerto FinancingRepository sobre PostgreSQL.
type FinancingRepo struct {
	db Querier
}

// NewFinancingRepository construye el adaptador de persistencia para financiamiento.
func NewFinancingRepository(db Querier) *FinancingRepo {
	return &FinancingRepo{db: db}
}

// Create persiste un nuevo formulario de financiamiento.
func (r *FinancingRepo) Create(ctx context.Context, f *entity.FinancingForm) error {
	query := `
		INSERT INTO formularios_financiamiento (id, negocio_id, usuario_id, monto_solicitado, plazo_meses, destino, estado, fecha_solicitud)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		f.ID, f.NegocioID, f.UsuarioID, f.MontoSolicitado, f.PlazoMeses, f.Destino, f.Estado, f.FechaSolicitud,
	)
	if err != nil {
		return fmt.Errorf("insert financiamiento: %w", err)
	}
	return nil
}

// GetByID obtiene un formulario por ID. (nil, nil) si no existe.
func (r *FinancingRepo) GetByID(ctx context.Context, id string) (*entity.FinancingForm, error) {
	query := `SELECT ` + financingColumns + ` FROM formularios_financiamiento WHERE id = $1`
	var f entity.FinancingForm
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.NegocioID, &f.UsuarioID, &f.MontoSolicitado, &f.PlazoMeses, &f.Destino, &f.Estado, &f.FechaSolicitud,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financiamiento: %w", err)
	}
	return &f, nil
}

// Update actualiza los datos editables de un formulario.
func (r *FinancingRepo) Update(ctx context.Context, f *entity.FinancingForm) error {
	query := `
		UPDATE formularios_financiamiento
		SET monto_solicitado = $2, plazo_meses = $3, destino = $4, estado = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, f.ID, f.MontoSolicitado, f.PlazoMeses, f.Destino, f.Estado)
	if err != nil {
		return fmt.Errorf("update financiamiento: %w", err)
	}
	return nil
}

// SetState cambia solo el estado del formulario.
func (r *FinancingRepo) SetState(ctx context.Context, id, estado string) error {
	_, err := r.db.Exec(ctx, `UPDATE formularios_financiamiento SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("set estado financiamiento: %w", err)
	}
	return nil
}

// List lista formularios, más recientes primero.
func (r *FinancingRepo) List(ctx context.Context, filter repository.FinancingFilter) ([]*entity.FinancingForm, error) {
	query := `SELECT ` + financingColumns + ` FROM formularios_financiamiento WHERE 1=1`
	args := []any{}
	if filter.Estado != "" {
		args = append(args, filter.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	if filter.NegocioID != "" {
		args = append(args, filter.NegocioID)
		query += fmt.Sprintf(" AND negocio_id = $%d", len(args))
	}
	if filter.UsuarioID != "" {
		args = append(args, filter.UsuarioID)
		query += fmt.Sprintf(" AND usuario_id = $%d", len(args))
	}
	query += " ORDER BY fecha_solicitud DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list financiamientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.FinancingForm
	for rows.Next() {
		var f entity.FinancingForm
		if err := rows.Scan(&f.ID, &f.NegocioID, &f.UsuarioID, &f.MontoSolicitado,
			&f.PlazoMeses, &f.Destino, &f.Estado, &f.FechaSolicitud); err != nil {
			return nil, fmt.Errorf("scan financiamiento: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete elimina un formulario por ID.
func (r *FinancingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM formularios_financiamiento WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete financiamiento: %w", err)
	}
	return nil
}
