package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFinancingRequest solicitud de financiamiento para un negocio.
type CreateFinancingRequest struct {
	NegocioID       string          `json:"negocioId" validate:"required"`
	MontoSolicitado decimal.Decimal `json:"montoSolicitado" validate:"required"`
	PlazoMeses      int             `json:"plazoMeses" validate:"required,min=1,max=120"`
	Destino         string          `json:"destino" validate:"required"`
}

// UpdateFinancingRequest actualización parcial de la solicitud.
type UpdateFinancingRequest struct {
	MontoSolicitado *decimal.Decimal `json:"montoSolicitado"`
	PlazoMeses      *int             `json:"plazoMeses" validate:"omitempty,min=1,max=120"`
	Destino         *string          `json:"destino"`
}

// SetFinancingStateRequest cambio de estado por el staff.
type SetFinancingStateRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// FinancingResponse formulario de financiamiento.
type FinancingResponse struct {
	ID              string          `json:"id"`
	NegocioID       string          `json:"negocioId"`
	UsuarioID       string          `json:"usuarioId"`
	MontoSolicitado decimal.Decimal `json:"montoSolicitado"`
	PlazoMeses      int             `json:"plazoMeses"`
	Destino         string          `json:"destino"`
	Estado          string          `json:"estado"`
	FechaSolicitud  time.Time       `json:"fechaSolicitud"`
}
