package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancingForm (formulario de financiamiento) solicitado para un negocio.
// Mismo esquema de propiedad que Application: el cliente dueño o el staff.
type FinancingForm struct {
	ID              string
	NegocioID       string
	UsuarioID       string
	MontoSolicitado decimal.Decimal
	PlazoMeses      int
	Destino         string
	Estado          string
	FechaSolicitud  time.Time
}

// ContactInfo información de contacto de CAPYME. Singleton: se crea vacía en
// la primera lectura si no existe.
type ContactInfo struct {
	ID        string
	Telefono  string
	Email     string
	Direccion string
	Horario   string
	Facebook  string
	Instagram string
}
