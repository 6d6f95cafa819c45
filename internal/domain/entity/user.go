package entity

import "time"

// Role rol de un usuario. Conjunto cerrado: usar las constantes, no strings sueltos.
type Role string

// Roles válidos para User.
const (
	RoleAdmin       Role = "admin"
	RoleColaborador Role = "colaborador"
	RoleCliente     Role = "cliente"
)

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleColaborador, RoleCliente:
		return true
	}
	return false
}

// IsStaff indica si el rol puede administrar recursos ajenos (exento del filtro de propiedad).
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleColaborador
}

// User representa una cuenta del sistema con rol y bandera de activación.
// PasswordHash nunca viaja en respuestas; los DTO lo omiten.
type User struct {
	ID            string
	Nombre        string
	Apellido      string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Telefono      string
	Rol           Role
	Activo        bool
	FotoPerfilURL string
	FechaRegistro time.Time
	UltimaSesion  *time.Time
}
