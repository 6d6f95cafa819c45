package entity

import "time"

// Business (negocio) registrado por un cliente. UsuarioID es el propietario:
// un cliente solo puede leer y mutar negocios propios.
type Business struct {
	ID            string
	UsuarioID     string
	CategoriaID   string
	NombreNegocio string
	RFC           string
	Descripcion   string
	Direccion     string
	Telefono      string
	Activo        bool
	FechaRegistro time.Time
}

// Category (categoría de negocio) usada por negocios y programas.
type Category struct {
	ID          string
	Nombre      string
	Descripcion string
	Activo      bool
}
