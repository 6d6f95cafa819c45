package entity

import "time"

// Audiencias válidas para avisos y enlaces. El filtro de visibilidad se aplica
// en la consulta, no después: los listados difieren por rol.
const (
	AudienceTodos         = "todos"
	AudienceClientes      = "clientes"
	AudienceColaboradores = "colaboradores"
)

// Announcement (aviso) publicado por el staff, visible según Destinatario.
type Announcement struct {
	ID               string
	Titulo           string
	Contenido        string
	Tipo             string // informativo, urgente, evento...
	Destinatario     string // todos, clientes, colaboradores
	Activo           bool
	CreadoPor        string
	FechaPublicacion time.Time
}

// ResourceLink (enlace de recurso) con visibilidad por rol en VisiblePara.
type ResourceLink struct {
	ID            string
	Titulo        string
	URL           string
	Descripcion   string
	Tipo          string
	Categoria     string
	VisiblePara   string // todos, clientes, colaboradores
	Activo        bool
	CreadoPor     string
	FechaCreacion time.Time
}
