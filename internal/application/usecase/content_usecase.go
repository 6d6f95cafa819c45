package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

// audiencesFor traduce el rol del lector a las audiencias que puede ver.
// Admin ve todo (sin restricción); cliente ve "todos"+"clientes"; colaborador
// ve "todos"+"colaboradores". El filtro se aplica en la consulta, no después.
func audiencesFor(rol entity.Role) []string {
	switch rol {
	case entity.RoleAdmin:
		return nil
	case entity.RoleColaborador:
		return []string{entity.AudienceTodos, entity.AudienceColaboradores}
	default:
		return []string{entity.AudienceTodos, entity.AudienceClientes}
	}
}

// AnnouncementUseCase avisos publicados por el staff con visibilidad por rol.
type AnnouncementUseCase struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementUseCase construye el caso de uso.
func NewAnnouncementUseCase(repo repository.AnnouncementRepository) *AnnouncementUseCase {
	return &AnnouncementUseCase{repo: repo}
}

// Create publica un aviso. Destinatario por defecto "todos".
func (uc *AnnouncementUseCase) Create(ctx context.Context, creadorID string, in dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	destinatario := in.Destinatario
	if destinatario == "" {
		destinatario = entity.AudienceTodos
	}
	a := &entity.Announcement{
		ID:               uuid.New().String(),
		Titulo:           in.Titulo,
		Contenido:        in.Contenido,
		Tipo:             in.Tipo,
		Destinatario:     destinatario,
		Activo:           true,
		CreadoPor:        creadorID,
		FechaPublicacion: time.Now(),
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAnnouncementResponse(a), nil
}

// GetByID obtiene un aviso si el rol del lector alcanza su destinatario.
func (uc *AnnouncementUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.AnnouncementResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if !audienceAllowed(actor.Rol, a.Destinatario) {
		return nil, domain.ErrForbidden
	}
	return toAnnouncementResponse(a), nil
}

// List lista avisos visibles para el rol del lector. Los no-admin solo ven
// avisos activos.
func (uc *AnnouncementUseCase) List(ctx context.Context, actor *entity.User, f repository.AnnouncementFilter) ([]*dto.AnnouncementResponse, error) {
	f.Audiencias = audiencesFor(actor.Rol)
	if actor.Rol != entity.RoleAdmin && f.Activo == nil {
		activo := true
		f.Activo = &activo
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AnnouncementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAnnouncementResponse(a))
	}
	return out, nil
}

// Update actualiza un aviso.
func (uc *AnnouncementUseCase) Update(ctx context.Context, id string, in dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if in.Titulo != nil {
		a.Titulo = *in.Titulo
	}
	if in.Contenido != nil {
		a.Contenido = *in.Contenido
	}
	if in.Tipo != nil {
		a.Tipo = *in.Tipo
	}
	if in.Destinatario != nil {
		a.Destinatario = *in.Destinatario
	}
	if in.Activo != nil {
		a.Activo = *in.Activo
	}
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAnnouncementResponse(a), nil
}

// Delete elimina un aviso.
func (uc *AnnouncementUseCase) Delete(ctx context.Context, id string) error {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// audienceAllowed indica si un rol puede leer contenido dirigido a audience.
func audienceAllowed(rol entity.Role, audience string) bool {
	allowed := audiencesFor(rol)
	if allowed == nil {
		return true
	}
	for _, a := range allowed {
		if a == audience {
			return true
		}
	}
	return false
}

func toAnnouncementResponse(a *entity.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
		ID:               a.ID,
		Titulo:           a.Titulo,
		Contenido:        a.Contenido,
		Tipo:             a.Tipo,
		Destinatario:     a.Destinatario,
		Activo:           a.Activo,
		CreadoPor:        a.CreadoPor,
		FechaPublicacion: a.FechaPublicacion,
	}
}

// ResourceLinkUseCase enlaces de recursos con visibilidad por rol.
type ResourceLinkUseCase struct {
	repo repository.ResourceLinkRepository
}

// NewResourceLinkUseCase construye el caso de uso.
func NewResourceLinkUseCase(repo repository.ResourceLinkRepository) *ResourceLinkUseCase {
	return &ResourceLinkUseCase{repo: repo}
}

// Create registra un enlace. VisiblePara por defecto "todos".
func (uc *ResourceLinkUseCase) Create(ctx context.Context, creadorID string, in dto.CreateResourceLinkRequest) (*dto.ResourceLinkResponse, error) {
	visible := in.VisiblePara
	if visible == "" {
		visible = entity.AudienceTodos
	}
	l := &entity.ResourceLink{
		ID:            uuid.New().String(),
		Titulo:        in.Titulo,
		URL:           in.URL,
		Descripcion:   in.Descripcion,
		Tipo:          in.Tipo,
		Categoria:     in.Categoria,
		VisiblePara:   visible,
		Activo:        true,
		CreadoPor:     creadorID,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toResourceLinkResponse(l), nil
}

// GetByID obtiene un enlace si el rol del lector alcanza su visibilidad.
func (uc *ResourceLinkUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.ResourceLinkResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if !audienceAllowed(actor.Rol, l.VisiblePara) {
		return nil, domain.ErrForbidden
	}
	return toResourceLinkResponse(l), nil
}

// List lista enlaces visibles para el rol del lector.
func (uc *ResourceLinkUseCase) List(ctx context.Context, actor *entity.User, f repository.ResourceLinkFilter) ([]*dto.ResourceLinkResponse, error) {
	f.Audiencias = audiencesFor(actor.Rol)
	if actor.Rol != entity.RoleAdmin && f.Activo == nil {
		activo := true
		f.Activo = &activo
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ResourceLinkResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toResourceLinkResponse(l))
	}
	return out, nil
}

// Update actualiza un enlace.
func (uc *ResourceLinkUseCase) Update(ctx context.Context, id string, in dto.UpdateResourceLinkRequest) (*dto.ResourceLinkResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if in.Titulo != nil {
		l.Titulo = *in.Titulo
	}
	if in.URL != nil {
		l.URL = *in.URL
	}
	if in.Descripcion != nil {
		l.Descripcion = *in.Descripcion
	}
	if in.Tipo != nil {
		l.Tipo = *in.Tipo
	}
	if in.Categoria != nil {
		l.Categoria = *in.Categoria
	}
	if in.VisiblePara != nil {
		l.VisiblePara = *in.VisiblePara
	}
	if in.Activo != nil {
		l.Activo = *in.Activo
	}
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return toResourceLinkResponse(l), nil
}

// Delete elimina un enlace.
func (uc *ResourceLinkUseCase) Delete(ctx context.Context, id string) error {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toResourceLinkResponse(l *entity.ResourceLink) *dto.ResourceLinkResponse {
	return &dto.ResourceLinkResponse{
		ID:            l.ID,
		Titulo:        l.Titulo,
		URL:           l.URL,
		Descripcion:   l.Descripcion,
		Tipo:          l.Tipo,
		Categoria:     l.Categoria,
		VisiblePara:   l.VisiblePara,
		Activo:        l.Activo,
		CreadoPor:     l.CreadoPor,
		FechaCreacion: l.FechaCreacion,
	}
}

// ContactUseCase información de contacto (singleton).
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Get devuelve la información de contacto. Si nunca se ha capturado, crea la
// fila vacía y la devuelve: el singleton siempre existe tras la primera lectura.
func (uc *ContactUseCase) Get(ctx context.Context) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetFirst(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = &entity.ContactInfo{ID: uuid.New().String()}
		if err := uc.repo.Create(ctx, c); err != nil {
			return nil, err
		}
	}
	return toContactResponse(c), nil
}

// Update actualiza la información de contacto, creándola si no existe.
func (uc *ContactUseCase) Update(ctx context.Context, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetFirst(ctx)
	if err != nil {
		return nil, err
	}
	created := false
	if c == nil {
		c = &entity.ContactInfo{ID: uuid.New().String()}
		created = true
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Direccion != nil {
		c.Direccion = *in.Direccion
	}
	if in.Horario != nil {
		c.Horario = *in.Horario
	}
	if in.Facebook != nil {
		c.Facebook = *in.Facebook
	}
	if in.Instagram != nil {
		c.Instagram = *in.Instagram
	}
	if created {
		err = uc.repo.Create(ctx, c)
	} else {
		err = uc.repo.Update(ctx, c)
	}
	if err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

func toContactResponse(c *entity.ContactInfo) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        c.ID,
		Telefono:  c.Telefono,
		Email:     c.Email,
		Direccion: c.Direccion,
		Horario:   c.Horario,
		Facebook:  c.Facebook,
		Instagram: c.Instagram,
	}
}
