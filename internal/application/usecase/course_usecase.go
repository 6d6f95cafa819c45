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

// CourseUseCase cursos con control de cupo. La inscripción va por el
// TxRunner: lock de la fila del curso, conteo e insert en una transacción.
type CourseUseCase struct {
	repo       repository.CourseRepository
	enrollRepo repository.EnrollmentRepository
	tx         EnrollmentTxRunner
}

// NewCourseUseCase construye el caso de uso.
func NewCourseUseCase(repo repository.CourseRepository, enrollRepo repository.EnrollmentRepository, tx EnrollmentTxRunner) *CourseUseCase {
	return &CourseUseCase{repo: repo, enrollRepo: enrollRepo, tx: tx}
}

// Create registra un curso firmado por su creador.
func (uc *CourseUseCase) Create(ctx context.Context, creadorID string, in dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	c := &entity.Course{
		ID:            uuid.New().String(),
		Titulo:        in.Titulo,
		Descripcion:   in.Descripcion,
		Modalidad:     in.Modalidad,
		CupoMaximo:    in.CupoMaximo,
		Activo:        true,
		CreadoPor:     creadorID,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCourseResponse(c), nil
}

// GetByID obtiene un curso con su conteo de inscritos.
func (uc *CourseUseCase) GetByID(ctx context.Context, id string) (*dto.CourseResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCourseResponse(c), nil
}

// List lista cursos con conteo de inscritos.
func (uc *CourseUseCase) List(ctx context.Context, f repository.CourseFilter) ([]*dto.CourseResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CourseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCourseResponse(c))
	}
	return out, nil
}

// Update actualiza un curso. Reducir CupoMaximo por debajo de los inscritos
// actuales es válido: no expulsa a nadie, solo cierra nuevas inscripciones.
func (uc *CourseUseCase) Update(ctx context.Context, id string, in dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Titulo != nil {
		c.Titulo = *in.Titulo
	}
	if in.Descripcion != nil {
		c.Descripcion = *in.Descripcion
	}
	if in.Modalidad != nil {
		c.Modalidad = *in.Modalidad
	}
	if in.CupoMaximo != nil {
		c.CupoMaximo = in.CupoMaximo
	}
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCourseResponse(c), nil
}

// Delete elimina un curso.
func (uc *CourseUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Enroll inscribe al usuario en el curso. Toda la admisión corre dentro de
// una transacción: el lock FOR UPDATE sobre la fila del curso serializa las
// inscripciones concurrentes al mismo curso, así el conteo de cupo y el
// insert son una sola operación atómica.
//
// Errores: ErrNotFound si el curso no existe, ErrCourseInactive si está
// inactivo, ErrCourseFull si el cupo está completo y ErrAlreadyEnrolled si el
// usuario ya estaba inscrito.
func (uc *CourseUseCase) Enroll(ctx context.Context, userID, cursoID string, in dto.EnrollRequest) (*dto.EnrollmentResponse, error) {
	enrollment := &entity.Enrollment{
		ID:               uuid.New().String(),
		CursoID:          cursoID,
		UsuarioID:        userID,
		NegocioID:        in.NegocioID,
		Estado:           "inscrito",
		FechaInscripcion: time.Now(),
	}
	err := uc.tx.RunEnrollment(ctx, func(courseRepo repository.CourseRepository, enrollRepo repository.EnrollmentRepository) error {
		course, err := courseRepo.GetByIDForUpdate(ctx, cursoID)
		if err != nil {
			return err
		}
		if course == nil {
			return domain.ErrNotFound
		}
		if !course.Activo {
			return domain.ErrCourseInactive
		}
		if course.CupoMaximo != nil {
			count, err := enrollRepo.CountByCourse(ctx, cursoID)
			if err != nil {
				return err
			}
			if count >= *course.CupoMaximo {
				return domain.ErrCourseFull
			}
		}
		return enrollRepo.Create(ctx, enrollment)
	})
	if err != nil {
		return nil, err
	}
	return toEnrollmentResponse(enrollment), nil
}

// ListEnrollments devuelve los inscritos de un curso.
func (uc *CourseUseCase) ListEnrollments(ctx context.Context, cursoID string) ([]*dto.EnrollmentResponse, error) {
	c, err := uc.repo.GetByID(ctx, cursoID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.enrollRepo.ListByCourse(ctx, cursoID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EnrollmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEnrollmentResponse(e))
	}
	return out, nil
}

func toCourseResponse(c *entity.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:             c.ID,
		Titulo:         c.Titulo,
		Descripcion:    c.Descripcion,
		Modalidad:      c.Modalidad,
		CupoMaximo:     c.CupoMaximo,
		Activo:         c.Activo,
		CreadoPor:      c.CreadoPor,
		FechaCreacion:  c.FechaCreacion,
		InscritosCount: c.InscritosCount,
	}
}

func toEnrollmentResponse(e *entity.Enrollment) *dto.EnrollmentResponse {
	return &dto.EnrollmentResponse{
		ID:               e.ID,
		CursoID:          e.CursoID,
		UsuarioID:        e.UsuarioID,
		NegocioID:        e.NegocioID,
		Estado:           e.Estado,
		FechaInscripcion: e.FechaInscripcion,
	}
}
