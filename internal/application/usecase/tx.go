package usecase

import (
	"context"

	"github.com/capyme/capyme-api/internal/domain/repository"
)

// ApplicationTxRunner ejecuta un callback con repos de postulaciones y
// respuestas atados a una misma transacción. Crear una postulación con sus
// respuestas, o reemplazarlas, debe ser atómico: o entra todo o no entra nada.
type ApplicationTxRunner interface {
	RunApplication(ctx context.Context, fn func(
		appRepo repository.ApplicationRepository,
		answerRepo repository.AnswerRepository,
	) error) error
}

// EnrollmentTxRunner ejecuta un callback con repos de cursos e inscripciones
// atados a una misma transacción. La admisión a un curso con cupo exige
// bloquear la fila del curso, contar e insertar sin que otra inscripción se
// cuele entre el conteo y el insert.
type EnrollmentTxRunner interface {
	RunEnrollment(ctx context.Context, fn func(
		courseRepo repository.CourseRepository,
		enrollRepo repository.EnrollmentRepository,
	) error) error
}
