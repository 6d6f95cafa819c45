package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain"
)

func newCourseUC() (*usecase.CourseUseCase, *fakeCourseRepo, *fakeEnrollmentRepo) {
	courses := newFakeCourseRepo()
	enrolls := &fakeEnrollmentRepo{}
	tx := &fakeEnrollTx{courses: courses, enrolls: enrolls}
	return usecase.NewCourseUseCase(courses, enrolls, tx), courses, enrolls
}

func TestEnroll_CursoConCupo_Inscribe(t *testing.T) {
	uc, courses, enrolls := newCourseUC()
	seedCourse(courses, "c1", intPtr(2), true)

	resp, err := uc.Enroll(context.Background(), "user-1", "c1", dto.EnrollRequest{})
	require.NoError(t, err)

	assert.Equal(t, "c1", resp.CursoID)
	assert.Equal(t, "user-1", resp.UsuarioID)
	assert.Equal(t, "inscrito", resp.Estado)
	count, _ := enrolls.CountByCourse(context.Background(), "c1")
	assert.Equal(t, 1, count, "la inscripción debe quedar persistida")
}

func TestEnroll_CursoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newCourseUC()

	_, err := uc.Enroll(context.Background(), "user-1", "no-existe", dto.EnrollRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnroll_CursoInactivo_Rechaza(t *testing.T) {
	uc, courses, _ := newCourseUC()
	seedCourse(courses, "c1", intPtr(10), false)

	_, err := uc.Enroll(context.Background(), "user-1", "c1", dto.EnrollRequest{})
	assert.ErrorIs(t, err, domain.ErrCourseInactive)
}

func TestEnroll_CupoLleno_Rechaza(t *testing.T) {
	uc, courses, _ := newCourseUC()
	seedCourse(courses, "c1", intPtr(1), true)

	_, err := uc.Enroll(context.Background(), "user-1", "c1", dto.EnrollRequest{})
	require.NoError(t, err, "el primer inscrito llena el cupo")

	_, err = uc.Enroll(context.Background(), "user-2", "c1", dto.EnrollRequest{})
	assert.ErrorIs(t, err, domain.ErrCourseFull,
		"con el cupo lleno la siguiente inscripción debe rechazarse")
}

func TestEnroll_SinCupoMaximo_NoLimita(t *testing.T) {
	uc, courses, enrolls := newCourseUC()
	seedCourse(courses, "c1", nil, true) // cupo nil = ilimitado

	for i := 0; i < 50; i++ {
		_, err := uc.Enroll(context.Background(), fmt.Sprintf("user-%d", i), "c1", dto.EnrollRequest{})
		require.NoError(t, err)
	}
	count, _ := enrolls.CountByCourse(context.Background(), "c1")
	assert.Equal(t, 50, count)
}

// Con cupo 1 y dos admisiones simultáneas solo una puede quedar: el runner
// serializa cada admisión completa (leer curso, contar, insertar), así que la
// segunda siempre observa el cupo ya ocupado.
func TestEnroll_AdmisionesConcurrentes_NuncaExcedenElCupo(t *testing.T) {
	courses := newFakeCourseRepo()
	enrolls := &fakeEnrollmentRepo{}
	tx := &lockingEnrollTx{courses: courses, enrolls: enrolls}
	uc := usecase.NewCourseUseCase(courses, enrolls, tx)
	seedCourse(courses, "c1", intPtr(1), true)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			_, err := uc.Enroll(context.Background(), user, "c1", dto.EnrollRequest{})
			errs <- err
		}(fmt.Sprintf("user-%d", i))
	}
	wg.Wait()
	close(errs)

	admitidos, rechazados := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			admitidos++
		case errors.Is(err, domain.ErrCourseFull):
			rechazados++
		default:
			t.Fatalf("error inesperado en la admisión: %v", err)
		}
	}
	assert.Equal(t, 1, admitidos, "exactamente una admisión debe entrar")
	assert.Equal(t, 1, rechazados, "la otra debe rechazarse por cupo lleno")

	count, err := enrolls.CountByCourse(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "nunca deben persistirse más inscripciones que el cupo")
}

func TestEnroll_UsuarioYaInscrito_RetornaConflicto(t *testing.T) {
	uc, courses, _ := newCourseUC()
	seedCourse(courses, "c1", intPtr(10), true)

	_, err := uc.Enroll(context.Background(), "user-1", "c1", dto.EnrollRequest{})
	require.NoError(t, err)

	_, err = uc.Enroll(context.Background(), "user-1", "c1", dto.EnrollRequest{})
	assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)
}

func TestEnroll_MismoUsuarioOtroCurso_Permitido(t *testing.T) {
	uc, courses, _ := newCourseUC()
	seedCourse(courses, "c1", intPtr(10), true)
	seedCourse(courses, "c2", intPtr(10), true)

	_, err := uc.Enroll(context.Background(), "user-1", "c1", dto.EnrollRequest{})
	require.NoError(t, err)
	_, err = uc.Enroll(context.Background(), "user-1", "c2", dto.EnrollRequest{})
	assert.NoError(t, err, "la unicidad es por par usuario-curso, no por usuario")
}

// Reducir el cupo por debajo de los inscritos actuales es válido: nadie sale
// expulsado, solo se cierran nuevas inscripciones.
func TestUpdateCurso_ReducirCupoBajoInscritos_CierraNuevasInscripciones(t *testing.T) {
	uc, courses, _ := newCourseUC()
	seedCourse(courses, "c1", intPtr(5), true)

	_, err := uc.Enroll(context.Background(), "user-1", "c1", dto.EnrollRequest{})
	require.NoError(t, err)
	_, err = uc.Enroll(context.Background(), "user-2", "c1", dto.EnrollRequest{})
	require.NoError(t, err)

	resp, err := uc.Update(context.Background(), "c1", dto.UpdateCourseRequest{CupoMaximo: intPtr(1)})
	require.NoError(t, err)
	require.NotNil(t, resp.CupoMaximo)
	assert.Equal(t, 1, *resp.CupoMaximo)

	_, err = uc.Enroll(context.Background(), "user-3", "c1", dto.EnrollRequest{})
	assert.ErrorIs(t, err, domain.ErrCourseFull)

	inscritos, err := uc.ListEnrollments(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, inscritos, 2, "los inscritos previos se conservan")
}

func TestGetCurso_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newCourseUC()

	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
