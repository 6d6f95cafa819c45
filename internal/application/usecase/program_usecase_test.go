package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
)

func newProgramUC() (*usecase.ProgramUseCase, *fakeProgramRepo, *fakeQuestionRepo) {
	questions := newFakeQuestionRepo()
	programs := newFakeProgramRepo(questions)
	return usecase.NewProgramUseCase(programs, questions, newFakeCategoryRepo()), programs, questions
}

func seedQuestion(r *fakeQuestionRepo, id, texto string) {
	r.questions[id] = &entity.Question{
		ID: id, Texto: texto, TipoRespuesta: "texto", Activa: true,
		CreadoPor: "admin-1", FechaCreacion: time.Now(),
	}
}

func TestAsignarPregunta_CreaAsignacionActiva(t *testing.T) {
	uc, programs, questions := newProgramUC()
	programs.programs["p1"] = &entity.Program{ID: "p1", Nombre: "Impulso", Activo: true}
	seedQuestion(questions, "q1", "¿Cuántos empleados tiene?")

	resp, err := uc.AssignQuestion(context.Background(), "p1", dto.AssignQuestionRequest{PreguntaID: "q1", Orden: 3})
	require.NoError(t, err)

	assert.Equal(t, "p1", resp.ProgramaID)
	assert.Equal(t, "q1", resp.PreguntaID)
	assert.Equal(t, 3, resp.Orden)
	assert.True(t, resp.Activa)
	require.NotNil(t, resp.Pregunta)
	assert.Equal(t, "¿Cuántos empleados tiene?", resp.Pregunta.Texto)
}

func TestAsignarPregunta_PreguntaInexistente_RetornaNotFound(t *testing.T) {
	uc, programs, _ := newProgramUC()
	programs.programs["p1"] = &entity.Program{ID: "p1", Activo: true}

	_, err := uc.AssignQuestion(context.Background(), "p1", dto.AssignQuestionRequest{PreguntaID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Asignar dos veces la misma pregunta crea dos filas; el cuestionario conserva
// la multiplicidad.
func TestAsignarPregunta_DuplicadaConservaMultiplicidad(t *testing.T) {
	uc, programs, questions := newProgramUC()
	programs.programs["p1"] = &entity.Program{ID: "p1", Activo: true}
	seedQuestion(questions, "q1", "Pregunta repetible")

	_, err := uc.AssignQuestion(context.Background(), "p1", dto.AssignQuestionRequest{PreguntaID: "q1", Orden: 1})
	require.NoError(t, err)
	_, err = uc.AssignQuestion(context.Background(), "p1", dto.AssignQuestionRequest{PreguntaID: "q1", Orden: 2})
	require.NoError(t, err)

	list, err := uc.ListQuestions(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRetirarPregunta_BorraTodasLasAsignacionesDelPar(t *testing.T) {
	uc, programs, questions := newProgramUC()
	programs.programs["p1"] = &entity.Program{ID: "p1", Activo: true}
	seedQuestion(questions, "q1", "Repetida")
	seedQuestion(questions, "q2", "Sobrevive")

	_, err := uc.AssignQuestion(context.Background(), "p1", dto.AssignQuestionRequest{PreguntaID: "q1", Orden: 1})
	require.NoError(t, err)
	_, err = uc.AssignQuestion(context.Background(), "p1", dto.AssignQuestionRequest{PreguntaID: "q1", Orden: 2})
	require.NoError(t, err)
	_, err = uc.AssignQuestion(context.Background(), "p1", dto.AssignQuestionRequest{PreguntaID: "q2", Orden: 3})
	require.NoError(t, err)

	require.NoError(t, uc.UnassignQuestion(context.Background(), "p1", "q1"))

	list, err := uc.ListQuestions(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "q2", list[0].PreguntaID)
}

func TestListarCuestionario_OrdenAscendentePorOrdenDeAsignacion(t *testing.T) {
	uc, programs, questions := newProgramUC()
	programs.programs["p1"] = &entity.Program{ID: "p1", Activo: true}
	seedQuestion(questions, "q1", "Tercera")
	seedQuestion(questions, "q2", "Primera")
	seedQuestion(questions, "q3", "Segunda")

	_, err := uc.AssignQuestion(context.Background(), "p1", dto.AssignQuestionRequest{PreguntaID: "q1", Orden: 30})
	require.NoError(t, err)
	_, err = uc.AssignQuestion(context.Background(), "p1", dto.AssignQuestionRequest{PreguntaID: "q2", Orden: 10})
	require.NoError(t, err)
	_, err = uc.AssignQuestion(context.Background(), "p1", dto.AssignQuestionRequest{PreguntaID: "q3", Orden: 20})
	require.NoError(t, err)

	list, err := uc.ListQuestions(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "q2", list[0].PreguntaID)
	assert.Equal(t, "q3", list[1].PreguntaID)
	assert.Equal(t, "q1", list[2].PreguntaID)
}

func TestListarCuestionario_ProgramaInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newProgramUC()

	_, err := uc.ListQuestions(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
