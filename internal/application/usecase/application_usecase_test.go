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
	"github.com/capyme/capyme-api/internal/domain/repository"
)

type appFixture struct {
	uc         *usecase.ApplicationUseCase
	apps       *fakeApplicationRepo
	answers    *fakeAnswerRepo
	businesses *fakeBusinessRepo
	programs   *fakeProgramRepo
}

func newAppFixture() *appFixture {
	answers := &fakeAnswerRepo{}
	apps := newFakeApplicationRepo(answers)
	businesses := newFakeBusinessRepo()
	programs := newFakeProgramRepo(newFakeQuestionRepo())
	tx := &fakeApplicationTx{apps: apps, answers: answers}
	return &appFixture{
		uc:         usecase.NewApplicationUseCase(apps, businesses, programs, tx),
		apps:       apps,
		answers:    answers,
		businesses: businesses,
		programs:   programs,
	}
}

func (f *appFixture) seedBusiness(id, ownerID string) {
	f.businesses.businesses[id] = &entity.Business{
		ID: id, UsuarioID: ownerID, NombreNegocio: "Negocio " + id, Activo: true,
	}
}

func (f *appFixture) seedProgram(id string, activo bool) {
	f.programs.programs[id] = &entity.Program{
		ID: id, Nombre: "Programa " + id, Activo: activo, FechaCreacion: time.Now(),
	}
}

func TestPostular_PropietarioDelNegocio_CreaPendienteConRespuestas(t *testing.T) {
	f := newAppFixture()
	f.seedBusiness("n1", "cliente-1")
	f.seedProgram("p1", true)

	resp, err := f.uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateApplicationRequest{
		NegocioID:  "n1",
		ProgramaID: "p1",
		Respuestas: []dto.AnswerInput{
			{PreguntaID: "q1", Respuesta: "diez empleados"},
			{PreguntaID: "q2", Respuesta: "2020"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ApplicationPendiente, resp.Estado,
		"toda postulación nace en estado pendiente")
	assert.Equal(t, "cliente-1", resp.UsuarioID,
		"el propietario de la postulación es el dueño del negocio")
	require.Len(t, resp.Respuestas, 2)
	assert.Equal(t, "q1", resp.Respuestas[0].PreguntaID)

	stored, _ := f.answers.ListByApplication(context.Background(), resp.ID)
	assert.Len(t, stored, 2, "las respuestas entran junto con la postulación")
}

func TestPostular_ClienteSobreNegocioAjeno_Prohibido(t *testing.T) {
	f := newAppFixture()
	f.seedBusiness("n1", "cliente-1")
	f.seedProgram("p1", true)

	_, err := f.uc.Create(context.Background(), clienteActor("cliente-2"), dto.CreateApplicationRequest{
		NegocioID: "n1", ProgramaID: "p1",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPostular_StaffSobreNegocioAjeno_Permitido(t *testing.T) {
	f := newAppFixture()
	f.seedBusiness("n1", "cliente-1")
	f.seedProgram("p1", true)

	resp, err := f.uc.Create(context.Background(), colaboradorActor(), dto.CreateApplicationRequest{
		NegocioID: "n1", ProgramaID: "p1",
	})
	require.NoError(t, err)
	assert.Equal(t, "cliente-1", resp.UsuarioID,
		"aunque postule el staff, la postulación pertenece al dueño del negocio")
}

func TestPostular_ProgramaInactivo_Rechaza(t *testing.T) {
	f := newAppFixture()
	f.seedBusiness("n1", "cliente-1")
	f.seedProgram("p1", false)

	_, err := f.uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateApplicationRequest{
		NegocioID: "n1", ProgramaID: "p1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPostular_NegocioInexistente_RetornaNotFound(t *testing.T) {
	f := newAppFixture()
	f.seedProgram("p1", true)

	_, err := f.uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateApplicationRequest{
		NegocioID: "no-existe", ProgramaID: "p1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetPostulacion_ClienteAjeno_Prohibido(t *testing.T) {
	f := newAppFixture()
	f.seedBusiness("n1", "cliente-1")
	f.seedProgram("p1", true)
	created, err := f.uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateApplicationRequest{
		NegocioID: "n1", ProgramaID: "p1",
	})
	require.NoError(t, err)

	_, err = f.uc.GetByID(context.Background(), clienteActor("cliente-2"), created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El staff sí puede leer postulaciones ajenas.
	_, err = f.uc.GetByID(context.Background(), adminActor(), created.ID)
	assert.NoError(t, err)
}

func TestListPostulaciones_ClienteSoloVeLasPropias(t *testing.T) {
	f := newAppFixture()
	f.seedBusiness("n1", "cliente-1")
	f.seedBusiness("n2", "cliente-2")
	f.seedProgram("p1", true)

	_, err := f.uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateApplicationRequest{NegocioID: "n1", ProgramaID: "p1"})
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), clienteActor("cliente-2"), dto.CreateApplicationRequest{NegocioID: "n2", ProgramaID: "p1"})
	require.NoError(t, err)

	// Aunque el cliente pida el filtro de otro usuario, el alcance se fuerza.
	list, err := f.uc.List(context.Background(), clienteActor("cliente-1"), repository.ApplicationFilter{UsuarioID: "cliente-2"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cliente-1", list[0].UsuarioID)

	// El staff ve todas.
	all, err := f.uc.List(context.Background(), adminActor(), repository.ApplicationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestActualizarRespuestas_ReemplazaElConjuntoCompleto(t *testing.T) {
	f := newAppFixture()
	f.seedBusiness("n1", "cliente-1")
	f.seedProgram("p1", true)
	created, err := f.uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateApplicationRequest{
		NegocioID: "n1", ProgramaID: "p1",
		Respuestas: []dto.AnswerInput{
			{PreguntaID: "q1", Respuesta: "vieja 1"},
			{PreguntaID: "q2", Respuesta: "vieja 2"},
		},
	})
	require.NoError(t, err)

	resp, err := f.uc.UpdateAnswers(context.Background(), clienteActor("cliente-1"), created.ID, dto.UpdateAnswersRequest{
		Respuestas: []dto.AnswerInput{{PreguntaID: "q3", Respuesta: "nueva"}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Respuestas, 1)
	assert.Equal(t, "q3", resp.Respuestas[0].PreguntaID)

	stored, _ := f.answers.ListByApplication(context.Background(), created.ID)
	require.Len(t, stored, 1, "las respuestas anteriores no deben sobrevivir al reemplazo")
	assert.Equal(t, "nueva", stored[0].Respuesta)
}

func TestActualizarRespuestas_ClienteAjeno_Prohibido(t *testing.T) {
	f := newAppFixture()
	f.seedBusiness("n1", "cliente-1")
	f.seedProgram("p1", true)
	created, err := f.uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateApplicationRequest{NegocioID: "n1", ProgramaID: "p1"})
	require.NoError(t, err)

	_, err = f.uc.UpdateAnswers(context.Background(), clienteActor("cliente-2"), created.ID, dto.UpdateAnswersRequest{
		Respuestas: []dto.AnswerInput{{PreguntaID: "q1", Respuesta: "x"}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCambiarEstado_PendienteAAprobada(t *testing.T) {
	f := newAppFixture()
	f.seedBusiness("n1", "cliente-1")
	f.seedProgram("p1", true)
	created, err := f.uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateApplicationRequest{NegocioID: "n1", ProgramaID: "p1"})
	require.NoError(t, err)

	resp, err := f.uc.SetState(context.Background(), created.ID, dto.SetApplicationStateRequest{
		Estado: entity.ApplicationAprobada, NotasAdmin: "documentación completa",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationAprobada, resp.Estado)
	assert.Equal(t, "documentación completa", resp.NotasAdmin)

	stored, _ := f.apps.GetByID(context.Background(), created.ID)
	assert.Equal(t, entity.ApplicationAprobada, stored.Estado)
}

func TestEliminarPostulacion_ArrastraLasRespuestas(t *testing.T) {
	f := newAppFixture()
	f.seedBusiness("n1", "cliente-1")
	f.seedProgram("p1", true)
	created, err := f.uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateApplicationRequest{
		NegocioID: "n1", ProgramaID: "p1",
		Respuestas: []dto.AnswerInput{{PreguntaID: "q1", Respuesta: "x"}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), created.ID))

	stored, _ := f.answers.ListByApplication(context.Background(), created.ID)
	assert.Empty(t, stored, "las respuestas caen junto con la postulación")
}
