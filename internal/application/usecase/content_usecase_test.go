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

func seedAviso(r *fakeAnnouncementRepo, id, destinatario string, activo bool) {
	r.avisos[id] = &entity.Announcement{
		ID: id, Titulo: "Aviso " + id, Contenido: "contenido",
		Destinatario: destinatario, Activo: activo,
		CreadoPor: "admin-1", FechaPublicacion: time.Now(),
	}
}

func TestCrearAviso_DestinatarioPorDefectoTodos(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	uc := usecase.NewAnnouncementUseCase(repo)

	resp, err := uc.Create(context.Background(), "admin-1", dto.CreateAnnouncementRequest{
		Titulo: "Convocatoria abierta", Contenido: "detalle",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AudienceTodos, resp.Destinatario)
	assert.True(t, resp.Activo)
}

func TestGetAviso_AudienciaPorRol(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	uc := usecase.NewAnnouncementUseCase(repo)
	seedAviso(repo, "a-colab", entity.AudienceColaboradores, true)
	seedAviso(repo, "a-clientes", entity.AudienceClientes, true)
	seedAviso(repo, "a-todos", entity.AudienceTodos, true)

	// Cliente: no alcanza los avisos de colaboradores.
	_, err := uc.GetByID(context.Background(), clienteActor("cliente-1"), "a-colab")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.GetByID(context.Background(), clienteActor("cliente-1"), "a-clientes")
	assert.NoError(t, err)
	_, err = uc.GetByID(context.Background(), clienteActor("cliente-1"), "a-todos")
	assert.NoError(t, err)

	// Colaborador: no alcanza los avisos de clientes.
	_, err = uc.GetByID(context.Background(), colaboradorActor(), "a-clientes")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.GetByID(context.Background(), colaboradorActor(), "a-colab")
	assert.NoError(t, err)

	// Admin lee todo.
	_, err = uc.GetByID(context.Background(), adminActor(), "a-colab")
	assert.NoError(t, err)
	_, err = uc.GetByID(context.Background(), adminActor(), "a-clientes")
	assert.NoError(t, err)
}

func TestListAvisos_ClienteSoloVeSusAudienciasActivas(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	uc := usecase.NewAnnouncementUseCase(repo)
	seedAviso(repo, "a1", entity.AudienceTodos, true)
	seedAviso(repo, "a2", entity.AudienceClientes, true)
	seedAviso(repo, "a3", entity.AudienceColaboradores, true)
	seedAviso(repo, "a4", entity.AudienceTodos, false) // inactivo

	list, err := uc.List(context.Background(), clienteActor("cliente-1"), repository.AnnouncementFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2, "el cliente ve todos+clientes y solo activos")
	for _, a := range list {
		assert.NotEqual(t, entity.AudienceColaboradores, a.Destinatario)
		assert.True(t, a.Activo)
	}

	// Admin: sin restricción de audiencia ni de activo.
	all, err := uc.List(context.Background(), adminActor(), repository.AnnouncementFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestContacto_PrimeraLecturaCreaElSingleton(t *testing.T) {
	repo := &fakeContactRepo{}
	uc := usecase.NewContactUseCase(repo)

	resp, err := uc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID, "la fila vacía se crea en la primera lectura")
	assert.Empty(t, resp.Telefono)

	again, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID, "lecturas posteriores devuelven la misma fila")
}
