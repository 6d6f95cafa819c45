package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

func newBusinessUC() (*usecase.BusinessUseCase, *fakeBusinessRepo, *fakeCategoryRepo) {
	businesses := newFakeBusinessRepo()
	categories := newFakeCategoryRepo()
	categories.categories["cat-1"] = &entity.Category{ID: "cat-1", Nombre: "Alimentos", Activo: true}
	return usecase.NewBusinessUseCase(businesses, categories), businesses, categories
}

func TestCrearNegocio_ClienteSiempreEsElPropietario(t *testing.T) {
	uc, _, _ := newBusinessUC()

	// El cliente no puede registrar negocios a nombre de otro: UsuarioID del
	// body se ignora.
	resp, err := uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateBusinessRequest{
		NombreNegocio: "Tortillería La Espiga",
		CategoriaID:   "cat-1",
		UsuarioID:     "cliente-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "cliente-1", resp.UsuarioID)
	assert.True(t, resp.Activo, "los negocios nacen activos")
}

func TestCrearNegocio_StaffPuedeAsignarPropietario(t *testing.T) {
	uc, _, _ := newBusinessUC()

	resp, err := uc.Create(context.Background(), adminActor(), dto.CreateBusinessRequest{
		NombreNegocio: "Carpintería Hermanos Ruiz",
		CategoriaID:   "cat-1",
		UsuarioID:     "cliente-7",
	})
	require.NoError(t, err)
	assert.Equal(t, "cliente-7", resp.UsuarioID)
}

func TestCrearNegocio_CategoriaInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newBusinessUC()

	_, err := uc.Create(context.Background(), clienteActor("cliente-1"), dto.CreateBusinessRequest{
		NombreNegocio: "Sin categoría", CategoriaID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetNegocio_ClienteAjeno_Prohibido(t *testing.T) {
	uc, businesses, _ := newBusinessUC()
	businesses.businesses["n1"] = &entity.Business{ID: "n1", UsuarioID: "cliente-1", CategoriaID: "cat-1", Activo: true}

	_, err := uc.GetByID(context.Background(), clienteActor("cliente-2"), "n1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	resp, err := uc.GetByID(context.Background(), clienteActor("cliente-1"), "n1")
	require.NoError(t, err)
	assert.Equal(t, "n1", resp.ID)
}

func TestListNegocios_ClienteSoloVeLosSuyos(t *testing.T) {
	uc, businesses, _ := newBusinessUC()
	businesses.businesses["n1"] = &entity.Business{ID: "n1", UsuarioID: "cliente-1", Activo: true}
	businesses.businesses["n2"] = &entity.Business{ID: "n2", UsuarioID: "cliente-2", Activo: true}

	list, err := uc.List(context.Background(), clienteActor("cliente-1"), repository.BusinessFilter{UsuarioID: "cliente-2"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "n1", list[0].ID)

	all, err := uc.List(context.Background(), colaboradorActor(), repository.BusinessFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestActualizarNegocio_ClienteNoPuedeTocarActivo(t *testing.T) {
	uc, businesses, _ := newBusinessUC()
	businesses.businesses["n1"] = &entity.Business{ID: "n1", UsuarioID: "cliente-1", CategoriaID: "cat-1", Activo: true}

	resp, err := uc.Update(context.Background(), clienteActor("cliente-1"), "n1", dto.UpdateBusinessRequest{
		NombreNegocio: strPtr("Nuevo nombre"),
		Activo:        boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo nombre", resp.NombreNegocio)
	assert.True(t, resp.Activo, "la bandera activo solo la mueve el staff")

	resp, err = uc.Update(context.Background(), adminActor(), "n1", dto.UpdateBusinessRequest{Activo: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, resp.Activo)
}

func TestActualizarNegocio_ClienteAjeno_Prohibido(t *testing.T) {
	uc, businesses, _ := newBusinessUC()
	businesses.businesses["n1"] = &entity.Business{ID: "n1", UsuarioID: "cliente-1", CategoriaID: "cat-1", Activo: true}

	_, err := uc.Update(context.Background(), clienteActor("cliente-2"), "n1", dto.UpdateBusinessRequest{
		NombreNegocio: strPtr("Hackeado"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
