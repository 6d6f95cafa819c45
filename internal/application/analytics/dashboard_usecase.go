// Package analytics contiene los casos de uso de consultas agregadas para el
// dashboard administrativo y las estadísticas del cliente.
package analytics

import (
	"context"
	"fmt"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

const (
	dashboardTopCourses = 5 // cursos en el ranking del dashboard
	dashboardRecent     = 5 // registros en el widget de actividad reciente
)

// DashboardUseCase agrega los totales, distribuciones y actividad reciente.
//
// Fuente de datos: DashboardRepository más los Latest de negocios y
// postulaciones. Todas las consultas son read-only e independientes entre sí,
// así que cada método las lanza en paralelo.
type DashboardUseCase struct {
	dashRepo     repository.DashboardRepository
	businessRepo repository.BusinessRepository
	appRepo      repository.ApplicationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	dashRepo repository.DashboardRepository,
	businessRepo repository.BusinessRepository,
	appRepo repository.ApplicationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, businessRepo: businessRepo, appRepo: appRepo}
}

type countResult struct {
	n   int
	err error
}

// GetGeneralStats construye los totales del dashboard administrativo.
// Ocho consultas en paralelo, una goroutine por conteo.
func (uc *DashboardUseCase) GetGeneralStats(ctx context.Context) (*dto.GeneralStatsDTO, error) {
	calls := []func(context.Context) (int, error){
		uc.dashRepo.CountActiveBusinesses,
		uc.dashRepo.CountActiveClients,
		uc.dashRepo.CountActivePrograms,
		func(ctx context.Context) (int, error) { return uc.dashRepo.CountApplications(ctx, "") },
		func(ctx context.Context) (int, error) {
			return uc.dashRepo.CountApplications(ctx, entity.ApplicationPendiente)
		},
		uc.dashRepo.CountActiveCourses,
		uc.dashRepo.CountActiveWorkers,
		uc.dashRepo.CountActiveAnnouncements,
	}
	totals, err := runCounts(ctx, calls)
	if err != nil {
		return nil, fmt.Errorf("dashboard: estadísticas generales: %w", err)
	}
	return &dto.GeneralStatsDTO{
		NegociosActivos:         totals[0],
		ClientesActivos:         totals[1],
		ProgramasActivos:        totals[2],
		PostulacionesTotal:      totals[3],
		PostulacionesPendientes: totals[4],
		CursosActivos:           totals[5],
		TrabajadoresActivos:     totals[6],
		AvisosActivos:           totals[7],
	}, nil
}

// GetClientStats construye los totales propios del cliente autenticado.
func (uc *DashboardUseCase) GetClientStats(ctx context.Context, usuarioID string) (*dto.ClientStatsDTO, error) {
	calls := []func(context.Context) (int, error){
		func(ctx context.Context) (int, error) { return uc.dashRepo.CountBusinessesByOwner(ctx, usuarioID) },
		func(ctx context.Context) (int, error) { return uc.dashRepo.CountApplicationsByUser(ctx, usuarioID, "") },
		func(ctx context.Context) (int, error) {
			return uc.dashRepo.CountApplicationsByUser(ctx, usuarioID, entity.ApplicationPendiente)
		},
		func(ctx context.Context) (int, error) { return uc.dashRepo.CountEnrollmentsByUser(ctx, usuarioID) },
	}
	totals, err := runCounts(ctx, calls)
	if err != nil {
		return nil, fmt.Errorf("dashboard: estadísticas del cliente: %w", err)
	}
	return &dto.ClientStatsDTO{
		MisNegocios:                totals[0],
		MisPostulaciones:           totals[1],
		MisPostulacionesPendientes: totals[2],
		MisInscripciones:           totals[3],
	}, nil
}

// GetCharts construye las tres distribuciones de las gráficas en paralelo.
func (uc *DashboardUseCase) GetCharts(ctx context.Context) (*dto.ChartsDTO, error) {
	type catResult struct {
		rows []repository.CategoryCount
		err  error
	}
	type stateResult struct {
		rows []repository.StateCount
		err  error
	}
	type progResult struct {
		rows []repository.ProgramCount
		err  error
	}

	catCh := make(chan catResult, 1)
	stateCh := make(chan stateResult, 1)
	progCh := make(chan progResult, 1)

	go func() {
		rows, err := uc.dashRepo.BusinessesByCategory(ctx)
		catCh <- catResult{rows, err}
	}()
	go func() {
		rows, err := uc.dashRepo.ApplicationsByState(ctx)
		stateCh <- stateResult{rows, err}
	}()
	go func() {
		rows, err := uc.dashRepo.ApplicationsByProgram(ctx)
		progCh <- progResult{rows, err}
	}()

	cat := <-catCh
	state := <-stateCh
	prog := <-progCh

	if cat.err != nil {
		return nil, fmt.Errorf("dashboard: negocios por categoría: %w", cat.err)
	}
	if state.err != nil {
		return nil, fmt.Errorf("dashboard: postulaciones por estado: %w", state.err)
	}
	if prog.err != nil {
		return nil, fmt.Errorf("dashboard: postulaciones por programa: %w", prog.err)
	}
	return &dto.ChartsDTO{
		NegociosPorCategoria:     cat.rows,
		PostulacionesPorEstado:   state.rows,
		PostulacionesPorPrograma: prog.rows,
	}, nil
}

// GetRecentActivity devuelve los últimos negocios y postulaciones.
func (uc *DashboardUseCase) GetRecentActivity(ctx context.Context) (*dto.RecentActivityDTO, error) {
	type bizResult struct {
		rows []*entity.Business
		err  error
	}
	type appResult struct {
		rows []*entity.Application
		err  error
	}

	bizCh := make(chan bizResult, 1)
	appCh := make(chan appResult, 1)

	go func() {
		rows, err := uc.businessRepo.Latest(ctx, dashboardRecent)
		bizCh <- bizResult{rows, err}
	}()
	go func() {
		rows, err := uc.appRepo.Latest(ctx, dashboardRecent)
		appCh <- appResult{rows, err}
	}()

	biz := <-bizCh
	apps := <-appCh

	if biz.err != nil {
		return nil, fmt.Errorf("dashboard: negocios recientes: %w", biz.err)
	}
	if apps.err != nil {
		return nil, fmt.Errorf("dashboard: postulaciones recientes: %w", apps.err)
	}

	out := &dto.RecentActivityDTO{
		Negocios:      make([]*dto.BusinessResponse, 0, len(biz.rows)),
		Postulaciones: make([]*dto.ApplicationResponse, 0, len(apps.rows)),
	}
	for _, b := range biz.rows {
		out.Negocios = append(out.Negocios, &dto.BusinessResponse{
			ID:            b.ID,
			UsuarioID:     b.UsuarioID,
			CategoriaID:   b.CategoriaID,
			NombreNegocio: b.NombreNegocio,
			RFC:           b.RFC,
			Activo:        b.Activo,
			FechaRegistro: b.FechaRegistro,
		})
	}
	for _, a := range apps.rows {
		out.Postulaciones = append(out.Postulaciones, &dto.ApplicationResponse{
			ID:               a.ID,
			NegocioID:        a.NegocioID,
			ProgramaID:       a.ProgramaID,
			UsuarioID:        a.UsuarioID,
			Estado:           a.Estado,
			FechaPostulacion: a.FechaPostulacion,
			Respuestas:       []dto.AnswerResponse{},
		})
	}
	return out, nil
}

// GetTopCourses devuelve los cursos activos con más inscritos.
func (uc *DashboardUseCase) GetTopCourses(ctx context.Context) ([]repository.CourseCount, error) {
	rows, err := uc.dashRepo.TopCourses(ctx, dashboardTopCourses)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top cursos: %w", err)
	}
	return rows, nil
}

// runCounts lanza cada conteo en su goroutine y recoge en orden.
func runCounts(ctx context.Context, calls []func(context.Context) (int, error)) ([]int, error) {
	chans := make([]chan countResult, len(calls))
	for i, call := range calls {
		chans[i] = make(chan countResult, 1)
		go func(ch chan countResult, fn func(context.Context) (int, error)) {
			n, err := fn(ctx)
			ch <- countResult{n, err}
		}(chans[i], call)
	}
	out := make([]int, len(calls))
	for i, ch := range chans {
		res := <-ch
		if res.err != nil {
			return nil, res.err
		}
		out[i] = res.n
	}
	return out, nil
}
