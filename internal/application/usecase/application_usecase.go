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

// ApplicationUseCase postulaciones de negocios a programas. Las escrituras de
// respuestas van siempre por el TxRunner: postulación y respuestas entran o
// se reemplazan de forma atómica.
type ApplicationUseCase struct {
	repo         repository.ApplicationRepository
	businessRepo repository.BusinessRepository
	programRepo  repository.ProgramRepository
	tx           ApplicationTxRunner
}

// NewApplicationUseCase construye el caso de uso.
func NewApplicationUseCase(
	repo repository.ApplicationRepository,
	businessRepo repository.BusinessRepository,
	programRepo repository.ProgramRepository,
	tx ApplicationTxRunner,
) *ApplicationUseCase {
	return &ApplicationUseCase{repo: repo, businessRepo: businessRepo, programRepo: programRepo, tx: tx}
}

// Create registra una postulación en estado pendiente con sus respuestas
// iniciales. El negocio debe existir y, para clientes, ser propio; el
// programa debe existir y estar activo.
func (uc *ApplicationUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	business, err := uc.businessRepo.GetByID(ctx, in.NegocioID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.Rol.IsStaff() && business.UsuarioID != actor.ID {
		return nil, domain.ErrForbidden
	}
	program, err := uc.programRepo.GetByID(ctx, in.ProgramaID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, domain.ErrNotFound
	}
	if !program.Activo {
		return nil, domain.ErrInvalidInput
	}

	app := &entity.Application{
		ID:               uuid.New().String(),
		NegocioID:        in.NegocioID,
		ProgramaID:       in.ProgramaID,
		UsuarioID:        business.UsuarioID,
		Estado:           entity.ApplicationPendiente,
		FechaPostulacion: time.Now(),
	}
	answers := buildAnswers(app.ID, in.Respuestas)

	err = uc.tx.RunApplication(ctx, func(appRepo repository.ApplicationRepository, answerRepo repository.AnswerRepository) error {
		if err := appRepo.Create(ctx, app); err != nil {
			return err
		}
		return answerRepo.BulkInsert(ctx, answers)
	})
	if err != nil {
		return nil, err
	}
	app.Respuestas = answers
	return toApplicationResponse(app), nil
}

// GetByID obtiene una postulación con respuestas. Para clientes solo la propia.
func (uc *ApplicationUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.ApplicationResponse, error) {
	app, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.Rol.IsStaff() && app.UsuarioID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return toApplicationResponse(app), nil
}

// List lista postulaciones. Para clientes el filtro de propiedad se fuerza
// en la consulta.
func (uc *ApplicationUseCase) List(ctx context.Context, actor *entity.User, f repository.ApplicationFilter) ([]*dto.ApplicationResponse, error) {
	if !actor.Rol.IsStaff() {
		f.UsuarioID = actor.ID
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ApplicationResponse, 0, len(list))
	for _, app := range list {
		out = append(out, toApplicationResponse(app))
	}
	return out, nil
}

// UpdateAnswers reemplaza el conjunto completo de respuestas en una sola
// transacción: delete de las existentes + insert de las nuevas. Un fallo en
// el insert deja las respuestas anteriores intactas.
func (uc *ApplicationUseCase) UpdateAnswers(ctx context.Context, actor *entity.User, id string, in dto.UpdateAnswersRequest) (*dto.ApplicationResponse, error) {
	app, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.Rol.IsStaff() && app.UsuarioID != actor.ID {
		return nil, domain.ErrForbidden
	}
	answers := buildAnswers(id, in.Respuestas)
	err = uc.tx.RunApplication(ctx, func(_ repository.ApplicationRepository, answerRepo repository.AnswerRepository) error {
		if err := answerRepo.DeleteByApplication(ctx, id); err != nil {
			return err
		}
		return answerRepo.BulkInsert(ctx, answers)
	})
	if err != nil {
		return nil, err
	}
	app.Respuestas = answers
	return toApplicationResponse(app), nil
}

// SetState fija estado y notas administrativas. El estado es un string
// abierto; no hay tabla de transiciones.
func (uc *ApplicationUseCase) SetState(ctx context.Context, id string, in dto.SetApplicationStateRequest) (*dto.ApplicationResponse, error) {
	app, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetState(ctx, id, in.Estado, in.NotasAdmin); err != nil {
		return nil, err
	}
	app.Estado = in.Estado
	app.NotasAdmin = in.NotasAdmin
	return toApplicationResponse(app), nil
}

// Delete elimina una postulación; las respuestas caen en cascada.
func (uc *ApplicationUseCase) Delete(ctx context.Context, id string) error {
	app, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if app == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func buildAnswers(postulacionID string, in []dto.AnswerInput) []*entity.Answer {
	answers := make([]*entity.Answer, 0, len(in))
	for _, a := range in {
		answers = append(answers, &entity.Answer{
			ID:            uuid.New().String(),
			PostulacionID: postulacionID,
			PreguntaID:    a.PreguntaID,
			Respuesta:     a.Respuesta,
		})
	}
	return answers
}

func toApplicationResponse(app *entity.Application) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:               app.ID,
		NegocioID:        app.NegocioID,
		ProgramaID:       app.ProgramaID,
		UsuarioID:        app.UsuarioID,
		Estado:           app.Estado,
		NotasAdmin:       app.NotasAdmin,
		FechaPostulacion: app.FechaPostulacion,
		Respuestas:       make([]dto.AnswerResponse, 0, len(app.Respuestas)),
	}
	for _, a := range app.Respuestas {
		ar := dto.AnswerResponse{
			ID:         a.ID,
			PreguntaID: a.PreguntaID,
			Respuesta:  a.Respuesta,
		}
		if a.Pregunta != nil {
			ar.Pregunta = toQuestionResponse(a.Pregunta)
		}
		resp.Respuestas = append(resp.Respuestas, ar)
	}
	return resp
}
