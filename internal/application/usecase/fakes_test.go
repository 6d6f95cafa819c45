package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Implementan los
// puertos de dominio con la misma convención (nil, nil) en los Get* cuando el
// registro no existe.
// ──────────────────────────────────────────────────────────────────────────────

func adminActor() *entity.User {
	return &entity.User{ID: "admin-1", Rol: entity.RoleAdmin, Activo: true}
}

func colaboradorActor() *entity.User {
	return &entity.User{ID: "colab-1", Rol: entity.RoleColaborador, Activo: true}
}

func clienteActor(id string) *entity.User {
	return &entity.User{ID: id, Rol: entity.RoleCliente, Activo: true}
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

// ── cursos ────────────────────────────────────────────────────────────────────

type fakeCourseRepo struct {
	courses map[string]*entity.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[string]*entity.Course{}}
}

func (r *fakeCourseRepo) Create(_ context.Context, c *entity.Course) error {
	r.courses[c.ID] = c
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id string) (*entity.Course, error) {
	return r.courses[id], nil
}

func (r *fakeCourseRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Course, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeCourseRepo) Update(_ context.Context, c *entity.Course) error {
	if _, ok := r.courses[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.courses[c.ID] = c
	return nil
}

func (r *fakeCourseRepo) List(_ context.Context, f repository.CourseFilter) ([]*entity.Course, error) {
	var out []*entity.Course
	for _, c := range r.courses {
		if f.Activo != nil && c.Activo != *f.Activo {
			continue
		}
		if f.Modalidad != "" && c.Modalidad != f.Modalidad {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id string) error {
	delete(r.courses, id)
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments []*entity.Enrollment
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, e *entity.Enrollment) error {
	for _, ex := range r.enrollments {
		if ex.UsuarioID == e.UsuarioID && ex.CursoID == e.CursoID {
			return domain.ErrAlreadyEnrolled
		}
	}
	r.enrollments = append(r.enrollments, e)
	return nil
}

func (r *fakeEnrollmentRepo) CountByCourse(_ context.Context, cursoID string) (int, error) {
	n := 0
	for _, e := range r.enrollments {
		if e.CursoID == cursoID {
			n++
		}
	}
	return n, nil
}

func (r *fakeEnrollmentRepo) ListByCourse(_ context.Context, cursoID string) ([]*entity.Enrollment, error) {
	var out []*entity.Enrollment
	for _, e := range r.enrollments {
		if e.CursoID == cursoID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) CountByUser(_ context.Context, usuarioID string) (int, error) {
	n := 0
	for _, e := range r.enrollments {
		if e.UsuarioID == usuarioID {
			n++
		}
	}
	return n, nil
}

// fakeEnrollTx ejecuta el cierre directamente sobre los fakes; no hay
// transacción real, pero preserva el contrato del runner.
type fakeEnrollTx struct {
	courses *fakeCourseRepo
	enrolls *fakeEnrollmentRepo
}

func (t *fakeEnrollTx) RunEnrollment(ctx context.Context, fn func(repository.CourseRepository, repository.EnrollmentRepository) error) error {
	return fn(t.courses, t.enrolls)
}

// lockingEnrollTx serializa las admisiones con un mutex, igual que el
// SELECT ... FOR UPDATE sobre la fila del curso serializa las transacciones
// reales. Permite ejercitar admisiones concurrentes sobre los fakes.
type lockingEnrollTx struct {
	mu      sync.Mutex
	courses *fakeCourseRepo
	enrolls *fakeEnrollmentRepo
}

func (t *lockingEnrollTx) RunEnrollment(ctx context.Context, fn func(repository.CourseRepository, repository.EnrollmentRepository) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.courses, t.enrolls)
}

// ── postulaciones ─────────────────────────────────────────────────────────────

type fakeAnswerRepo struct {
	answers []*entity.Answer
}

func (r *fakeAnswerRepo) BulkInsert(_ context.Context, answers []*entity.Answer) error {
	r.answers = append(r.answers, answers...)
	return nil
}

func (r *fakeAnswerRepo) DeleteByApplication(_ context.Context, postulacionID string) error {
	kept := r.answers[:0]
	for _, a := range r.answers {
		if a.PostulacionID != postulacionID {
			kept = append(kept, a)
		}
	}
	r.answers = kept
	return nil
}

func (r *fakeAnswerRepo) ListByApplication(_ context.Context, postulacionID string) ([]*entity.Answer, error) {
	var out []*entity.Answer
	for _, a := range r.answers {
		if a.PostulacionID == postulacionID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	apps    map[string]*entity.Application
	answers *fakeAnswerRepo
}

func newFakeApplicationRepo(answers *fakeAnswerRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[string]*entity.Application{}, answers: answers}
}

func (r *fakeApplicationRepo) Create(_ context.Context, a *entity.Application) error {
	r.apps[a.ID] = a
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, nil
	}
	a.Respuestas, _ = r.answers.ListByApplication(ctx, id)
	return a, nil
}

func (r *fakeApplicationRepo) List(_ context.Context, f repository.ApplicationFilter) ([]*entity.Application, error) {
	var out []*entity.Application
	for _, a := range r.apps {
		if f.Estado != "" && a.Estado != f.Estado {
			continue
		}
		if f.ProgramaID != "" && a.ProgramaID != f.ProgramaID {
			continue
		}
		if f.NegocioID != "" && a.NegocioID != f.NegocioID {
			continue
		}
		if f.UsuarioID != "" && a.UsuarioID != f.UsuarioID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeApplicationRepo) SetState(_ context.Context, id, estado, notasAdmin string) error {
	a, ok := r.apps[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Estado = estado
	a.NotasAdmin = notasAdmin
	return nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id string) error {
	delete(r.apps, id)
	return r.answers.DeleteByApplication(ctx, id)
}

func (r *fakeApplicationRepo) Latest(_ context.Context, limit int) ([]*entity.Application, error) {
	var out []*entity.Application
	for _, a := range r.apps {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FechaPostulacion.After(out[j].FechaPostulacion)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeApplicationTx struct {
	apps    *fakeApplicationRepo
	answers *fakeAnswerRepo
}

func (t *fakeApplicationTx) RunApplication(ctx context.Context, fn func(repository.ApplicationRepository, repository.AnswerRepository) error) error {
	return fn(t.apps, t.answers)
}

// ── negocios y categorías ─────────────────────────────────────────────────────

type fakeBusinessRepo struct {
	businesses map[string]*entity.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: map[string]*entity.Business{}}
}

func (r *fakeBusinessRepo) Create(_ context.Context, b *entity.Business) error {
	r.businesses[b.ID] = b
	return nil
}

func (r *fakeBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	return r.businesses[id], nil
}

func (r *fakeBusinessRepo) Update(_ context.Context, b *entity.Business) error {
	if _, ok := r.businesses[b.ID]; !ok {
		return domain.ErrNotFound
	}
	r.businesses[b.ID] = b
	return nil
}

func (r *fakeBusinessRepo) List(_ context.Context, f repository.BusinessFilter) ([]*entity.Business, error) {
	var out []*entity.Business
	for _, b := range r.businesses {
		if f.CategoriaID != "" && b.CategoriaID != f.CategoriaID {
			continue
		}
		if f.Activo != nil && b.Activo != *f.Activo {
			continue
		}
		if f.UsuarioID != "" && b.UsuarioID != f.UsuarioID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBusinessRepo) Delete(_ context.Context, id string) error {
	delete(r.businesses, id)
	return nil
}

func (r *fakeBusinessRepo) Latest(_ context.Context, limit int) ([]*entity.Business, error) {
	var out []*entity.Business
	for _, b := range r.businesses {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FechaRegistro.After(out[j].FechaRegistro)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context, activo *bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if activo != nil && c.Activo != *activo {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

// ── programas y preguntas ─────────────────────────────────────────────────────

type fakeQuestionRepo struct {
	questions map[string]*entity.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[string]*entity.Question{}}
}

func (r *fakeQuestionRepo) Create(_ context.Context, q *entity.Question) error {
	r.questions[q.ID] = q
	return nil
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, id string) (*entity.Question, error) {
	return r.questions[id], nil
}

func (r *fakeQuestionRepo) Update(_ context.Context, q *entity.Question) error {
	r.questions[q.ID] = q
	return nil
}

func (r *fakeQuestionRepo) List(_ context.Context, f repository.QuestionFilter) ([]*entity.Question, error) {
	var out []*entity.Question
	for _, q := range r.questions {
		if f.Activa != nil && q.Activa != *f.Activa {
			continue
		}
		if f.Categoria != "" && q.Categoria != f.Categoria {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id string) error {
	delete(r.questions, id)
	return nil
}

type fakeProgramRepo struct {
	programs    map[string]*entity.Program
	assignments []*entity.ProgramQuestion
	questions   *fakeQuestionRepo
}

func newFakeProgramRepo(questions *fakeQuestionRepo) *fakeProgramRepo {
	return &fakeProgramRepo{programs: map[string]*entity.Program{}, questions: questions}
}

func (r *fakeProgramRepo) Create(_ context.Context, p *entity.Program) error {
	r.programs[p.ID] = p
	return nil
}

func (r *fakeProgramRepo) GetByID(_ context.Context, id string) (*entity.Program, error) {
	return r.programs[id], nil
}

func (r *fakeProgramRepo) Update(_ context.Context, p *entity.Program) error {
	r.programs[p.ID] = p
	return nil
}

func (r *fakeProgramRepo) List(_ context.Context, f repository.ProgramFilter) ([]*entity.Program, error) {
	var out []*entity.Program
	for _, p := range r.programs {
		if f.Activo != nil && p.Activo != *f.Activo {
			continue
		}
		if f.CategoriaID != "" && p.CategoriaID != f.CategoriaID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProgramRepo) Delete(_ context.Context, id string) error {
	delete(r.programs, id)
	return nil
}

func (r *fakeProgramRepo) AssignQuestion(_ context.Context, pq *entity.ProgramQuestion) error {
	r.assignments = append(r.assignments, pq)
	return nil
}

func (r *fakeProgramRepo) UnassignQuestion(_ context.Context, programaID, preguntaID string) error {
	kept := r.assignments[:0]
	for _, pq := range r.assignments {
		if pq.ProgramaID != programaID || pq.PreguntaID != preguntaID {
			kept = append(kept, pq)
		}
	}
	r.assignments = kept
	return nil
}

func (r *fakeProgramRepo) ListActiveQuestions(ctx context.Context, programaID string) ([]*entity.ProgramQuestion, error) {
	var out []*entity.ProgramQuestion
	for _, pq := range r.assignments {
		if pq.ProgramaID != programaID || !pq.Activa {
			continue
		}
		pq.Pregunta, _ = r.questions.GetByID(ctx, pq.PreguntaID)
		out = append(out, pq)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

// ── avisos ────────────────────────────────────────────────────────────────────

type fakeAnnouncementRepo struct {
	avisos map[string]*entity.Announcement
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{avisos: map[string]*entity.Announcement{}}
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, a *entity.Announcement) error {
	r.avisos[a.ID] = a
	return nil
}

func (r *fakeAnnouncementRepo) GetByID(_ context.Context, id string) (*entity.Announcement, error) {
	return r.avisos[id], nil
}

func (r *fakeAnnouncementRepo) Update(_ context.Context, a *entity.Announcement) error {
	r.avisos[a.ID] = a
	return nil
}

func (r *fakeAnnouncementRepo) List(_ context.Context, f repository.AnnouncementFilter) ([]*entity.Announcement, error) {
	var out []*entity.Announcement
	for _, a := range r.avisos {
		if f.Activo != nil && a.Activo != *f.Activo {
			continue
		}
		if f.Tipo != "" && a.Tipo != f.Tipo {
			continue
		}
		if len(f.Audiencias) > 0 && !containsStr(f.Audiencias, a.Destinatario) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) Delete(_ context.Context, id string) error {
	delete(r.avisos, id)
	return nil
}

// ── contacto ──────────────────────────────────────────────────────────────────

type fakeContactRepo struct {
	contact *entity.ContactInfo
}

func (r *fakeContactRepo) GetFirst(_ context.Context) (*entity.ContactInfo, error) {
	return r.contact, nil
}

func (r *fakeContactRepo) Create(_ context.Context, c *entity.ContactInfo) error {
	r.contact = c
	return nil
}

func (r *fakeContactRepo) Update(_ context.Context, c *entity.ContactInfo) error {
	r.contact = c
	return nil
}

func containsStr(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// seedCourse registra un curso activo con el cupo indicado (nil = sin límite).
func seedCourse(r *fakeCourseRepo, id string, cupo *int, activo bool) *entity.Course {
	c := &entity.Course{
		ID:            id,
		Titulo:        "Curso " + id,
		Modalidad:     "virtual",
		CupoMaximo:    cupo,
		Activo:        activo,
		CreadoPor:     "admin-1",
		FechaCreacion: time.Now(),
	}
	r.courses[id] = c
	return c
}
