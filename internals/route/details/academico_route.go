// file: internals/route/details/academico_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alunoController "sgescolar_backend/internals/features/academico/alunos/controller"
	disciplinaController "sgescolar_backend/internals/features/academico/disciplinas/controller"
	ptdController "sgescolar_backend/internals/features/academico/professor_turma_disciplina/controller"
	professorController "sgescolar_backend/internals/features/academico/professores/controller"
	turmaController "sgescolar_backend/internals/features/academico/turmas/controller"
	middlewares "sgescolar_backend/internals/middlewares"
)

// AcademicoRoutes — hierarquia turma → disciplina/aluno + atribuições.
// Leituras filtradas pelos escopos; escritas com narrowing dentro dos
// controllers.
func AcademicoRoutes(r fiber.Router, db *gorm.DB) {
	turmas := turmaController.NewTurmaController(db)
	tg := r.Group("/turmas")
	tg.Post("/", turmas.Create)
	tg.Get("/", turmas.List)
	tg.Get("/:id", turmas.GetByID)
	tg.Put("/:id", turmas.Update)
	tg.Delete("/:id", turmas.Delete)

	disciplinas := disciplinaController.NewDisciplinaController(db)
	dg := r.Group("/disciplinas")
	dg.Post("/", disciplinas.Create)
	dg.Get("/", disciplinas.List)
	dg.Get("/:id", disciplinas.GetByID)
	dg.Delete("/:id", disciplinas.Delete)

	professores := professorController.NewProfessorController(db)
	pg := r.Group("/professores")
	pg.Post("/", professores.Create)
	pg.Get("/", professores.List)
	pg.Get("/:id", professores.GetByID)
	pg.Delete("/:id", professores.Delete)

	alunos := alunoController.NewAlunoController(db)
	ag := r.Group("/alunos")
	ag.Post("/", alunos.Create)
	ag.Get("/", alunos.List)
	ag.Get("/:id", alunos.GetByID)
	ag.Put("/:id/transicao", alunos.UpdateTransicao)
	ag.Delete("/:id", alunos.Delete)
	ag.Post("/register-student-account", middlewares.RegisterRateLimiter(), alunos.RegisterStudentAccount)
	ag.Post("/register-guardian-account", middlewares.RegisterRateLimiter(), alunos.RegisterGuardianAccount)

	ptd := ptdController.NewPTDController(db)
	atg := r.Group("/atribuicoes")
	atg.Post("/", ptd.Create)
	atg.Get("/", ptd.List)
	atg.Delete("/:id", ptd.Delete)
}
