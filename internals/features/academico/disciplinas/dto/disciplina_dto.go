// file: internals/features/academico/disciplinas/dto/disciplina_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sgescolar_backend/internals/features/academico/disciplinas/model"
)

type DisciplinaCreateRequest struct {
	DisciplinaTurmaID      uuid.UUID `json:"disciplina_turma_id" validate:"required"`
	DisciplinaNome         string    `json:"disciplina_nome" validate:"required,min=2,max=100"`
	DisciplinaCargaSemanal *int      `json:"disciplina_carga_semanal" validate:"omitempty,min=1,max=40"`
}

type DisciplinaResponse struct {
	DisciplinaID           uuid.UUID `json:"disciplina_id"`
	DisciplinaTurmaID      uuid.UUID `json:"disciplina_turma_id"`
	DisciplinaNome         string    `json:"disciplina_nome"`
	DisciplinaCargaSemanal *int      `json:"disciplina_carga_semanal,omitempty"`
	DisciplinaCreatedAt    time.Time `json:"disciplina_created_at"`
}

func (r *DisciplinaCreateRequest) ToModel() *model.DisciplinaModel {
	return &model.DisciplinaModel{
		DisciplinaTurmaID:      r.DisciplinaTurmaID,
		DisciplinaNome:         r.DisciplinaNome,
		DisciplinaCargaSemanal: r.DisciplinaCargaSemanal,
	}
}

func FromModel(m *model.DisciplinaModel) DisciplinaResponse {
	return DisciplinaResponse{
		DisciplinaID:           m.DisciplinaID,
		DisciplinaTurmaID:      m.DisciplinaTurmaID,
		DisciplinaNome:         m.DisciplinaNome,
		DisciplinaCargaSemanal: m.DisciplinaCargaSemanal,
		DisciplinaCreatedAt:    m.DisciplinaCreatedAt,
	}
}

func FromModels(ms []model.DisciplinaModel) []DisciplinaResponse {
	out := make([]DisciplinaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
