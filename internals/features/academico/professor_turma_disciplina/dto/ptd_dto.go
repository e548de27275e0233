// file: internals/features/academico/professor_turma_disciplina/dto/ptd_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sgescolar_backend/internals/features/academico/professor_turma_disciplina/model"
)

type PTDCreateRequest struct {
	PTDProfessorID  uuid.UUID `json:"ptd_professor_id" validate:"required"`
	PTDTurmaID      uuid.UUID `json:"ptd_turma_id" validate:"required"`
	PTDDisciplinaID uuid.UUID `json:"ptd_disciplina_id" validate:"required"`
}

type PTDResponse struct {
	PTDID           uuid.UUID `json:"ptd_id"`
	PTDProfessorID  uuid.UUID `json:"ptd_professor_id"`
	PTDTurmaID      uuid.UUID `json:"ptd_turma_id"`
	PTDDisciplinaID uuid.UUID `json:"ptd_disciplina_id"`
	PTDCreatedAt    time.Time `json:"ptd_created_at"`
}

func (r *PTDCreateRequest) ToModel() *model.PTDModel {
	return &model.PTDModel{
		PTDProfessorID:  r.PTDProfessorID,
		PTDTurmaID:      r.PTDTurmaID,
		PTDDisciplinaID: r.PTDDisciplinaID,
	}
}

func FromModel(m *model.PTDModel) PTDResponse {
	return PTDResponse{
		PTDID:           m.PTDID,
		PTDProfessorID:  m.PTDProfessorID,
		PTDTurmaID:      m.PTDTurmaID,
		PTDDisciplinaID: m.PTDDisciplinaID,
		PTDCreatedAt:    m.PTDCreatedAt,
	}
}

func FromModels(ms []model.PTDModel) []PTDResponse {
	out := make([]PTDResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
