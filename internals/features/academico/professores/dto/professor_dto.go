// file: internals/features/academico/professores/dto/professor_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sgescolar_backend/internals/features/academico/professores/model"
)

type ProfessorCreateRequest struct {
	ProfessorNome   string     `json:"professor_nome" validate:"required,min=3,max=150"`
	ProfessorEmail  *string    `json:"professor_email" validate:"omitempty,email"`
	ProfessorUserID *uuid.UUID `json:"professor_user_id"`
}

type ProfessorResponse struct {
	ProfessorID        uuid.UUID  `json:"professor_id"`
	ProfessorEscolaID  uuid.UUID  `json:"professor_escola_id"`
	ProfessorUserID    *uuid.UUID `json:"professor_user_id,omitempty"`
	ProfessorNome      string     `json:"professor_nome"`
	ProfessorEmail     *string    `json:"professor_email,omitempty"`
	ProfessorIsActive  bool       `json:"professor_is_active"`
	ProfessorCreatedAt time.Time  `json:"professor_created_at"`
}

func (r *ProfessorCreateRequest) ToModel(escolaID uuid.UUID) *model.ProfessorModel {
	return &model.ProfessorModel{
		ProfessorEscolaID: escolaID,
		ProfessorUserID:   r.ProfessorUserID,
		ProfessorNome:     r.ProfessorNome,
		ProfessorEmail:    r.ProfessorEmail,
		ProfessorIsActive: true,
	}
}

func FromModel(m *model.ProfessorModel) ProfessorResponse {
	return ProfessorResponse{
		ProfessorID:        m.ProfessorID,
		ProfessorEscolaID:  m.ProfessorEscolaID,
		ProfessorUserID:    m.ProfessorUserID,
		ProfessorNome:      m.ProfessorNome,
		ProfessorEmail:     m.ProfessorEmail,
		ProfessorIsActive:  m.ProfessorIsActive,
		ProfessorCreatedAt: m.ProfessorCreatedAt,
	}
}

func FromModels(ms []model.ProfessorModel) []ProfessorResponse {
	out := make([]ProfessorResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
