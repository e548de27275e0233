// file: internals/features/academico/turmas/dto/turma_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sgescolar_backend/internals/features/academico/turmas/model"
)

type TurmaCreateRequest struct {
	TurmaNome       string `json:"turma_nome" validate:"required,min=1,max=80"`
	TurmaAnoLectivo string `json:"turma_ano_lectivo" validate:"required,max=20"`
	TurmaClasse     int    `json:"turma_classe" validate:"required,min=1,max=13"`
	TurmaTurno      string `json:"turma_turno" validate:"omitempty,oneof=manha tarde noite"`
}

type TurmaUpdateRequest struct {
	TurmaNome       *string `json:"turma_nome" validate:"omitempty,min=1,max=80"`
	TurmaAnoLectivo *string `json:"turma_ano_lectivo" validate:"omitempty,max=20"`
	TurmaClasse     *int    `json:"turma_classe" validate:"omitempty,min=1,max=13"`
	TurmaTurno      *string `json:"turma_turno" validate:"omitempty,oneof=manha tarde noite"`
}

type TurmaResponse struct {
	TurmaID         uuid.UUID `json:"turma_id"`
	TurmaEscolaID   uuid.UUID `json:"turma_escola_id"`
	TurmaNome       string    `json:"turma_nome"`
	TurmaAnoLectivo string    `json:"turma_ano_lectivo"`
	TurmaClasse     int       `json:"turma_classe"`
	TurmaTurno      string    `json:"turma_turno"`
	TurmaCreatedAt  time.Time `json:"turma_created_at"`
}

func (r *TurmaCreateRequest) ToModel(escolaID uuid.UUID) *model.TurmaModel {
	turno := r.TurmaTurno
	if turno == "" {
		turno = "manha"
	}
	return &model.TurmaModel{
		TurmaEscolaID:   escolaID,
		TurmaNome:       r.TurmaNome,
		TurmaAnoLectivo: r.TurmaAnoLectivo,
		TurmaClasse:     r.TurmaClasse,
		TurmaTurno:      turno,
	}
}

func (r *TurmaUpdateRequest) ApplyTo(m *model.TurmaModel) {
	if r.TurmaNome != nil {
		m.TurmaNome = *r.TurmaNome
	}
	if r.TurmaAnoLectivo != nil {
		m.TurmaAnoLectivo = *r.TurmaAnoLectivo
	}
	if r.TurmaClasse != nil {
		m.TurmaClasse = *r.TurmaClasse
	}
	if r.TurmaTurno != nil {
		m.TurmaTurno = *r.TurmaTurno
	}
}

func FromModel(m *model.TurmaModel) TurmaResponse {
	return TurmaResponse{
		TurmaID:         m.TurmaID,
		TurmaEscolaID:   m.TurmaEscolaID,
		TurmaNome:       m.TurmaNome,
		TurmaAnoLectivo: m.TurmaAnoLectivo,
		TurmaClasse:     m.TurmaClasse,
		TurmaTurno:      m.TurmaTurno,
		TurmaCreatedAt:  m.TurmaCreatedAt,
	}
}

func FromModels(ms []model.TurmaModel) []TurmaResponse {
	out := make([]TurmaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
