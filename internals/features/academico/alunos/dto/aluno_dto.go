// file: internals/features/academico/alunos/dto/aluno_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sgescolar_backend/internals/features/academico/alunos/model"
)

type AlunoCreateRequest struct {
	AlunoTurmaID        uuid.UUID  `json:"aluno_turma_id" validate:"required"`
	AlunoNome           string     `json:"aluno_nome" validate:"required,min=3,max=150"`
	AlunoDataNascimento *time.Time `json:"aluno_data_nascimento"`
}

type AlunoTransicaoRequest struct {
	AlunoPercentagemFrequencia *float64 `json:"aluno_percentagem_frequencia" validate:"omitempty,min=0,max=100"`
	AlunoMatriculaCondicional  *bool    `json:"aluno_matricula_condicional"`
	AlunoTipoExame             *string  `json:"aluno_tipo_exame" validate:"omitempty,oneof=normal extraordinario recurso"`
	AlunoObservacaoTransicao   *string  `json:"aluno_observacao_transicao" validate:"omitempty,max=500"`
}

// RegisterAccountRequest liga uma conta (aluno ou encarregado) a uma
// matrícula existente.
type RegisterAccountRequest struct {
	AlunoID uuid.UUID `json:"aluno_id" validate:"required"`
	UserID  uuid.UUID `json:"user_id" validate:"required"`
}

type AlunoResponse struct {
	AlunoID                    uuid.UUID  `json:"aluno_id"`
	AlunoTurmaID               uuid.UUID  `json:"aluno_turma_id"`
	AlunoUserID                *uuid.UUID `json:"aluno_user_id,omitempty"`
	AlunoEncarregadoUserID     *uuid.UUID `json:"aluno_encarregado_user_id,omitempty"`
	AlunoNome                  string     `json:"aluno_nome"`
	AlunoDataNascimento        *time.Time `json:"aluno_data_nascimento,omitempty"`
	AlunoPercentagemFrequencia *float64   `json:"aluno_percentagem_frequencia,omitempty"`
	AlunoMatriculaCondicional  bool       `json:"aluno_matricula_condicional"`
	AlunoTipoExame             *string    `json:"aluno_tipo_exame,omitempty"`
	AlunoMotivoRetencao        *string    `json:"aluno_motivo_retencao,omitempty"`
	AlunoObservacaoTransicao   *string    `json:"aluno_observacao_transicao,omitempty"`
	AlunoCreatedAt             time.Time  `json:"aluno_created_at"`
}

func (r *AlunoCreateRequest) ToModel() *model.AlunoModel {
	return &model.AlunoModel{
		AlunoTurmaID:        r.AlunoTurmaID,
		AlunoNome:           r.AlunoNome,
		AlunoDataNascimento: r.AlunoDataNascimento,
	}
}

func (r *AlunoTransicaoRequest) ApplyTo(m *model.AlunoModel) {
	if r.AlunoPercentagemFrequencia != nil {
		m.AlunoPercentagemFrequencia = r.AlunoPercentagemFrequencia
	}
	if r.AlunoMatriculaCondicional != nil {
		m.AlunoMatriculaCondicional = *r.AlunoMatriculaCondicional
	}
	if r.AlunoTipoExame != nil {
		m.AlunoTipoExame = r.AlunoTipoExame
	}
	if r.AlunoObservacaoTransicao != nil {
		m.AlunoObservacaoTransicao = r.AlunoObservacaoTransicao
	}
}

func FromModel(m *model.AlunoModel) AlunoResponse {
	return AlunoResponse{
		AlunoID:                    m.AlunoID,
		AlunoTurmaID:               m.AlunoTurmaID,
		AlunoUserID:                m.AlunoUserID,
		AlunoEncarregadoUserID:     m.AlunoEncarregadoUserID,
		AlunoNome:                  m.AlunoNome,
		AlunoDataNascimento:        m.AlunoDataNascimento,
		AlunoPercentagemFrequencia: m.AlunoPercentagemFrequencia,
		AlunoMatriculaCondicional:  m.AlunoMatriculaCondicional,
		AlunoTipoExame:             m.AlunoTipoExame,
		AlunoMotivoRetencao:        m.AlunoMotivoRetencao,
		AlunoObservacaoTransicao:   m.AlunoObservacaoTransicao,
		AlunoCreatedAt:             m.AlunoCreatedAt,
	}
}

func FromModels(ms []model.AlunoModel) []AlunoResponse {
	out := make([]AlunoResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
