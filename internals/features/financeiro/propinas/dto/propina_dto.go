// file: internals/features/financeiro/propinas/dto/propina_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sgescolar_backend/internals/features/financeiro/propinas/model"
)

type PropinaCreateRequest struct {
	PropinaAlunoID       uuid.UUID `json:"propina_aluno_id" validate:"required"`
	PropinaMes           int       `json:"propina_mes" validate:"required,min=1,max=12"`
	PropinaAno           int       `json:"propina_ano" validate:"required,min=2000,max=2100"`
	PropinaValorCentavos int64     `json:"propina_valor_centavos" validate:"required,min=0"`
}

type PropinaEstadoRequest struct {
	PropinaEstado string `json:"propina_estado" validate:"required,oneof=pendente paga em_atraso isenta"`
}

type PropinaResponse struct {
	PropinaID            uuid.UUID  `json:"propina_id"`
	PropinaEscolaID      uuid.UUID  `json:"propina_escola_id"`
	PropinaAlunoID       uuid.UUID  `json:"propina_aluno_id"`
	PropinaMes           int        `json:"propina_mes"`
	PropinaAno           int        `json:"propina_ano"`
	PropinaValorCentavos int64      `json:"propina_valor_centavos"`
	PropinaEstado        string     `json:"propina_estado"`
	PropinaPagoEm        *time.Time `json:"propina_pago_em,omitempty"`
	PropinaCreatedAt     time.Time  `json:"propina_created_at"`
}

func (r *PropinaCreateRequest) ToModel(escolaID uuid.UUID) *model.PropinaModel {
	return &model.PropinaModel{
		PropinaEscolaID:      escolaID,
		PropinaAlunoID:       r.PropinaAlunoID,
		PropinaMes:           r.PropinaMes,
		PropinaAno:           r.PropinaAno,
		PropinaValorCentavos: r.PropinaValorCentavos,
		PropinaEstado:        model.PropinaPendente,
	}
}

func FromModel(m *model.PropinaModel) PropinaResponse {
	return PropinaResponse{
		PropinaID:            m.PropinaID,
		PropinaEscolaID:      m.PropinaEscolaID,
		PropinaAlunoID:       m.PropinaAlunoID,
		PropinaMes:           m.PropinaMes,
		PropinaAno:           m.PropinaAno,
		PropinaValorCentavos: m.PropinaValorCentavos,
		PropinaEstado:        m.PropinaEstado,
		PropinaPagoEm:        m.PropinaPagoEm,
		PropinaCreatedAt:     m.PropinaCreatedAt,
	}
}

func FromModels(ms []model.PropinaModel) []PropinaResponse {
	out := make([]PropinaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
