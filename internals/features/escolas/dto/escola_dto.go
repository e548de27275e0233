// file: internals/features/escolas/dto/escola_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sgescolar_backend/internals/features/escolas/model"
)

/* =========================================================
   REQUEST DTO — registo de escola (registerSchoolTenant)
========================================================= */

type EscolaRegisterRequest struct {
	EscolaNome         string   `json:"escola_nome" validate:"required,min=3,max=150"`
	EscolaCodigo       string   `json:"escola_codigo" validate:"required,min=2,max=30"`
	EscolaEmail        string   `json:"escola_email" validate:"required,email"`
	EscolaProvincia    string   `json:"escola_provincia" validate:"required"`
	EscolaMunicipio    string   `json:"escola_municipio" validate:"required"`
	EscolaNiveisEnsino []string `json:"escola_niveis_ensino"`
}

type EscolaBloqueioRequest struct {
	Motivo string `json:"motivo" validate:"required,min=5"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type EscolaResponse struct {
	EscolaID           uuid.UUID  `json:"escola_id"`
	EscolaNome         string     `json:"escola_nome"`
	EscolaCodigo       string     `json:"escola_codigo"`
	EscolaEmail        string     `json:"escola_email"`
	EscolaProvincia    string     `json:"escola_provincia"`
	EscolaMunicipio    string     `json:"escola_municipio"`
	EscolaNiveisEnsino []string   `json:"escola_niveis_ensino,omitempty"`
	EscolaIsActive     bool       `json:"escola_is_active"`
	EscolaIsBloqueada  bool       `json:"escola_is_bloqueada"`
	EscolaBloqueadaEm  *time.Time `json:"escola_bloqueada_em,omitempty"`
	EscolaCreatedAt    time.Time  `json:"escola_created_at"`
}

func FromModel(m *model.EscolaModel) EscolaResponse {
	return EscolaResponse{
		EscolaID:           m.EscolaID,
		EscolaNome:         m.EscolaNome,
		EscolaCodigo:       m.EscolaCodigo,
		EscolaEmail:        m.EscolaEmail,
		EscolaProvincia:    m.EscolaProvincia,
		EscolaMunicipio:    m.EscolaMunicipio,
		EscolaNiveisEnsino: m.EscolaNiveisEnsino,
		EscolaIsActive:     m.EscolaIsActive,
		EscolaIsBloqueada:  m.EscolaIsBloqueada,
		EscolaBloqueadaEm:  m.EscolaBloqueadaEm,
		EscolaCreatedAt:    m.EscolaCreatedAt,
	}
}

func FromModels(ms []model.EscolaModel) []EscolaResponse {
	out := make([]EscolaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
