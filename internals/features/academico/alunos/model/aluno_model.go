// file: internals/features/academico/alunos/model/aluno_model.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FrequenciaMinima é o limiar de transição de classe: abaixo disto o
// aluno não pode ficar em matrícula condicional.
const FrequenciaMinima = 66.67

const (
	TipoExameNormal         = "normal"
	TipoExameExtraordinario = "extraordinario"
	TipoExameRecurso        = "recurso"
)

// AlunoModel — matrícula do aluno numa turma. As contas de login do
// aluno e do encarregado são opcionais e ligadas depois do registo.
type AlunoModel struct {
	AlunoID      uuid.UUID `gorm:"column:aluno_id;type:uuid;default:gen_random_uuid();primaryKey" json:"aluno_id"`
	AlunoTurmaID uuid.UUID `gorm:"column:aluno_turma_id;type:uuid;not null;index" json:"aluno_turma_id"`

	AlunoUserID            *uuid.UUID `gorm:"column:aluno_user_id;type:uuid;index" json:"aluno_user_id,omitempty"`
	AlunoEncarregadoUserID *uuid.UUID `gorm:"column:aluno_encarregado_user_id;type:uuid;index" json:"aluno_encarregado_user_id,omitempty"`

	AlunoNome           string     `gorm:"column:aluno_nome;type:varchar(150);not null" json:"aluno_nome"`
	AlunoDataNascimento *time.Time `gorm:"column:aluno_data_nascimento;type:date" json:"aluno_data_nascimento,omitempty"`

	// Campos de transição de classe — normalizados no BeforeSave
	AlunoPercentagemFrequencia *float64 `gorm:"column:aluno_percentagem_frequencia;type:numeric(5,2)" json:"aluno_percentagem_frequencia,omitempty"`
	AlunoMatriculaCondicional  bool     `gorm:"column:aluno_matricula_condicional;not null;default:false" json:"aluno_matricula_condicional"`
	AlunoTipoExame             *string  `gorm:"column:aluno_tipo_exame;type:varchar(30)" json:"aluno_tipo_exame,omitempty"`
	AlunoMotivoRetencao        *string  `gorm:"column:aluno_motivo_retencao;type:text" json:"aluno_motivo_retencao,omitempty"`
	AlunoObservacaoTransicao   *string  `gorm:"column:aluno_observacao_transicao;type:text" json:"aluno_observacao_transicao,omitempty"`

	AlunoCreatedAt time.Time      `gorm:"column:aluno_created_at;autoCreateTime" json:"aluno_created_at"`
	AlunoUpdatedAt time.Time      `gorm:"column:aluno_updated_at;autoUpdateTime" json:"aluno_updated_at"`
	AlunoDeletedAt gorm.DeletedAt `gorm:"column:aluno_deleted_at;index" json:"aluno_deleted_at,omitempty"`
}

func (AlunoModel) TableName() string { return "alunos" }

// percentagem com vírgula decimal ("66,67")
func formatPercent(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// NormalizarTransicao aplica as regras de coerência dos campos de
// transição. Idempotente — correr duas vezes dá o mesmo resultado.
//
// Regras:
//  1. frequência abaixo do mínimo anula a matrícula condicional e,
//     se nenhum motivo foi indicado, sintetiza o motivo de retenção e
//     a observação de transição;
//  2. matrícula condicional sem tipo de exame assume o exame
//     extraordinário.
func (a *AlunoModel) NormalizarTransicao() {
	if a.AlunoPercentagemFrequencia != nil && *a.AlunoPercentagemFrequencia < FrequenciaMinima {
		a.AlunoMatriculaCondicional = false

		// um motivo indicado explicitamente (pelo conselho de turma,
		// p.ex.) nunca é substituído pelo sintetizado
		if a.AlunoMotivoRetencao == nil || *a.AlunoMotivoRetencao == "" {
			percent := formatPercent(*a.AlunoPercentagemFrequencia)
			motivo := fmt.Sprintf(
				"Frequência insuficiente: %s%% (mínimo exigido: %s%%)",
				percent, formatPercent(FrequenciaMinima),
			)
			a.AlunoMotivoRetencao = &motivo

			obs := fmt.Sprintf(
				"Transição retida automaticamente por frequência de %s%%",
				percent,
			)
			a.AlunoObservacaoTransicao = &obs
		}
	}

	if a.AlunoMatriculaCondicional && (a.AlunoTipoExame == nil || *a.AlunoTipoExame == "") {
		tipo := TipoExameExtraordinario
		a.AlunoTipoExame = &tipo
	}
}

func (a *AlunoModel) BeforeSave(tx *gorm.DB) error {
	a.NormalizarTransicao()
	return nil
}
