// file: internals/features/financeiro/propinas/model/propina_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PropinaPendente = "pendente"
	PropinaPaga     = "paga"
	PropinaEmAtraso = "em_atraso"
	PropinaIsenta   = "isenta"
)

// PropinaModel — mensalidade de um aluno. Carrega a escola
// directamente (propina_escola_id) para o escopo financeiro não
// precisar de atravessar a hierarquia académica.
type PropinaModel struct {
	PropinaID       uuid.UUID `gorm:"column:propina_id;type:uuid;default:gen_random_uuid();primaryKey" json:"propina_id"`
	PropinaEscolaID uuid.UUID `gorm:"column:propina_escola_id;type:uuid;not null;index" json:"propina_escola_id"`
	PropinaAlunoID  uuid.UUID `gorm:"column:propina_aluno_id;type:uuid;not null;index" json:"propina_aluno_id"`

	PropinaMes int `gorm:"column:propina_mes;not null" json:"propina_mes"`
	PropinaAno int `gorm:"column:propina_ano;not null" json:"propina_ano"`

	// Valor em kwanzas, centavos incluídos (AOA * 100)
	PropinaValorCentavos int64 `gorm:"column:propina_valor_centavos;not null" json:"propina_valor_centavos"`

	PropinaEstado string     `gorm:"column:propina_estado;type:varchar(20);not null;default:'pendente'" json:"propina_estado"`
	PropinaPagoEm *time.Time `gorm:"column:propina_pago_em" json:"propina_pago_em,omitempty"`

	PropinaCreatedAt time.Time      `gorm:"column:propina_created_at;autoCreateTime" json:"propina_created_at"`
	PropinaUpdatedAt time.Time      `gorm:"column:propina_updated_at;autoUpdateTime" json:"propina_updated_at"`
	PropinaDeletedAt gorm.DeletedAt `gorm:"column:propina_deleted_at;index" json:"propina_deleted_at,omitempty"`
}

func (PropinaModel) TableName() string { return "propinas" }
