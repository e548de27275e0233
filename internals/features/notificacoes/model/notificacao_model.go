// file: internals/features/notificacoes/model/notificacao_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificacaoModel — caixa de entrada por utilizador. A visibilidade é
// só do destinatário; a escrita acontece na transacção do evento que a
// originou.
type NotificacaoModel struct {
	NotificacaoID             uuid.UUID `gorm:"column:notificacao_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notificacao_id"`
	NotificacaoDestinatarioID uuid.UUID `gorm:"column:notificacao_destinatario_id;type:uuid;not null;index" json:"notificacao_destinatario_id"`

	NotificacaoTipo    string         `gorm:"column:notificacao_tipo;type:varchar(50);not null" json:"notificacao_tipo"`
	NotificacaoPayload datatypes.JSON `gorm:"column:notificacao_payload;type:jsonb" json:"notificacao_payload,omitempty"`

	NotificacaoLida   bool       `gorm:"column:notificacao_lida;not null;default:false" json:"notificacao_lida"`
	NotificacaoLidaEm *time.Time `gorm:"column:notificacao_lida_em" json:"notificacao_lida_em,omitempty"`

	NotificacaoCreatedAt time.Time `gorm:"column:notificacao_created_at;autoCreateTime" json:"notificacao_created_at"`
}

func (NotificacaoModel) TableName() string { return "notificacoes" }
