// file: internals/features/auditoria/model/accao_admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tipos de acção — enumeração fechada; acrescentar um tipo é uma
// alteração de esquema, não um valor livre.
const (
	AccaoEscolaBloqueada    = "escola_bloqueada"
	AccaoEscolaDesbloqueada = "escola_desbloqueada"
	AccaoEscolaEliminada    = "escola_eliminada"
	AccaoRoleAtribuido      = "role_atribuido"
	AccaoRoleRevogado       = "role_revogado"
	AccaoDireccaoCriada     = "direccao_criada"
)

var tiposAccao = map[string]struct{}{
	AccaoEscolaBloqueada:    {},
	AccaoEscolaDesbloqueada: {},
	AccaoEscolaEliminada:    {},
	AccaoRoleAtribuido:      {},
	AccaoRoleRevogado:       {},
	AccaoDireccaoCriada:     {},
}

func IsTipoAccaoValido(tipo string) bool {
	_, ok := tiposAccao[tipo]
	return ok
}

// AccaoAdminModel é o registo append-only de acções privilegiadas.
// Nunca é actualizado nem apagado; as referências a actor e escola
// são nulas porque ambos podem ser eliminados depois — o payload
// transporta o nome/código de negócio para o registo continuar legível.
type AccaoAdminModel struct {
	AccaoAdminID uuid.UUID `gorm:"column:accao_admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"accao_admin_id"`

	AccaoAdminActorUserID *uuid.UUID `gorm:"column:accao_admin_actor_user_id;type:uuid" json:"accao_admin_actor_user_id,omitempty"`
	AccaoAdminEscolaID    *uuid.UUID `gorm:"column:accao_admin_escola_id;type:uuid" json:"accao_admin_escola_id,omitempty"`

	AccaoAdminTipo     string         `gorm:"column:accao_admin_tipo;type:varchar(40);not null" json:"accao_admin_tipo"`
	AccaoAdminDetalhes datatypes.JSON `gorm:"column:accao_admin_detalhes;type:jsonb" json:"accao_admin_detalhes,omitempty"`

	AccaoAdminCreatedAt time.Time `gorm:"column:accao_admin_created_at;autoCreateTime" json:"accao_admin_created_at"`
}

func (AccaoAdminModel) TableName() string { return "accoes_admin" }
