// file: internals/features/notificacoes/service/notificacao_dispatcher.go
package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "sgescolar_backend/internals/features/notificacoes/model"
)

/* =====================================================
   Dispatcher de notificações

   Cada tipo tem um handler nomeado; o Dispatch corre na
   MESMA transacção do evento de origem — se a escrita da
   notificação falhar, o evento também reverte.
===================================================== */

const (
	TipoContaLigada      = "conta_ligada"
	TipoEscolaBloqueada  = "escola_bloqueada"
	TipoPropinaEmAtraso  = "propina_em_atraso"
	TipoPapelAtribuido   = "papel_atribuido"
)

// Handler prepara a notificação antes de ser persistida (enriquecer o
// payload, por exemplo). Devolver erro aborta a transacção de origem.
type Handler func(tx *gorm.DB, n *model.NotificacaoModel) error

var handlers = map[string]Handler{
	TipoContaLigada:     nil,
	TipoEscolaBloqueada: nil,
	TipoPropinaEmAtraso: nil,
	TipoPapelAtribuido:  nil,
}

// RegisterHandler substitui/instala o handler de um tipo conhecido.
func RegisterHandler(tipo string, h Handler) error {
	if _, ok := handlers[tipo]; !ok {
		return fmt.Errorf("tipo de notificação desconhecido: %q", tipo)
	}
	handlers[tipo] = h
	return nil
}

// Dispatch cria a notificação dentro de tx. Tipos fora do registo são
// rejeitados.
func Dispatch(tx *gorm.DB, destinatarioID uuid.UUID, tipo string, payload any) error {
	h, ok := handlers[tipo]
	if !ok {
		return fmt.Errorf("tipo de notificação desconhecido: %q", tipo)
	}

	var raw datatypes.JSON
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("payload de notificação não serializável: %w", err)
		}
		raw = datatypes.JSON(b)
	}

	n := model.NotificacaoModel{
		NotificacaoDestinatarioID: destinatarioID,
		NotificacaoTipo:           tipo,
		NotificacaoPayload:        raw,
	}
	if h != nil {
		if err := h(tx, &n); err != nil {
			return err
		}
	}
	return tx.Create(&n).Error
}

// MarkAsRead marca como lida — só o próprio destinatário.
func MarkAsRead(db *gorm.DB, destinatarioID, notificacaoID uuid.UUID) error {
	now := time.Now()
	res := db.Model(&model.NotificacaoModel{}).
		Where("notificacao_id = ? AND notificacao_destinatario_id = ?", notificacaoID, destinatarioID).
		Updates(map[string]any{
			"notificacao_lida":    true,
			"notificacao_lida_em": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
