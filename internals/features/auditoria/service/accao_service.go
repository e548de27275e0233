// file: internals/features/auditoria/service/accao_service.go
package service

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "sgescolar_backend/internals/features/auditoria/model"
)

/* =====================================================
   Registo de acções privilegiadas

   Regras:
   - append-only (sem update/delete em accoes_admin);
   - o tipo pertence à enumeração fechada;
   - quando a acção também elimina a escola alvo, o registo
     tem de ser escrito ANTES do delete, na mesma transacção,
     com o nome/código de negócio dentro do payload.
===================================================== */

// RecordAction cria uma linha imutável do log. `detalhes` é
// serializado e guardado tal-e-qual — a validação semântica do
// payload pertence à camada aplicacional.
func RecordAction(tx *gorm.DB, actor *uuid.UUID, tipo string, escolaID *uuid.UUID, detalhes any) error {
	if !model.IsTipoAccaoValido(tipo) {
		return fmt.Errorf("tipo de acção desconhecido: %q", tipo)
	}

	var payload datatypes.JSON
	if detalhes != nil {
		raw, err := json.Marshal(detalhes)
		if err != nil {
			return fmt.Errorf("payload de detalhes não serializável: %w", err)
		}
		payload = datatypes.JSON(raw)
	}

	entry := model.AccaoAdminModel{
		AccaoAdminActorUserID: actor,
		AccaoAdminEscolaID:    escolaID,
		AccaoAdminTipo:        tipo,
		AccaoAdminDetalhes:    payload,
	}
	return tx.Create(&entry).Error
}
