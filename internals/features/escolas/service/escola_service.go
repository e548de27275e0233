// file: internals/features/escolas/service/escola_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"sgescolar_backend/internals/constants"
	auditModel "sgescolar_backend/internals/features/auditoria/model"
	auditService "sgescolar_backend/internals/features/auditoria/service"
	"sgescolar_backend/internals/features/escolas/dto"
	model "sgescolar_backend/internals/features/escolas/model"
	roleModel "sgescolar_backend/internals/features/identidade/role_assignments/model"
	roleService "sgescolar_backend/internals/features/identidade/role_assignments/service"
	notifService "sgescolar_backend/internals/features/notificacoes/service"
)

/* =====================================================
   Registo e ciclo de vida do tenant (escola)
===================================================== */

// RegistoResult é o resultado estruturado das funções de registo:
// conflitos de unicidade voltam como {success:false, error} em vez de
// fault — a camada que chama consegue mostrar a mensagem sem crash.
type RegistoResult struct {
	Success bool               `json:"success"`
	Error   string             `json:"error,omitempty"`
	Escola  *dto.EscolaResponse `json:"escola,omitempty"`
}

func falha(msg string) RegistoResult {
	return RegistoResult{Success: false, Error: msg}
}

// duas escritas concorrentes com o mesmo código/email passam ambas os
// counts; o perdedor cai no índice único do INSERT e tem de voltar
// como resultado estruturado, não como fault
func falhaDeUnicidade(err error) (RegistoResult, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return RegistoResult{}, false
	}
	switch {
	case strings.Contains(pqErr.Constraint, "codigo"):
		return falha("O código já está em uso por outra escola"), true
	case strings.Contains(pqErr.Constraint, "email"):
		return falha("O email já está em uso por outra escola"), true
	default:
		return falha("A escola já existe"), true
	}
}

// RegisterSchoolTenant cria a escola E o role assignment do dono numa
// única transacção (equivalente RPC: registerSchoolTenant). Falha de
// forma estruturada se o principal já tiver escola, ou se código/email
// já estiverem ocupados.
func RegisterSchoolTenant(db *gorm.DB, ownerUserID uuid.UUID, req *dto.EscolaRegisterRequest) (RegistoResult, error) {
	var result RegistoResult

	err := db.Transaction(func(tx *gorm.DB) error {
		codigo := strings.ToUpper(strings.TrimSpace(req.EscolaCodigo))
		email := strings.ToLower(strings.TrimSpace(req.EscolaEmail))

		var count int64
		if err := tx.Model(&model.EscolaModel{}).
			Where("escola_owner_user_id = ?", ownerUserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			result = falha("Este utilizador já possui uma escola registada")
			return nil
		}

		if err := tx.Model(&model.EscolaModel{}).
			Where("LOWER(escola_codigo) = LOWER(?)", codigo).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			result = falha(fmt.Sprintf("O código %q já está em uso por outra escola", codigo))
			return nil
		}

		if err := tx.Model(&model.EscolaModel{}).
			Where("LOWER(escola_email) = LOWER(?)", email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			result = falha(fmt.Sprintf("O email %q já está em uso por outra escola", email))
			return nil
		}

		escola := model.EscolaModel{
			EscolaNome:         strings.TrimSpace(req.EscolaNome),
			EscolaCodigo:       codigo,
			EscolaEmail:        email,
			EscolaProvincia:    strings.TrimSpace(req.EscolaProvincia),
			EscolaMunicipio:    strings.TrimSpace(req.EscolaMunicipio),
			EscolaNiveisEnsino: req.EscolaNiveisEnsino,
			EscolaOwnerUserID:  ownerUserID,
		}
		if err := tx.Create(&escola).Error; err != nil {
			return err
		}

		// assignment do dono na MESMA transacção — a role_cache fica
		// consistente antes do commit (hooks do model)
		assignment := &roleModel.RoleAssignmentModel{
			RoleAssignmentUserID:   ownerUserID,
			RoleAssignmentRole:     constants.RoleAdminEscola,
			RoleAssignmentEscolaID: &escola.EscolaID,
			RoleAssignmentIsActive: true,
		}
		if err := roleService.UpsertAssignment(tx, assignment); err != nil {
			return err
		}

		resp := dto.FromModel(&escola)
		result = RegistoResult{Success: true, Escola: &resp}
		return nil
	})
	if err != nil {
		if res, ok := falhaDeUnicidade(err); ok {
			return res, nil
		}
		return RegistoResult{}, err
	}
	return result, nil
}

/* =====================================================
   Bloqueio / desbloqueio / eliminação (superadmin)
===================================================== */

func BloquearEscola(db *gorm.DB, actor uuid.UUID, escolaID uuid.UUID, motivo string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var escola model.EscolaModel
		if err := tx.First(&escola, "escola_id = ?", escolaID).Error; err != nil {
			return err
		}

		now := time.Now()
		escola.EscolaIsBloqueada = true
		escola.EscolaIsActive = false
		escola.EscolaBloqueadaMotivo = &motivo
		escola.EscolaBloqueadaEm = &now
		escola.EscolaBloqueadaPor = &actor
		if err := tx.Save(&escola).Error; err != nil {
			return err
		}

		if err := auditService.RecordAction(tx, &actor, auditModel.AccaoEscolaBloqueada, &escola.EscolaID, map[string]any{
			"escola_nome":   escola.EscolaNome,
			"escola_codigo": escola.EscolaCodigo,
			"motivo":        motivo,
		}); err != nil {
			return err
		}

		return notifService.Dispatch(tx, escola.EscolaOwnerUserID, notifService.TipoEscolaBloqueada, map[string]any{
			"escola_id":   escola.EscolaID,
			"escola_nome": escola.EscolaNome,
			"motivo":      motivo,
		})
	})
}

func DesbloquearEscola(db *gorm.DB, actor uuid.UUID, escolaID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var escola model.EscolaModel
		if err := tx.First(&escola, "escola_id = ?", escolaID).Error; err != nil {
			return err
		}

		escola.EscolaIsBloqueada = false
		escola.EscolaIsActive = true
		escola.EscolaBloqueadaMotivo = nil
		escola.EscolaBloqueadaEm = nil
		escola.EscolaBloqueadaPor = nil
		if err := tx.Save(&escola).Error; err != nil {
			return err
		}

		return auditService.RecordAction(tx, &actor, auditModel.AccaoEscolaDesbloqueada, &escola.EscolaID, map[string]any{
			"escola_nome":   escola.EscolaNome,
			"escola_codigo": escola.EscolaCodigo,
		})
	})
}

var ErrEscolaNaoEncontrada = errors.New("escola não encontrada")

// EliminarEscolaComAuditoria apaga a escola (cascata sobre a
// hierarquia) com o registo de auditoria escrito ANTES do delete —
// a FK do log é nullable e o payload leva nome/código para o registo
// sobreviver à escola.
func EliminarEscolaComAuditoria(db *gorm.DB, actor uuid.UUID, escolaID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var escola model.EscolaModel
		if err := tx.First(&escola, "escola_id = ?", escolaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEscolaNaoEncontrada
			}
			return err
		}

		// 1) log primeiro (ordem obrigatória)
		if err := auditService.RecordAction(tx, &actor, auditModel.AccaoEscolaEliminada, &escola.EscolaID, map[string]any{
			"escola_nome":   escola.EscolaNome,
			"escola_codigo": escola.EscolaCodigo,
			"provincia":     escola.EscolaProvincia,
			"municipio":     escola.EscolaMunicipio,
		}); err != nil {
			return err
		}

		// 2) limpar papéis e projecções do tenant (o delete em cascata
		// do DB não passa pelos hooks do GORM)
		if err := tx.Exec(`DELETE FROM role_cache WHERE role_cache_escola_id = ?`, escolaID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM role_assignments WHERE role_assignment_escola_id = ?`, escolaID).Error; err != nil {
			return err
		}

		// 3) hard delete; a FK do log passa a NULL (ON DELETE SET NULL)
		// e os filhos caem em cascata
		return tx.Unscoped().Delete(&escola).Error
	})
}
