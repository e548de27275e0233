// file: internals/features/academico/alunos/service/aluno_account_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/constants"
	model "sgescolar_backend/internals/features/academico/alunos/model"
	turmaModel "sgescolar_backend/internals/features/academico/turmas/model"
	roleModel "sgescolar_backend/internals/features/identidade/role_assignments/model"
	roleService "sgescolar_backend/internals/features/identidade/role_assignments/service"
	notifService "sgescolar_backend/internals/features/notificacoes/service"
)

/* =====================================================
   Ligação de contas a matrículas

   registerStudentAccount / registerGuardianAccount: os
   conflitos são resultado de negócio (success:false),
   não fault — só erros de infraestrutura sobem como err.
===================================================== */

type ContaResult struct {
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
	AlunoID uuid.UUID `json:"aluno_id,omitempty"`
}

func contaFalha(msg string) ContaResult {
	return ContaResult{Success: false, Error: msg}
}

// escolaDaMatricula resolve o tenant do aluno via a turma.
func escolaDaMatricula(tx *gorm.DB, aluno *model.AlunoModel) (uuid.UUID, error) {
	var turma turmaModel.TurmaModel
	if err := tx.First(&turma, "turma_id = ?", aluno.AlunoTurmaID).Error; err != nil {
		return uuid.Nil, err
	}
	return turma.TurmaEscolaID, nil
}

// RegisterStudentAccount liga a conta do próprio aluno à matrícula e
// atribui o papel "aluno" na mesma transacção.
func RegisterStudentAccount(db *gorm.DB, alunoID, userID uuid.UUID) (ContaResult, error) {
	var result ContaResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var aluno model.AlunoModel
		if err := tx.First(&aluno, "aluno_id = ?", alunoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result = contaFalha("Matrícula não encontrada")
				return nil
			}
			return err
		}

		if aluno.AlunoUserID != nil && *aluno.AlunoUserID != userID {
			result = contaFalha("Esta matrícula já está ligada a outra conta de aluno")
			return nil
		}

		var count int64
		if err := tx.Model(&model.AlunoModel{}).
			Where("aluno_user_id = ? AND aluno_id <> ?", userID, alunoID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			result = contaFalha("Esta conta já está ligada a outra matrícula")
			return nil
		}

		escolaID, err := escolaDaMatricula(tx, &aluno)
		if err != nil {
			return err
		}

		aluno.AlunoUserID = &userID
		if err := tx.Save(&aluno).Error; err != nil {
			return err
		}

		if err := roleService.UpsertAssignment(tx, &roleModel.RoleAssignmentModel{
			RoleAssignmentUserID:   userID,
			RoleAssignmentRole:     constants.RoleAluno,
			RoleAssignmentEscolaID: &escolaID,
			RoleAssignmentIsActive: true,
		}); err != nil {
			return err
		}

		if err := notifService.Dispatch(tx, userID, notifService.TipoContaLigada, map[string]any{
			"aluno_id":   aluno.AlunoID,
			"aluno_nome": aluno.AlunoNome,
			"papel":      constants.RoleAluno,
		}); err != nil {
			return err
		}

		result = ContaResult{Success: true, AlunoID: aluno.AlunoID}
		return nil
	})
	if err != nil {
		return ContaResult{}, err
	}
	return result, nil
}

// RegisterGuardianAccount liga a conta do encarregado de educação.
// Um encarregado pode ter vários educandos, por isso não há verificação
// de conta única — só o slot da matrícula é exclusivo.
func RegisterGuardianAccount(db *gorm.DB, alunoID, userID uuid.UUID) (ContaResult, error) {
	var result ContaResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var aluno model.AlunoModel
		if err := tx.First(&aluno, "aluno_id = ?", alunoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result = contaFalha("Matrícula não encontrada")
				return nil
			}
			return err
		}

		if aluno.AlunoEncarregadoUserID != nil && *aluno.AlunoEncarregadoUserID != userID {
			result = contaFalha("Esta matrícula já tem encarregado de educação associado")
			return nil
		}

		escolaID, err := escolaDaMatricula(tx, &aluno)
		if err != nil {
			return err
		}

		aluno.AlunoEncarregadoUserID = &userID
		if err := tx.Save(&aluno).Error; err != nil {
			return err
		}

		if err := roleService.UpsertAssignment(tx, &roleModel.RoleAssignmentModel{
			RoleAssignmentUserID:   userID,
			RoleAssignmentRole:     constants.RoleEncarregado,
			RoleAssignmentEscolaID: &escolaID,
			RoleAssignmentIsActive: true,
		}); err != nil {
			return err
		}

		if err := notifService.Dispatch(tx, userID, notifService.TipoContaLigada, map[string]any{
			"aluno_id":   aluno.AlunoID,
			"aluno_nome": aluno.AlunoNome,
			"papel":      constants.RoleEncarregado,
		}); err != nil {
			return err
		}

		result = ContaResult{Success: true, AlunoID: aluno.AlunoID}
		return nil
	})
	if err != nil {
		return ContaResult{}, err
	}
	return result, nil
}
