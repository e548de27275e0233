// file: internals/features/academico/professor_turma_disciplina/model/ptd_model.go
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	disciplinaModel "sgescolar_backend/internals/features/academico/disciplinas/model"
	professorModel "sgescolar_backend/internals/features/academico/professores/model"
	turmaModel "sgescolar_backend/internals/features/academico/turmas/model"
)

// PTDModel — atribuição professor × turma × disciplina. A coerência
// trilateral é verificada no BeforeSave: o professor e a turma têm de
// pertencer à mesma escola, e a disciplina tem de pertencer à turma.
type PTDModel struct {
	PTDID           uuid.UUID `gorm:"column:ptd_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ptd_id"`
	PTDProfessorID  uuid.UUID `gorm:"column:ptd_professor_id;type:uuid;not null;index" json:"ptd_professor_id"`
	PTDTurmaID      uuid.UUID `gorm:"column:ptd_turma_id;type:uuid;not null;index" json:"ptd_turma_id"`
	PTDDisciplinaID uuid.UUID `gorm:"column:ptd_disciplina_id;type:uuid;not null;uniqueIndex:uq_ptd_disciplina" json:"ptd_disciplina_id"`

	PTDCreatedAt time.Time      `gorm:"column:ptd_created_at;autoCreateTime" json:"ptd_created_at"`
	PTDUpdatedAt time.Time      `gorm:"column:ptd_updated_at;autoUpdateTime" json:"ptd_updated_at"`
	PTDDeletedAt gorm.DeletedAt `gorm:"column:ptd_deleted_at;index" json:"ptd_deleted_at,omitempty"`
}

func (PTDModel) TableName() string { return "professor_turma_disciplina" }

// BeforeSave valida a coerência trilateral dentro da transacção da
// escrita — uma atribuição que cruze escolas ou turmas nunca chega a
// ser persistida.
func (m *PTDModel) BeforeSave(tx *gorm.DB) error {
	var professor professorModel.ProfessorModel
	if err := tx.First(&professor, "professor_id = ?", m.PTDProfessorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("professor %s não encontrado", m.PTDProfessorID)
		}
		return fmt.Errorf("consulta do professor %s: %w", m.PTDProfessorID, err)
	}

	var turma turmaModel.TurmaModel
	if err := tx.First(&turma, "turma_id = ?", m.PTDTurmaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("turma %s não encontrada", m.PTDTurmaID)
		}
		return fmt.Errorf("consulta da turma %s: %w", m.PTDTurmaID, err)
	}

	var disciplina disciplinaModel.DisciplinaModel
	if err := tx.First(&disciplina, "disciplina_id = ?", m.PTDDisciplinaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("disciplina %s não encontrada", m.PTDDisciplinaID)
		}
		return fmt.Errorf("consulta da disciplina %s: %w", m.PTDDisciplinaID, err)
	}

	if professor.ProfessorEscolaID != turma.TurmaEscolaID {
		return fmt.Errorf(
			"o professor %s pertence à escola %s mas a turma %s pertence à escola %s",
			professor.ProfessorID, professor.ProfessorEscolaID,
			turma.TurmaID, turma.TurmaEscolaID,
		)
	}

	if disciplina.DisciplinaTurmaID != turma.TurmaID {
		return fmt.Errorf(
			"a disciplina %s pertence à turma %s, não à turma %s da atribuição",
			disciplina.DisciplinaID, disciplina.DisciplinaTurmaID, turma.TurmaID,
		)
	}
	return nil
}
