package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sgescolar_backend/internals/constants"
)

func TestValidate_SuperadminSemTenant(t *testing.T) {
	m := RoleAssignmentModel{
		RoleAssignmentUserID: uuid.New(),
		RoleAssignmentRole:   constants.RoleSuperadmin,
	}
	assert.NoError(t, m.Validate())
}

func TestValidate_SuperadminComEscolaRejeitado(t *testing.T) {
	escolaID := uuid.New()
	m := RoleAssignmentModel{
		RoleAssignmentUserID:   uuid.New(),
		RoleAssignmentRole:     constants.RoleSuperadmin,
		RoleAssignmentEscolaID: &escolaID,
	}
	err := m.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "superadmin")
}

func TestValidate_PapelDeEscolaExigeEscola(t *testing.T) {
	for _, role := range []string{
		constants.RoleAdminEscola,
		constants.RoleProfessor,
		constants.RoleAluno,
		constants.RoleEncarregado,
	} {
		m := RoleAssignmentModel{
			RoleAssignmentUserID: uuid.New(),
			RoleAssignmentRole:   role,
		}
		assert.Error(t, m.Validate(), role)

		escolaID := uuid.New()
		m.RoleAssignmentEscolaID = &escolaID
		assert.NoError(t, m.Validate(), role)
	}
}

func TestValidate_PapelDeDireccaoExigeDireccao(t *testing.T) {
	m := RoleAssignmentModel{
		RoleAssignmentUserID: uuid.New(),
		RoleAssignmentRole:   constants.RoleDireccaoMunicipal,
	}
	assert.Error(t, m.Validate())

	direccaoID := uuid.New()
	m.RoleAssignmentDireccaoID = &direccaoID
	assert.NoError(t, m.Validate())
}

func TestValidate_PapelDesconhecido(t *testing.T) {
	m := RoleAssignmentModel{
		RoleAssignmentUserID: uuid.New(),
		RoleAssignmentRole:   "director_geral",
	}
	err := m.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "papel desconhecido")
}
