// file: internals/features/identidade/role_assignments/dto/role_assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sgescolar_backend/internals/features/identidade/role_assignments/model"
)

/* =========================================================
   REQUEST DTO — upsert de assignment (só superadmin)
========================================================= */

type RoleAssignmentRequest struct {
	RoleAssignmentUserID     uuid.UUID  `json:"role_assignment_user_id" validate:"required"`
	RoleAssignmentRole       string     `json:"role_assignment_role" validate:"required,oneof=superadmin direccao_provincial direccao_municipal admin_escola professor aluno encarregado"`
	RoleAssignmentEscolaID   *uuid.UUID `json:"role_assignment_escola_id"`
	RoleAssignmentDireccaoID *uuid.UUID `json:"role_assignment_direccao_id"`
	RoleAssignmentIsActive   *bool      `json:"role_assignment_is_active"`
}

func (r *RoleAssignmentRequest) ToModel() *model.RoleAssignmentModel {
	active := true
	if r.RoleAssignmentIsActive != nil {
		active = *r.RoleAssignmentIsActive
	}
	return &model.RoleAssignmentModel{
		RoleAssignmentUserID:     r.RoleAssignmentUserID,
		RoleAssignmentRole:       r.RoleAssignmentRole,
		RoleAssignmentEscolaID:   r.RoleAssignmentEscolaID,
		RoleAssignmentDireccaoID: r.RoleAssignmentDireccaoID,
		RoleAssignmentIsActive:   active,
	}
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type RoleAssignmentResponse struct {
	RoleAssignmentID         uuid.UUID  `json:"role_assignment_id"`
	RoleAssignmentUserID     uuid.UUID  `json:"role_assignment_user_id"`
	RoleAssignmentRole       string     `json:"role_assignment_role"`
	RoleAssignmentEscolaID   *uuid.UUID `json:"role_assignment_escola_id,omitempty"`
	RoleAssignmentDireccaoID *uuid.UUID `json:"role_assignment_direccao_id,omitempty"`
	RoleAssignmentIsActive   bool       `json:"role_assignment_is_active"`
	RoleAssignmentCreatedAt  time.Time  `json:"role_assignment_created_at"`
	RoleAssignmentUpdatedAt  time.Time  `json:"role_assignment_updated_at"`
}

func FromModel(m *model.RoleAssignmentModel) RoleAssignmentResponse {
	return RoleAssignmentResponse{
		RoleAssignmentID:         m.RoleAssignmentID,
		RoleAssignmentUserID:     m.RoleAssignmentUserID,
		RoleAssignmentRole:       m.RoleAssignmentRole,
		RoleAssignmentEscolaID:   m.RoleAssignmentEscolaID,
		RoleAssignmentDireccaoID: m.RoleAssignmentDireccaoID,
		RoleAssignmentIsActive:   m.RoleAssignmentIsActive,
		RoleAssignmentCreatedAt:  m.RoleAssignmentCreatedAt,
		RoleAssignmentUpdatedAt:  m.RoleAssignmentUpdatedAt,
	}
}

func FromModels(ms []model.RoleAssignmentModel) []RoleAssignmentResponse {
	out := make([]RoleAssignmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
