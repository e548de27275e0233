package constants

import "fmt"

// Papéis reconhecidos pelo sistema.
// superadmin é o único papel global (sem escola associada);
// as direcções têm âmbito geográfico, os restantes âmbito de escola.
const (
	RoleSuperadmin         = "superadmin"
	RoleDireccaoProvincial = "direccao_provincial"
	RoleDireccaoMunicipal  = "direccao_municipal"
	RoleAdminEscola        = "admin_escola"
	RoleProfessor          = "professor"
	RoleAluno              = "aluno"
	RoleEncarregado        = "encarregado"
)

// Templates de mensagem de erro de papel
const (
	ErrOnlyProfessoresCanAccess = "❌ Apenas professor ou admin da escola pode aceder à funcionalidade %s."
	ErrOnlyAdminsCanAccess      = "❌ Apenas o admin da escola pode aceder à funcionalidade %s."
	ErrOnlySuperadminCanAccess  = "❌ Apenas o superadmin pode aceder à funcionalidade %s."
	ErrOnlyDireccoesCanAccess   = "❌ Apenas as direcções de educação podem aceder à funcionalidade %s."
)

func RoleErrorProfessor(feature string) string {
	return fmt.Sprintf(ErrOnlyProfessoresCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminCanAccess, feature)
}

func RoleErrorDireccao(feature string) string {
	return fmt.Sprintf(ErrOnlyDireccoesCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperadmin,
		RoleDireccaoProvincial,
		RoleDireccaoMunicipal,
		RoleAdminEscola,
		RoleProfessor,
		RoleAluno,
		RoleEncarregado,
	}

	// papéis com âmbito de escola (escola_id obrigatório)
	EscolaScopedRoles = []string{
		RoleAdminEscola,
		RoleProfessor,
		RoleAluno,
		RoleEncarregado,
	}

	DireccaoRoles = []string{
		RoleDireccaoProvincial,
		RoleDireccaoMunicipal,
	}

	StaffEscola = []string{
		RoleAdminEscola,
		RoleProfessor,
	}

	AdminEscolaOnly = []string{
		RoleAdminEscola,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}
)

// IsValidRole verifica se o papel pertence à enumeração fechada.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsEscolaScopedRole indica se o papel exige escola_id não nulo.
func IsEscolaScopedRole(role string) bool {
	for _, r := range EscolaScopedRoles {
		if r == role {
			return true
		}
	}
	return false
}
