package utilizadores

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sgescolar_backend/internals/constants"
	authModel "sgescolar_backend/internals/features/identidade/auth/model"
	roleModel "sgescolar_backend/internals/features/identidade/role_assignments/model"
	roleService "sgescolar_backend/internals/features/identidade/role_assignments/service"
)

type UtilizadorSeed struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUtilizadoresFromJSON cria as contas de arranque. Só papéis sem
// escola (superadmin) são atribuídos aqui — os restantes nascem pelos
// fluxos de registo.
func SeedUtilizadoresFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 A ler ficheiro de utilizadores:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o JSON: %v", err)
	}

	var inputs []UtilizadorSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao fazer decode do JSON: %v", err)
	}

	for _, data := range inputs {
		var existing authModel.UtilizadorModel
		if err := db.Where("utilizador_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Utilizador '%s' já existe, saltado.", data.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Falha ao gerar hash para '%s': %v", data.Email, err)
			continue
		}
		hash := string(hashed)

		u := authModel.UtilizadorModel{
			UtilizadorNome:         data.Nome,
			UtilizadorEmail:        data.Email,
			UtilizadorPasswordHash: &hash,
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("❌ Falha ao inserir utilizador '%s': %v", data.Email, err)
			continue
		}

		if data.Role == constants.RoleSuperadmin {
			if err := roleService.UpsertAssignment(db, &roleModel.RoleAssignmentModel{
				RoleAssignmentUserID:   u.UtilizadorID,
				RoleAssignmentRole:     constants.RoleSuperadmin,
				RoleAssignmentIsActive: true,
			}); err != nil {
				log.Printf("❌ Falha ao atribuir papel a '%s': %v", data.Email, err)
				continue
			}
		}
		log.Printf("✅ Utilizador '%s' inserido.", data.Email)
	}
}
