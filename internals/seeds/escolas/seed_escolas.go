package escolas

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	escolaModel "sgescolar_backend/internals/features/escolas/model"
)

type EscolaSeed struct {
	Nome         string   `json:"nome"`
	Codigo       string   `json:"codigo"`
	Email        string   `json:"email"`
	Provincia    string   `json:"provincia"`
	Municipio    string   `json:"municipio"`
	NiveisEnsino []string `json:"niveis_ensino"`
	OwnerEmail   string   `json:"owner_email"`
}

// SeedEscolasFromJSON cria escolas demo. O dono tem de existir já
// (seed de utilizadores corre primeiro).
func SeedEscolasFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 A ler ficheiro de escolas:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("ℹ️ Sem seed de escolas (%v), saltado.", err)
		return
	}

	var inputs []EscolaSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao fazer decode do JSON: %v", err)
	}

	for _, data := range inputs {
		var count int64
		if err := db.Model(&escolaModel.EscolaModel{}).
			Where("escola_codigo = ?", data.Codigo).
			Count(&count).Error; err != nil || count > 0 {
			log.Printf("ℹ️ Escola '%s' já existe, saltada.", data.Codigo)
			continue
		}

		var ownerID struct {
			UtilizadorID string
		}
		if err := db.Raw(
			`SELECT utilizador_id FROM utilizadores WHERE utilizador_email = ?`, data.OwnerEmail,
		).Scan(&ownerID).Error; err != nil || ownerID.UtilizadorID == "" {
			log.Printf("❌ Dono '%s' não encontrado para a escola '%s'.", data.OwnerEmail, data.Codigo)
			continue
		}

		escola := escolaModel.EscolaModel{
			EscolaNome:         data.Nome,
			EscolaCodigo:       data.Codigo,
			EscolaEmail:        data.Email,
			EscolaProvincia:    data.Provincia,
			EscolaMunicipio:    data.Municipio,
			EscolaNiveisEnsino: data.NiveisEnsino,
		}
		if err := escola.EscolaOwnerUserID.UnmarshalText([]byte(ownerID.UtilizadorID)); err != nil {
			log.Printf("❌ utilizador_id inválido para '%s': %v", data.OwnerEmail, err)
			continue
		}

		if err := db.Create(&escola).Error; err != nil {
			log.Printf("❌ Falha ao inserir escola '%s': %v", data.Codigo, err)
			continue
		}
		log.Printf("✅ Escola '%s' inserida.", data.Codigo)
	}
}
