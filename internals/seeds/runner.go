package seeds

import (
	"gorm.io/gorm"

	escolaSeed "sgescolar_backend/internals/seeds/escolas"
	utilizadorSeed "sgescolar_backend/internals/seeds/utilizadores"
)

// RunAllSeeds carrega os dados de arranque (superadmin + escola demo).
// Idempotente: registos já existentes são saltados.
func RunAllSeeds(db *gorm.DB) {
	utilizadorSeed.SeedUtilizadoresFromJSON(db, "internals/seeds/utilizadores/data_utilizadores.json")
	escolaSeed.SeedEscolasFromJSON(db, "internals/seeds/escolas/data_escolas.json")
}
