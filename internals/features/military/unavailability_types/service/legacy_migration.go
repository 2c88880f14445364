package service

import (
	"log"
	"strings"

	"gorm.io/gorm"

	unavailabilityModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/model"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailability_types/model"
)

// Tipos semeados na primeira subida, para instalações vazias.
var defaultTypeNames = []string{"Férias", "Dispensa Médica", "Missão", "Curso", "Licença"}

// MigrateLegacyTypes converte indisponibilidades antigas, que guardavam o
// tipo como texto livre, para o vínculo por id. Cria o tipo quando o nome
// ainda não existe e mantém o texto legado apenas nos registros cujo nome
// não pôde ser resolvido.
func MigrateLegacyTypes(db *gorm.DB) error {
	if err := seedDefaultTypes(db); err != nil {
		return err
	}

	var pending []unavailabilityModel.UnavailabilityModel
	if err := db.
		Where("unavailability_type_id IS NULL AND legacy_type IS NOT NULL AND legacy_type <> ''").
		Find(&pending).Error; err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	log.Printf("🔁 Migrando %d indisponibilidade(s) com tipo legado...", len(pending))

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range pending {
			row := &pending[i]
			name := strings.TrimSpace(*row.LegacyType)
			if name == "" {
				continue
			}

			var typ m.UnavailabilityTypeModel
			err := tx.Where("lower(name) = lower(?)", name).First(&typ).Error
			if err == gorm.ErrRecordNotFound {
				typ = m.UnavailabilityTypeModel{Name: name}
				err = tx.Create(&typ).Error
			}
			if err != nil {
				return err
			}

			if err := tx.Model(row).Updates(map[string]interface{}{
				"unavailability_type_id": typ.ID,
				"legacy_type":            nil,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func seedDefaultTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&m.UnavailabilityTypeModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range defaultTypeNames {
		if err := db.Create(&m.UnavailabilityTypeModel{Name: name}).Error; err != nil {
			return err
		}
	}
	log.Printf("🌱 Tipos de indisponibilidade padrão semeados (%d)", len(defaultTypeNames))
	return nil
}
