package service

import (
	"log"

	"gorm.io/gorm"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/system/configurations/model"
)

func strPtr(s string) *string { return &s }

// Parâmetros semeados no primeiro boot. max_consecutive_services é lido
// pelo painel ao montar formulários; nenhum gerador o consome no servidor.
var defaultConfigurations = []m.ConfigurationModel{
	{Key: "max_consecutive_services", Value: "2", Description: strPtr("Máximo de serviços consecutivos por militar")},
	{Key: "timezone", Value: "America/Sao_Paulo", Description: strPtr("Fuso horário de referência das escalas")},
}

// SeedDefaults insere as configurações padrão que ainda não existem.
// Valores já gravados nunca são sobrescritos.
func SeedDefaults(db *gorm.DB) error {
	for _, cfg := range defaultConfigurations {
		var count int64
		if err := db.Model(&m.ConfigurationModel{}).
			Where("key = ?", cfg.Key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := cfg
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		log.Printf("🌱 Configuração padrão semeada: %s=%s", row.Key, row.Value)
	}
	return nil
}
