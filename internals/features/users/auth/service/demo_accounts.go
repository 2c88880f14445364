package service

import (
	"strings"

	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/constants"
)

// DemoAccount é uma credencial fixa de demonstração, checada ANTES do banco.
// Mantém o comportamento do painel: contas demo funcionam mesmo com o
// provedor de identidade fora do ar.
type DemoAccount struct {
	Name     string
	Email    string
	Password string
	Role     string
}

var demoAccounts = []DemoAccount{
	{Name: "Admin Sargento Silva", Email: "admin@escala.mil", Password: "admin", Role: constants.RoleAdmin},
	{Name: "Cabo João", Email: "joao@escala.mil", Password: "user123", Role: constants.RoleMilitar},
	{Name: "Admin Horus", Email: "admin@horus.com", Password: "123456", Role: constants.RoleAdmin},
}

// MatchDemoAccount compara email (case-insensitive) e senha exata.
// Retorna nil quando não é conta demo.
func MatchDemoAccount(email, password string) *DemoAccount {
	email = strings.ToLower(strings.TrimSpace(email))
	for i := range demoAccounts {
		if strings.ToLower(demoAccounts[i].Email) == email && demoAccounts[i].Password == password {
			return &demoAccounts[i]
		}
	}
	return nil
}
