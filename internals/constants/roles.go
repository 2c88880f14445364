package constants

// Papéis de acesso do sistema. "Admin" gerencia tudo;
// "Militar" só enxerga escalas e o próprio perfil.
const (
	RoleAdmin   = "Admin"
	RoleMilitar = "Militar"
)

var ValidRoles = []string{RoleAdmin, RoleMilitar}

func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
