package models

// Constantes pour les rôles disponibles
const (
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// GetDefaultRoles retourne les rôles par défaut pour un nouvel organisateur
func GetDefaultRoles() Roles {
	return Roles{RoleOrganizer}
}

// GetAllRoles retourne tous les rôles disponibles
func GetAllRoles() []string {
	return []string{
		RoleOrganizer,
		RoleAdmin,
	}
}
