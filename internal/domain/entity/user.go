package entity

import "time"

// Roles válidos para UserRole.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole indica si r es un rol conocido.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRole asignación de rol; se espera a lo sumo una por usuario.
// La ausencia de asignación significa rol "user", nunca un error.
type UserRole struct {
	UserID string
	Role   string // admin, user
}
