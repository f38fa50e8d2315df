package repository

// UserRoleRepository define el puerto de persistencia para asignaciones de rol.
type UserRoleRepository interface {
	// GetRoleByUser devuelve el rol asignado al usuario. Si no hay asignación
	// devuelve entity.RoleUser; la ausencia no es un error.
	GetRoleByUser(userID string) (string, error)
	// Upsert crea o reemplaza la asignación de rol del usuario.
	Upsert(userID, role string) error
}
