package entity

// Roles reconocidos para User. El conjunto es fijo en tiempo de compilación;
// el registro rechaza cualquier otro valor.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
	RoleAngel      = "angel"
)

// ValidRole indica si role_name pertenece al conjunto reconocido.
// Comparación exacta, sensible a mayúsculas.
func ValidRole(roleName string) bool {
	switch roleName {
	case RoleAdmin, RoleInstructor, RoleStudent, RoleAngel:
		return true
	}
	return false
}

// User representa un usuario persistido del sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // hash bcrypt, nunca el password plano después de registrar
	RoleName     string // uno de los roles reconocidos, validado al crear
}
