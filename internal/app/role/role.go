package role

type Role int

const (
	Employee Role = iota // 0
	Admin                // 1
)

func (r Role) String() string {
	switch r {
	case Admin:
		return "Admin"
	case Employee:
		return "Employee"
	default:
		return "Unknown"
	}
}

// Valid сообщает, известна ли роль системе
func (r Role) Valid() bool {
	return r == Employee || r == Admin
}
