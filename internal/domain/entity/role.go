package entity

// Role represents a user role in the system.
// The set of roles is closed; rows are seeded by migration and each portal
// admits exactly one of them.
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin    = 1
	RoleIDDoctor   = 2
	RoleIDStaff    = 3
	RoleIDPharmacy = 4
	RoleIDLab      = 5
	RoleIDPatient  = 6
)

// RoleNames constants
const (
	RoleAdmin    = "admin"
	RoleDoctor   = "doctor"
	RoleStaff    = "staff"
	RolePharmacy = "pharmacy"
	RoleLab      = "lab"
	RolePatient  = "patient"
)

// RoleIDByName maps a role name to its seeded ID. Returns 0 for unknown names.
func RoleIDByName(name string) int {
	switch name {
	case RoleAdmin:
		return RoleIDAdmin
	case RoleDoctor:
		return RoleIDDoctor
	case RoleStaff:
		return RoleIDStaff
	case RolePharmacy:
		return RoleIDPharmacy
	case RoleLab:
		return RoleIDLab
	case RolePatient:
		return RoleIDPatient
	default:
		return 0
	}
}

// RoleNameByID maps a seeded role ID back to its name. Returns "" for unknown IDs.
func RoleNameByID(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDStaff:
		return RoleStaff
	case RoleIDPharmacy:
		return RolePharmacy
	case RoleIDLab:
		return RoleLab
	case RoleIDPatient:
		return RolePatient
	default:
		return ""
	}
}
