package domain

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

type AccountStatus int8

const (
	AccountStatusActive   AccountStatus = 1
	AccountStatusInactive AccountStatus = 2
	AccountStatusBanned   AccountStatus = 3
)

func (s AccountStatus) Valid() bool {
	return s >= AccountStatusActive && s <= AccountStatusBanned
}

// Account is an admin or superadmin able to sign in to the dashboard.
type Account struct {
	BaseEntity `bson:",inline"`
	Email      string            `bson:"email,omitempty"`
	FullName   string            `bson:"fullName,omitempty"`
	Password   EncryptedPassword `bson:"password,omitempty"`
	Role       Role              `bson:"role,omitempty"`
	Status     AccountStatus     `bson:"status,omitempty"`
}

func (a *Account) Actor() *Actor {
	return &Actor{
		ID:       a.ID,
		FullName: a.FullName,
		Role:     a.Role,
	}
}

type UpdateAccountOptions struct {
	FullName *string
	Status   *AccountStatus
}
