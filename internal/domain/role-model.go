package domain

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleCompany Role = "COMPANY"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleCompany
}
