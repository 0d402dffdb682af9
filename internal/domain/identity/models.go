package identity

import "time"

// RoleEmployee is the only role the service knows about. It is attached to
// every record at creation and carried for future authorization checks; no
// endpoint currently branches on it.
const RoleEmployee = "Employee"

// DefaultPhotoURL is substituted when a registration omits the photo field.
const DefaultPhotoURL = "https://ibb.co/sJTGnYs"

// Credentials is the login material for an employee. The password hash is
// opaque to callers and never serialized.
type Credentials struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type Employee struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	UserName     string    `json:"userName"`
	Phone        string    `json:"phoneNumber"`
	Photo        string    `json:"photo"`
	Role         string    `json:"role"`
	DepartmentID string    `json:"departmentId"`
	EmployedOn   time.Time `json:"employedOn"`
	Credentials
}

type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// EmployeeListing is the projection returned by the paginated listing: the
// public fields plus the resolved department name.
type EmployeeListing struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Photo      string `json:"photo"`
	Department string `json:"department"`
}
