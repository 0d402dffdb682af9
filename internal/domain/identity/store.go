package identity

import "context"

// Store persists employee identity records and departments.
//
// CreateEmployee must enforce email uniqueness at the storage layer: an
// application-level existence check followed by an insert is racy, so the
// store's own constraint is the real guarantee and duplicate inserts surface
// as ErrEmailTaken regardless of any pre-check.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	CreateEmployee(ctx context.Context, emp Employee) (*Employee, error)
	FindDepartmentByName(ctx context.Context, name string) (*Department, error)
	EnsureDepartment(ctx context.Context, name string) (*Department, error)
	ListEmployees(ctx context.Context, page, pageSize int) ([]EmployeeListing, error)
	CountEmployees(ctx context.Context) (int, error)
}
