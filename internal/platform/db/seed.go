package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"employeerecords/internal/domain/identity"
	"employeerecords/internal/platform/config"
)

type seedEmployee struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

var demoEmployees = []seedEmployee{
	{FirstName: "Segun", LastName: "Adaramaja", Email: "seguna@gmail.com", Phone: "08095784765"},
	{FirstName: "Seun", LastName: "Oyetoyan", Email: "seuno@gmail.com", Phone: "07057893783"},
	{FirstName: "Micheal", LastName: "Nwosu", Email: "miken@gmail.com", Phone: "08036754890"},
}

// Seed makes sure the HR department exists and, when the store is empty,
// loads the demo employees. Safe to run on every start.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	store := identity.NewPostgresStore(pool)

	dept, err := store.EnsureDepartment(ctx, "HR")
	if err != nil {
		return err
	}

	count, err := store.CountEmployees(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := cfg.SeedPassword
	if strings.TrimSpace(password) == "" {
		return nil
	}
	hash, err := identity.HashPassword(password)
	if err != nil {
		return err
	}

	for _, demo := range demoEmployees {
		_, err := store.CreateEmployee(ctx, identity.Employee{
			FirstName:    demo.FirstName,
			LastName:     demo.LastName,
			UserName:     demo.Email,
			Phone:        demo.Phone,
			Photo:        identity.DefaultPhotoURL,
			Role:         identity.RoleEmployee,
			DepartmentID: dept.ID,
			Credentials:  identity.Credentials{Email: demo.Email, PasswordHash: hash},
		})
		if err != nil && !errors.Is(err, identity.ErrEmailTaken) {
			return err
		}
	}
	return nil
}
