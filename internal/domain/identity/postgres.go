package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PostgresStore is the pgx-backed Store. Email uniqueness rides on the
// employees_email_key index, so concurrent registrations for the same email
// are decided by the database and the loser sees ErrEmailTaken.
type PostgresStore struct {
	DB *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, first_name, last_name, user_name, email, phone, password_hash,
           COALESCE(photo, ''), role, department_id, employed_on
    FROM employees
    WHERE email = $1
  `, normalizeEmail(email))

	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.UserName, &emp.Email,
		&emp.Phone, &emp.PasswordHash, &emp.Photo, &emp.Role, &emp.DepartmentID,
		&emp.EmployedOn,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *PostgresStore) CreateEmployee(ctx context.Context, emp Employee) (*Employee, error) {
	emp.Email = normalizeEmail(emp.Email)
	if emp.Role == "" {
		emp.Role = RoleEmployee
	}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (first_name, last_name, user_name, email, phone, password_hash, photo, role, department_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, employed_on
  `, emp.FirstName, emp.LastName, emp.UserName, emp.Email, emp.Phone,
		emp.PasswordHash, emp.Photo, emp.Role, emp.DepartmentID,
	).Scan(&emp.ID, &emp.EmployedOn)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &emp, nil
}

func (s *PostgresStore) FindDepartmentByName(ctx context.Context, name string) (*Department, error) {
	var dept Department
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, created_at FROM departments WHERE name = $1
  `, strings.TrimSpace(name)).Scan(&dept.ID, &dept.Name, &dept.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (s *PostgresStore) EnsureDepartment(ctx context.Context, name string) (*Department, error) {
	dept, err := s.FindDepartmentByName(ctx, name)
	if err == nil {
		return dept, nil
	}
	if !errors.Is(err, ErrDepartmentNotFound) {
		return nil, err
	}

	var created Department
	err = s.DB.QueryRow(ctx, `
    INSERT INTO departments (name) VALUES ($1)
    ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
    RETURNING id, name, created_at
  `, strings.TrimSpace(name)).Scan(&created.ID, &created.Name, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListEmployees returns one page of the listing projection, 1-indexed. Pages
// past the end come back empty, never as an error.
func (s *PostgresStore) ListEmployees(ctx context.Context, page, pageSize int) ([]EmployeeListing, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	rows, err := s.DB.Query(ctx, `
    SELECT e.first_name, e.last_name, e.email, COALESCE(e.photo, ''), d.name
    FROM employees e
    JOIN departments d ON e.department_id = d.id
    ORDER BY e.employed_on, e.id
    LIMIT $1 OFFSET $2
  `, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployeeListing, 0, pageSize)
	for rows.Next() {
		var item EmployeeListing
		if err := rows.Scan(&item.FirstName, &item.LastName, &item.Email, &item.Photo, &item.Department); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CountEmployees(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
