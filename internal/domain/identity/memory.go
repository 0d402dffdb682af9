package identity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used in tests. The mutex plays the role
// of the database's unique index: the first insert for an email wins and
// every later one gets ErrEmailTaken.
type MemoryStore struct {
	mu          sync.Mutex
	employees   map[string]Employee   // keyed by normalized email
	departments map[string]Department // keyed by name
	order       []string              // insertion order of emails
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		employees:   make(map[string]Employee),
		departments: make(map[string]Department),
	}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[normalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &emp, nil
}

func (s *MemoryStore) CreateEmployee(_ context.Context, emp Employee) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp.Email = normalizeEmail(emp.Email)
	if _, exists := s.employees[emp.Email]; exists {
		return nil, ErrEmailTaken
	}
	emp.ID = uuid.NewString()
	if emp.Role == "" {
		emp.Role = RoleEmployee
	}
	if emp.EmployedOn.IsZero() {
		emp.EmployedOn = time.Now()
	}
	s.employees[emp.Email] = emp
	s.order = append(s.order, emp.Email)
	return &emp, nil
}

func (s *MemoryStore) FindDepartmentByName(_ context.Context, name string) (*Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dept, ok := s.departments[name]
	if !ok {
		return nil, ErrDepartmentNotFound
	}
	return &dept, nil
}

func (s *MemoryStore) EnsureDepartment(_ context.Context, name string) (*Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dept, ok := s.departments[name]; ok {
		return &dept, nil
	}
	dept := Department{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	s.departments[name] = dept
	return &dept, nil
}

func (s *MemoryStore) ListEmployees(_ context.Context, page, pageSize int) ([]EmployeeListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	out := make([]EmployeeListing, 0, pageSize)
	if start >= len(s.order) {
		return out, nil
	}
	end := start + pageSize
	if end > len(s.order) {
		end = len(s.order)
	}
	for _, email := range s.order[start:end] {
		emp := s.employees[email]
		deptName := ""
		for _, dept := range s.departments {
			if dept.ID == emp.DepartmentID {
				deptName = dept.Name
				break
			}
		}
		out = append(out, EmployeeListing{
			FirstName:  emp.FirstName,
			LastName:   emp.LastName,
			Email:      emp.Email,
			Photo:      emp.Photo,
			Department: deptName,
		})
	}
	return out, nil
}

func (s *MemoryStore) CountEmployees(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order), nil
}
