package employeehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"employeerecords/internal/domain/identity"
	"employeerecords/internal/transport/http/api"
	"employeerecords/internal/transport/http/middleware"
	"employeerecords/internal/transport/http/shared"
)

// ListPageSize is the fixed page size of the employee listing.
const ListPageSize = 5

const (
	maxNameLen  = 30
	maxPhoneLen = 17
)

type Handler struct {
	Store          identity.Store
	Issuer         *identity.Issuer
	PasswordMinLen int
	PasswordMaxLen int
}

func NewHandler(store identity.Store, issuer *identity.Issuer, passwordMinLen, passwordMaxLen int) *Handler {
	return &Handler{
		Store:          store,
		Issuer:         issuer,
		PasswordMinLen: passwordMinLen,
		PasswordMaxLen: passwordMaxLen,
	}
}

// RegisterRoutes wires the open endpoints. AllEmployees is deliberately in
// this group: the published contract exposes the listing without a token.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/employee/Register", h.HandleRegister)
	r.Post("/employee/Login", h.HandleLogin)
	r.Get("/employee/AllEmployees", h.HandleAllEmployees)
}

// RegisterProtectedRoutes wires endpoints that sit behind the token gate.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/employee/Me", h.HandleMe)
}

type registerRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	UserName        string `json:"userName"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	DepartmentName  string `json:"departmentName"`
	Photo           string `json:"photo"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type paginatedEmployees struct {
	CurrentPage   string                     `json:"currentPage"`
	ReturnedUsers []identity.EmployeeListing `json:"returnedUsers"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName)
	v.MaxLen("firstName", payload.FirstName, maxNameLen)
	v.Required("lastName", payload.LastName)
	v.MaxLen("lastName", payload.LastName, maxNameLen)
	v.Required("userName", payload.UserName)
	v.MaxLen("userName", payload.UserName, maxNameLen)
	v.Email("email", payload.Email)
	v.Required("phoneNumber", payload.PhoneNumber)
	v.MaxLen("phoneNumber", payload.PhoneNumber, maxPhoneLen)
	v.Required("departmentName", payload.DepartmentName)
	v.MaxLen("departmentName", payload.DepartmentName, maxNameLen)
	v.Required("password", payload.Password)
	v.LengthBetween("password", payload.Password, h.PasswordMinLen, h.PasswordMaxLen)
	if v.HasIssues() {
		api.FailWithErrors(w, http.StatusBadRequest, "Some properties are not valid", v.Issues())
		return
	}

	if payload.Password != payload.ConfirmPassword {
		api.Fail(w, http.StatusBadRequest, "Password does not match")
		return
	}

	// Pre-check for a friendlier error; the unique constraint in the store is
	// what actually decides concurrent registrations.
	if _, err := h.Store.FindByEmail(r.Context(), payload.Email); err == nil {
		api.Fail(w, http.StatusBadRequest, "Email already taken")
		return
	} else if !errors.Is(err, identity.ErrNotFound) {
		api.Fail(w, http.StatusInternalServerError, "User was not created")
		return
	}

	dept, err := h.Store.FindDepartmentByName(r.Context(), payload.DepartmentName)
	if err != nil {
		if errors.Is(err, identity.ErrDepartmentNotFound) {
			api.Fail(w, http.StatusBadRequest, "Department does not exist")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "User was not created")
		return
	}

	photo := payload.Photo
	if photo == "" {
		photo = identity.DefaultPhotoURL
	}

	hash, err := identity.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "User was not created")
		return
	}

	_, err = h.Store.CreateEmployee(r.Context(), identity.Employee{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		UserName:     payload.UserName,
		Phone:        payload.PhoneNumber,
		Photo:        photo,
		Role:         identity.RoleEmployee,
		DepartmentID: dept.ID,
		Credentials:  identity.Credentials{Email: payload.Email, PasswordHash: hash},
	})
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			api.Fail(w, http.StatusBadRequest, "Email already taken")
			return
		}
		slog.Error("create employee failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "User was not created")
		return
	}

	api.Success(w, "User created")
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Unknown email and wrong password produce the same response so the
	// endpoint does not leak which accounts exist.
	emp, err := h.Store.FindByEmail(r.Context(), payload.Email)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid credentials!")
		return
	}
	if err := identity.CheckPassword(emp.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid credentials!")
		return
	}

	token, expiry, err := h.Issuer.Issue(emp)
	if err != nil {
		slog.Error("token issue failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	api.SuccessToken(w, token, expiry)
}

// HandleMe returns the caller's own record, resolved from the token claims
// the gate attached to the context.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetIdentity(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	emp, err := h.Store.FindByEmail(r.Context(), id.Email)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Employee not found")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "Failed to load employee")
		return
	}
	api.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) HandleAllEmployees(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePage(r)

	listings, err := h.Store.ListEmployees(r.Context(), page, ListPageSize)
	if err != nil {
		slog.Error("list employees failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Failed to list employees")
		return
	}

	api.WriteJSON(w, http.StatusOK, paginatedEmployees{
		CurrentPage:   fmt.Sprintf("Page %d", page),
		ReturnedUsers: listings,
	})
}
