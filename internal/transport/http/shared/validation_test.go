package shared

import (
	"strings"
	"testing"
)

func TestValidatorRequired(t *testing.T) {
	v := NewValidator()
	v.Required("firstName", "")
	v.Required("lastName", "  ")
	v.Required("userName", "ada")

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(issues), issues)
	}
}

func TestValidatorMaxLen(t *testing.T) {
	v := NewValidator()
	v.MaxLen("firstName", strings.Repeat("a", 31), 30)
	v.MaxLen("lastName", strings.Repeat("a", 30), 30)

	issues := v.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if !strings.Contains(issues[0], "firstName") {
		t.Fatalf("expected firstName issue, got %q", issues[0])
	}
}

func TestValidatorEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "a@x.com"},
		{name: "missing", email: "", wantErr: true},
		{name: "no at sign", email: "ax.com", wantErr: true},
		{name: "spaces", email: "a b@x.com", wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v := NewValidator()
			v.Email("email", tc.email)
			if tc.wantErr && !v.HasIssues() {
				t.Fatal("expected validation issue")
			}
			if !tc.wantErr && v.HasIssues() {
				t.Fatalf("unexpected issues: %v", v.Issues())
			}
		})
	}
}

func TestValidatorLengthBetween(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "at min", value: "12345678"},
		{name: "at max", value: "123456789012345"},
		{name: "too short", value: "1234567", wantErr: true},
		{name: "too long", value: "1234567890123456", wantErr: true},
		{name: "empty skipped", value: ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v := NewValidator()
			v.LengthBetween("password", tc.value, 8, 15)
			if tc.wantErr && !v.HasIssues() {
				t.Fatal("expected validation issue")
			}
			if !tc.wantErr && v.HasIssues() {
				t.Fatalf("unexpected issues: %v", v.Issues())
			}
		})
	}
}

func TestValidatorIssuesSorted(t *testing.T) {
	v := NewValidator()
	v.Add("zeta", "is required")
	v.Add("alpha", "is required")

	issues := v.Issues()
	if len(issues) != 2 || !strings.HasPrefix(issues[0], "alpha") {
		t.Fatalf("expected sorted issues, got %v", issues)
	}
}
