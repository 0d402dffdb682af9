package shared

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
)

// Validator accumulates field-level issues so a request can be rejected with
// the full itemized list instead of failing on the first problem.
type Validator struct {
	issues []string
}

func NewValidator() *Validator {
	return &Validator{issues: make([]string, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, field+": "+reason)
}

func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func (v *Validator) MaxLen(field, value string, max int) {
	if len(value) > max {
		v.Add(field, fmt.Sprintf("is longer than %d characters", max))
	}
}

func (v *Validator) LengthBetween(field, value string, min, max int) {
	if value == "" {
		return
	}
	if len(value) < min || len(value) > max {
		v.Add(field, fmt.Sprintf("must be between %d and %d characters", min, max))
	}
}

func (v *Validator) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "must be a valid email address")
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []string {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]string, len(v.issues))
	copy(out, v.issues)
	sort.Strings(out)
	return out
}
