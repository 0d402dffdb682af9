package shared

import (
	"net/http/httptest"
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{name: "missing defaults to 1", url: "/employee/AllEmployees", want: 1},
		{name: "explicit page", url: "/employee/AllEmployees?page=3", want: 3},
		{name: "zero falls back", url: "/employee/AllEmployees?page=0", want: 1},
		{name: "negative falls back", url: "/employee/AllEmployees?page=-2", want: 1},
		{name: "garbage falls back", url: "/employee/AllEmployees?page=abc", want: 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.url, nil)
			if got := ParsePage(req); got != tc.want {
				t.Fatalf("expected page %d, got %d", tc.want, got)
			}
		})
	}
}
