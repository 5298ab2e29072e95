package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "collection", path: "/api/v1/simulations", want: "/api/v1/simulations"},
		{name: "compare", path: "/api/v1/simulations/compare", want: "/api/v1/simulations/compare"},
		{name: "by id", path: "/api/v1/simulations/01JABCDEF", want: "/api/v1/simulations/:id"},
		{name: "ledger", path: "/api/v1/simulations/01JABCDEF/ledger", want: "/api/v1/simulations/:id/ledger"},
		{name: "health untouched", path: "/health", want: "/health"},
		{name: "metrics untouched", path: "/metrics", want: "/metrics"},
		{name: "trailing slash", path: "/api/v1/simulations/", want: "/api/v1/simulations/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePath(tt.path); got != tt.want {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
