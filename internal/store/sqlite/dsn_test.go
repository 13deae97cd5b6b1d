package sqlite

import "testing"

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "memory",
			input:    "sqlite://:memory:",
			expected: ":memory:",
		},
		{
			name:     "relative path",
			input:    "sqlite://timeloom.db",
			expected: "./timeloom.db",
		},
		{
			name:     "explicit relative path",
			input:    "sqlite://./data/timeloom.db",
			expected: "./data/timeloom.db",
		},
		{
			name:     "absolute path",
			input:    "sqlite:///var/lib/timeloom.db",
			expected: "/var/lib/timeloom.db",
		},
		{
			name:     "path with query",
			input:    "sqlite://timeloom.db?mode=ro",
			expected: "./timeloom.db?mode=ro",
		},
		{
			name:    "wrong scheme",
			input:   "postgres://localhost/timeloom",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseDSN(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDSN(%q): %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("parseDSN(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
