package rule

import (
	"errors"
	"strings"
	"testing"
)

func TestBuiltInType(t *testing.T) {
	tests := []struct {
		name string
		want ValueType
	}{
		{"id", TypeString},
		{"PRIORITY", TypeInt},
		{"Name", TypeString},
		{"author", TypeString},
		{"idea", TypeString},
		{"unstable", TypeBool},
		{"component", TypeString},
		{"app_version", TypeString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuiltInType(tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BuiltInType(%q) = %v, want %v", tt.name, got, tt.want)
			}
			if !IsBuiltIn(tt.name) {
				t.Errorf("IsBuiltIn(%q) = false", tt.name)
			}
		})
	}
}

func TestBuiltInTypeUnknown(t *testing.T) {
	_, err := BuiltInType("owner")
	if !errors.Is(err, ErrInvalidSelectionRule) {
		t.Fatalf("expected ErrInvalidSelectionRule, got %v", err)
	}
	if !strings.Contains(err.Error(), "owner") || !strings.Contains(err.Error(), "APP_VERSION") {
		t.Errorf("error should name the property and the built-ins, got %q", err)
	}
	if IsBuiltIn("owner") {
		t.Error("IsBuiltIn(owner) = true")
	}
}

func TestValidateBuiltInProps(t *testing.T) {
	tests := []struct {
		name    string
		meta    Metadata
		wantErr bool
	}{
		{"valid", Metadata{"id": "t1", "priority": 2, "unstable": false, "app_version": "1.2"}, false},
		{"nil allowed", Metadata{"priority": nil}, false},
		{"user props ignored", Metadata{"owner": 42}, false},
		{"int64 priority", Metadata{"priority": int64(2)}, false},
		{"string priority", Metadata{"priority": "2"}, true},
		{"float version", Metadata{"app_version": 1.2}, true},
		{"string unstable", Metadata{"unstable": "yes"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBuiltInProps(tt.meta)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSelectionRule) {
					t.Fatalf("expected ErrInvalidSelectionRule, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNormalizeContainer(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tag", "tags"},
		{"tags", "tags"},
		{"Bug", "bugs"},
		{"BUGS", "bugs"},
		{" env ", "envs"},
		{"envs", "envs"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeContainer(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NormalizeContainer(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeContainerUnknown(t *testing.T) {
	_, err := NormalizeContainer("bugz")
	if !errors.Is(err, ErrInvalidSelectionRule) {
		t.Fatalf("expected ErrInvalidSelectionRule, got %v", err)
	}
	for _, want := range []string{"bugz", "tag", "bugs", "envs"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should contain %q, got %q", want, err)
		}
	}
}
