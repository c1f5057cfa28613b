package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Role
	}{
		{name: "user", in: "user", want: RoleUser},
		{name: "admin", in: "admin", want: RoleAdmin},
		{name: "empty cell", in: "", want: RoleUser},
		{name: "unknown value falls back to user", in: "superadmin", want: RoleUser},
		{name: "case sensitive", in: "Admin", want: RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "user", RoleUser.String())
}
