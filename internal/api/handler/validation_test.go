package handler

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPhone(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("vnphone", validPhone))

	tests := []struct {
		in   string
		want bool
	}{
		{"0909111222", true},
		{"0909.111.222", true},
		{"0909 111 222", true},
		{"+84-909-111-222", true},
		{" 0909111222 ", true},
		{"0909", false},
		{"09abc11222", false},
		{"++84909111222", false},
		{"1234567890123456", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := v.Var(tt.in, "vnphone")
			assert.Equal(t, tt.want, err == nil)
		})
	}
}
