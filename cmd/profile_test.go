package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateServerURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"http://localhost:8000", false},
		{"https://pets.example.com", false},
		{"localhost:8000", true},
		{"ftp://files.example.com", true},
		{"http://", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateServerURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTimeout(t *testing.T) {
	assert.NoError(t, validateTimeout("0"))
	assert.NoError(t, validateTimeout("30"))
	assert.Error(t, validateTimeout("-1"))
	assert.Error(t, validateTimeout("soon"))
}
