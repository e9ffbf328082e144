package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToProcessorLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"de_DE", "de-DE"},
		{"fr_FR", "fr-FR"},
		{"fr_CA", "fr-CA"},
		{"en_US", "en-US"},
		{"en_AU", "en"}, // unknown region falls back to language
		{"pt_BR", "pt"},
		{"de", "de"},
		{"", "auto"},
		{"  ", "auto"},
		{"_DE", "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToProcessorLocale(tt.in))
		})
	}
}
