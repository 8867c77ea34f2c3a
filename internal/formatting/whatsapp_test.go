package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"formatted", "(11) 99999-8888", "https://wa.me/5511999998888"},
		{"digits only", "11999998888", "https://wa.me/5511999998888"},
		{"with dots and spaces", "11 9.9999-8888", "https://wa.me/5511999998888"},
		{"empty", "", "https://wa.me/55"},
		{"no digits at all", "meu zap", "https://wa.me/55"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WhatsAppLink(tt.phone))
		})
	}
}
