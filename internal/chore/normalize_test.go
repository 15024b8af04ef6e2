package chore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"einkaufen", "Einkaufen"},
		{"Einkaufen", "Einkaufen"},
		{"über uns", "Über uns"},
		{"42 dinge", "42 dinge"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, capitalizeFirst(tt.in))
		})
	}
}

func TestCapitalizeSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single sentence", "milch und brot kaufen", "Milch und brot kaufen"},
		{"two sentences", "erst waschen. dann trocknen", "Erst waschen. Dann trocknen"},
		{"trailing period", "fertig machen. ", "Fertig machen. "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capitalizeSentences(tt.in))
		})
	}
}
