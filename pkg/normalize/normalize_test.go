package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nublack/nublack-api/pkg/normalize"
)

func TestFold_QuitaTildesYBajaMayusculas(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Camiseta Básica", "camiseta basica"},
		{"María José", "maria jose"},
		{"PEÑA", "pena"},
		{"Gutiérrez", "gutierrez"},
		{"sin cambios 123", "sin cambios 123"},
		{"", ""},
		{"ÁÉÍÓÚ äëïöü Ññ", "aeiou aeiou nn"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, normalize.Fold(c.entrada), "entrada: %q", c.entrada)
	}
}
