package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle_Found(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "marcador en su propia línea",
			text: "Resumen del cambio.\nTITLE: \"fix: corrige el parser\"\n",
			want: "fix: corrige el parser",
		},
		{
			name: "espacios alrededor del título",
			text: `TITLE: "   feat: nuevo endpoint   "`,
			want: "feat: nuevo endpoint",
		},
		{
			name: "comillas escapadas adentro",
			text: `TITLE: "renombra \"foo\" a bar"`,
			want: `renombra "foo" a bar`,
		},
		{
			name: "texto alrededor del marcador",
			text: `bla bla TITLE: "docs: actualiza README" y más texto`,
			want: "docs: actualiza README",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := Title(tt.text)

			assert.True(t, ok)
			assert.Equal(t, tt.want, title)
		})
	}
}

func TestTitle_Miss(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "sin marcador", text: "un resumen cualquiera sin título"},
		{name: "sin comillas", text: "TITLE: fix sin comillas"},
		{name: "comillas sin cerrar", text: `TITLE: "a medio camino`},
		{name: "título vacío", text: `TITLE: ""`},
		{name: "título solo espacios", text: `TITLE: "   "`},
		{name: "texto vacío", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := Title(tt.text)

			assert.False(t, ok)
			assert.Empty(t, title)
		})
	}
}

func TestLabels_Found(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lista con comillas dobles",
			text: `LABELS: ["a", "b", "c"]`,
			want: []string{"a", "b", "c"},
		},
		{
			name: "lista con comillas simples",
			text: `LABELS: ['fix', 'infra']`,
			want: []string{"fix", "infra"},
		},
		{
			name: "comillas mezcladas",
			text: `LABELS: ["fix", 'docs']`,
			want: []string{"fix", "docs"},
		},
		{
			name: "coma adentro de una etiqueta",
			text: `LABELS: ["needs, review", "fix"]`,
			want: []string{"needs, review", "fix"},
		},
		{
			name: "duplicados se preservan",
			text: `LABELS: ["fix", "fix"]`,
			want: []string{"fix", "fix"},
		},
		{
			name: "lista vacía",
			text: `LABELS: []`,
			want: []string{},
		},
		{
			name: "coma colgante",
			text: `LABELS: ["fix",]`,
			want: []string{"fix"},
		},
		{
			name: "marcador rodeado de texto",
			text: "Resumen.\nLABELS: [\"feature\"]\nSaludos.",
			want: []string{"feature"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := Labels(tt.text)

			assert.Equal(t, tt.want, labels)
		})
	}
}

func TestLabels_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "sin marcador", text: "no hay etiquetas acá"},
		{name: "items sin comillas", text: `LABELS: [fix, docs]`},
		{name: "bracket sin cerrar", text: `LABELS: ["fix"`},
		{name: "item sin cerrar", text: `LABELS: ["fix]`},
		{name: "separador inválido", text: `LABELS: ["a" "b"]`},
		{name: "no es una lista", text: `LABELS: "fix"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := Labels(tt.text)

			assert.Empty(t, labels)
		})
	}
}

func TestFields_ExtractionsAreIndependent(t *testing.T) {
	// Un LABELS malformado no afecta la extracción del título, y viceversa.
	text := `TITLE: "fix: algo concreto"` + "\n" + `LABELS: [fix, sin comillas]`

	title, hasTitle, labels := Fields(text)

	assert.True(t, hasTitle)
	assert.Equal(t, "fix: algo concreto", title)
	assert.Empty(t, labels)

	text = "sin título acá\nLABELS: [\"docs\"]"

	title, hasTitle, labels = Fields(text)

	assert.False(t, hasTitle)
	assert.Empty(t, title)
	assert.Equal(t, []string{"docs"}, labels)
}
