// Package extract recupera campos semiestructurados (título sugerido y lista
// de etiquetas) del texto libre que genera el modelo. Todo acá es best-effort:
// un marcador ausente o malformado devuelve el valor cero, nunca un error. El
// generador no está bajo nuestro control y su variabilidad normal no puede
// ser fatal.
package extract

import (
	"regexp"
	"strings"
)

var (
	// TITLE: "<texto>" — el texto puede contener cualquier cosa salvo una
	// comilla doble sin escapar.
	titlePattern = regexp.MustCompile(`TITLE:\s*"((?:[^"\\]|\\.)*)"`)

	// LABELS: [<lista>] — el contenido del bracket se parsea como lista
	// literal, no con split por comas.
	labelsPattern = regexp.MustCompile(`LABELS:\s*\[([^\]\n]*)\]`)
)

// Title busca el marcador TITLE en el texto generado. Devuelve el título con
// los espacios de los bordes recortados, o ("", false) si el marcador no
// está o está malformado.
func Title(text string) (string, bool) {
	m := titlePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	title := strings.TrimSpace(m[1])
	title = strings.ReplaceAll(title, `\"`, `"`)
	if title == "" {
		return "", false
	}
	return title, true
}

// Labels busca el marcador LABELS y parsea su contenido como una lista
// literal de strings entre comillas simples o dobles. Preserva el orden y no
// deduplica: aplicar etiquetas ya es idempotente del lado de la plataforma.
// Ante cualquier malformación devuelve nil.
func Labels(text string) []string {
	m := labelsPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	labels, ok := parseList(m[1])
	if !ok {
		return nil
	}
	return labels
}

// parseList recorre el cuerpo de la lista item por item: cada item es un
// string entrecomillado (simple o doble, con escapes \x adentro) seguido de
// una coma opcional. Cualquier token inesperado invalida la lista entera.
func parseList(body string) ([]string, bool) {
	labels := make([]string, 0)
	i := 0
	n := len(body)

	skipSpaces := func() {
		for i < n && (body[i] == ' ' || body[i] == '\t') {
			i++
		}
	}

	skipSpaces()
	if i == n {
		// Lista vacía: válida.
		return labels, true
	}

	for {
		if i >= n || (body[i] != '"' && body[i] != '\'') {
			return nil, false
		}
		quote := body[i]
		i++

		var sb strings.Builder
		closed := false
		for i < n {
			c := body[i]
			if c == '\\' && i+1 < n {
				sb.WriteByte(body[i+1])
				i += 2
				continue
			}
			if c == quote {
				closed = true
				i++
				break
			}
			sb.WriteByte(c)
			i++
		}
		if !closed {
			return nil, false
		}
		labels = append(labels, sb.String())

		skipSpaces()
		if i == n {
			return labels, true
		}
		if body[i] != ',' {
			return nil, false
		}
		i++
		skipSpaces()
		if i == n {
			// Coma colgante: la toleramos.
			return labels, true
		}
	}
}

// Fields corre ambas extracciones sobre el mismo texto. Son independientes:
// el resultado de una no condiciona a la otra.
func Fields(text string) (title string, hasTitle bool, labels []string) {
	title, hasTitle = Title(text)
	labels = Labels(text)
	return title, hasTitle, labels
}
