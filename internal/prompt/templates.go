package prompt

import (
	"strings"

	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
)

// Estilos de resumen disponibles. El orden acá define el orden de expansión de "all".
const (
	StyleClients    = "clients"
	StyleDevOps     = "devops"
	StyleDevelopers = "developers"

	// StyleAll expande a todos los estilos del catálogo, cada uno una sola vez.
	StyleAll = "all"
)

// Template es un esqueleto de texto con un conjunto fijo de slots nombrados,
// conocido en tiempo de definición. No tiene contenido ejecutable.
type Template struct {
	Name  string
	Slots []string
	Text  string
}

func (t Template) hasSlot(name string) bool {
	for _, slot := range t.Slots {
		if slot == name {
			return true
		}
	}
	return false
}

// Render sustituye todos los slots del template. Es total sobre el conjunto
// declarado: falla con SlotError si falta un valor o si se pasa un slot que
// el template no conoce. La ausencia de contenido se representa con string
// vacío, nunca omitiendo el slot.
func (t Template) Render(values map[string]string) (string, error) {
	for _, slot := range t.Slots {
		if _, ok := values[slot]; !ok {
			return "", domainErrors.NewSlotError(t.Name, slot, "falta el valor del slot")
		}
	}
	for name := range values {
		if !t.hasSlot(name) {
			return "", domainErrors.NewSlotError(t.Name, name, "slot desconocido")
		}
	}

	rendered := t.Text
	for _, slot := range t.Slots {
		rendered = strings.ReplaceAll(rendered, "{"+slot+"}", values[slot])
	}
	return rendered, nil
}

var summarySlots = []string{"mr_title", "mr_description", "commit_messages", "code_diffs"}

var reviewSlots = []string{"mr_title", "mr_description", "commit_messages", "labeled_code_diffs", "full_files_content"}

// summaryStyleOrder define el orden de declaración del catálogo.
var summaryStyleOrder = []string{StyleClients, StyleDevOps, StyleDevelopers}

var summaryCatalog = map[string]Template{
	StyleClients: {
		Name:  StyleClients,
		Slots: summarySlots,
		Text:  clientsPromptTemplate,
	},
	StyleDevOps: {
		Name:  StyleDevOps,
		Slots: summarySlots,
		Text:  devopsPromptTemplate,
	},
	StyleDevelopers: {
		Name:  StyleDevelopers,
		Slots: summarySlots,
		Text:  developersPromptTemplate,
	},
}

var reviewTemplate = Template{
	Name:  "review",
	Slots: reviewSlots,
	Text:  codeReviewPromptTemplate,
}

// Styles devuelve los estilos de resumen en orden de declaración del catálogo.
func Styles() []string {
	styles := make([]string, len(summaryStyleOrder))
	copy(styles, summaryStyleOrder)
	return styles
}

// SummaryTemplate busca el template de resumen para un estilo.
func SummaryTemplate(style string) (Template, error) {
	tpl, ok := summaryCatalog[style]
	if !ok {
		return Template{}, domainErrors.NewTemplateNotFoundError(style)
	}
	return tpl, nil
}

// ReviewTemplate devuelve el único template de code review.
func ReviewTemplate() Template {
	return reviewTemplate
}

// ResolveStyles deduplica la lista pedida preservando el orden. Si aparece
// "all" (o la lista viene vacía) se expande al catálogo completo en orden de
// declaración, cada estilo exactamente una vez.
func ResolveStyles(requested []string) []string {
	if len(requested) == 0 {
		return Styles()
	}
	for _, style := range requested {
		if style == StyleAll {
			return Styles()
		}
	}

	seen := make(map[string]struct{}, len(requested))
	resolved := make([]string, 0, len(requested))
	for _, style := range requested {
		if _, ok := seen[style]; ok {
			continue
		}
		seen[style] = struct{}{}
		resolved = append(resolved, style)
	}
	return resolved
}
