package pipeline

import (
	"context"
	"errors"
	"strings"
)

// Placeholders replaced in page templates. Both are matched byte for byte.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrTemplateMissingPlaceholder indicates a template without a content slot.
var ErrTemplateMissingPlaceholder = errors.New("template missing " + ContentPlaceholder + " placeholder")

// PageData is substituted into a page template.
type PageData struct {
	Title   string
	Content string
}

// TemplateInjector defines the contract for page template substitution.
type TemplateInjector interface {
	InjectPage(ctx context.Context, tmpl string, data PageData) (string, error)
}

// TemplateInjection replaces the title and content placeholders.
type TemplateInjection struct{}

var _ TemplateInjector = (*TemplateInjection)(nil)

// ValidateTemplate checks that tmpl has somewhere to put the content.
func ValidateTemplate(tmpl string) error {
	if !strings.Contains(tmpl, ContentPlaceholder) {
		return ErrTemplateMissingPlaceholder
	}
	return nil
}

// InjectPage substitutes every occurrence of both placeholders. The title is
// replaced first so a literal "{{ Title }}" inside the content survives.
func (t *TemplateInjection) InjectPage(ctx context.Context, tmpl string, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ValidateTemplate(tmpl); err != nil {
		return "", err
	}

	page := strings.ReplaceAll(tmpl, TitlePlaceholder, data.Title)
	return strings.ReplaceAll(page, ContentPlaceholder, data.Content), nil
}
