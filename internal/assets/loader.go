package assets

// TemplateLoader defines the contract for loading page templates.
type TemplateLoader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "default"

// templateExt is appended to template names.
const templateExt = ".html"
