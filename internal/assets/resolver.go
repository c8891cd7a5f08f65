package assets

import "errors"

// Resolver combines a site template directory with the embedded templates.
// Templates found on disk take precedence.
type Resolver struct {
	custom   TemplateLoader // nil if no template directory configured
	embedded TemplateLoader
}

// NewResolver creates a Resolver. An empty basePath uses embedded templates only.
func NewResolver(basePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if basePath != "" {
		fsLoader, err := NewFilesystemLoader(basePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// LoadTemplate loads a template from the site directory, falling back to the
// embedded set only when the template is not found on disk.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}

	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}

	return r.embedded.LoadTemplate(name)
}

// Compile-time interface check.
var _ TemplateLoader = (*Resolver)(nil)
