package assets

import (
	"fmt"
	"os"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// LoadTemplateFile reads a template from an explicit path.
func LoadTemplateFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided template path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// Resolve loads nameOrPath: values that look like paths are read from disk,
// anything else goes through loader by name. An empty value selects the
// default template.
func Resolve(loader TemplateLoader, nameOrPath string) (string, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultTemplateName
	}
	if fileutil.IsFilePath(nameOrPath) {
		return LoadTemplateFile(nameOrPath)
	}
	return loader.LoadTemplate(nameOrPath)
}
