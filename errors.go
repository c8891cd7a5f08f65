package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/inline"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Rendering errors.
	ErrInvalidSyntax   = inline.ErrInvalidSyntax
	ErrMissingTag      = htmlnode.ErrMissingTag
	ErrMissingChildren = htmlnode.ErrMissingChildren
	ErrNilNode         = htmlnode.ErrNilNode
	ErrMissingURL      = inline.ErrMissingURL
	ErrUnexpectedURL   = inline.ErrUnexpectedURL
	ErrHTMLConversion  = pipeline.ErrHTMLConversion

	// Page errors.
	ErrNoTitle                    = pipeline.ErrNoTitle
	ErrFrontMatter                = pipeline.ErrFrontMatter
	ErrTemplateMissingPlaceholder = pipeline.ErrTemplateMissingPlaceholder

	// Option errors.
	ErrUnknownEngine    = pipeline.ErrUnknownEngine
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// SyntaxError reports an unbalanced inline delimiter and the text it was found in.
type SyntaxError = inline.SyntaxError
