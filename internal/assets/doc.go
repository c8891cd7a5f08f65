// Package assets provides the HTML page templates used to publish pages.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in templates compiled into the binary
//	    ├── FilesystemLoader  - templates from a site directory on disk
//	    └── Resolver          - filesystem first, embedded as fallback
//
// A template is plain HTML containing the literal placeholders
// "{{ Title }}" and "{{ Content }}".
//
// # Directory Structure
//
//	{basePath}/
//	├── default.html
//	└── post.html
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
