package errors

import "slices"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (M010-M019)
	// ============================================

	"M010": {
		Category: CategoryRender,
		Message:  "Maximum render depth exceeded",
		Detail:   "The element tree is deeper than the configured maximum depth. Either the tree is unexpectedly deep or an element was attached as its own descendant.",
	},
	"M011": {
		Category: CategoryRender,
		Message:  "Element cycle detected",
		Detail:   "An element appears among its own ancestors. No element may be attached as its own descendant.",
	},
	"M012": {
		Category: CategoryRender,
		Message:  "Nil element",
		Detail:   "A nil element was passed to the renderer or found among an element's children.",
	},
	"M013": {
		Category: CategoryRender,
		Message:  "Failed to write rendered markup",
		Detail:   "The destination writer returned an error.",
	},

	// ============================================
	// Tree Document Errors (M020-M029)
	// ============================================

	"M020": {
		Category: CategoryTree,
		Message:  "Invalid tree document",
		Detail:   "The tree document could not be decoded into an element tree.",
	},
	"M021": {
		Category: CategoryTree,
		Message:  "Unknown content placement",
		Detail:   "placement must be either \"append\" or \"prepend\".",
	},
	"M022": {
		Category: CategoryTree,
		Message:  "Tree document not found",
		Detail:   "The tree document file does not exist or could not be read.",
	},
	"M023": {
		Category: CategoryTree,
		Message:  "Failed to write tree document",
		Detail:   "The destination writer returned an error while encoding the tree.",
	},

	// ============================================
	// Publish Errors (M030-M039)
	// ============================================

	"M030": {
		Category: CategoryPublish,
		Message:  "Failed to publish rendered markup",
		Detail:   "The output sink rejected the rendered markup.",
	},
	"M031": {
		Category: CategoryPublish,
		Message:  "Invalid publish target",
		Detail:   "The publish target is missing a bucket or directory.",
	},

	// ============================================
	// Config Errors (M040-M049)
	// ============================================

	"M040": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No markup.json was found in the given directory.",
	},
	"M041": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "markup.json could not be read or parsed.",
	},
	"M042": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
	},

	// ============================================
	// CLI Errors (M050-M059)
	// ============================================

	"M050": {
		Category: CategoryCLI,
		Message:  "Invalid command arguments",
		Detail:   "The command was called with missing or conflicting arguments.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
