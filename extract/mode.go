package extract

import (
	"strings"

	"github.com/foliohq/folio/faults"
)

// Mode selects which output facets an extraction populates.
type Mode string

const (
	// ModeNone extracts text, tables, and word boxes but no graphics.
	ModeNone Mode = "none"

	// ModeFull extracts everything, including vector graphics. This is the
	// default.
	ModeFull Mode = "full"

	// ModeGraphicsOnly skips text, table, and word-box extraction entirely
	// and emits pages containing only graphics.
	ModeGraphicsOnly Mode = "graphics_only"
)

// ValidModes lists the closed set of accepted extraction modes.
func ValidModes() []string {
	return []string{string(ModeNone), string(ModeFull), string(ModeGraphicsOnly)}
}

// ParseMode validates a mode string against the closed set. An empty string
// selects ModeFull; any other unknown value is a request-validation error.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.TrimSpace(s)) {
	case "":
		return ModeFull, nil
	case ModeNone:
		return ModeNone, nil
	case ModeFull:
		return ModeFull, nil
	case ModeGraphicsOnly:
		return ModeGraphicsOnly, nil
	default:
		return "", faults.Validationf("unsupported extraction_mode %q", s).
			WithExtra("valid_values", ValidModes())
	}
}
