package viewer

import "github.com/iw2rmb/hexpage/internal/logging"

// Config configures the viewer Model.
type Config struct {
	// BytesPerRow fixes the row width. 0 fits as many cells as the width allows.
	BytesPerRow int

	// Placeholder is the preview glyph for non-printable bytes. Invalid values
	// fall back to ".".
	Placeholder string

	Style  Style
	KeyMap KeyMap // zero value means DefaultKeyMap()

	Logger logging.Logger

	// OnChange is called after Update when the page model version moved.
	OnChange func(ChangeEvent)
	// OnLoad is called when an async load finishes, successfully or not.
	OnLoad func(LoadEvent)
}
