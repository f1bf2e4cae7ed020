package pipeline

import "errors"

// Error kinds, matchable with errors.Is. Configuration errors are fatal
// before processing starts; external-tool and backend errors fail the file
// they occurred in but never the whole run.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrExternalTool  = errors.New("external tool error")
	ErrBackend       = errors.New("backend error")
)
