package terminal

import (
	"strings"
)

// Resolution is the outcome of terminal detection
type Resolution struct {
	Profile   *Profile
	Depth     ColorDepth
	Supported bool // false when TERM matched no profile and xterm was assumed
}

// Err returns ErrTerminalNotSupported for a fallback resolution, nil otherwise
// The error is informational; the resolution is always usable
func (r Resolution) Err() error {
	if r.Supported {
		return nil
	}
	return ErrTerminalNotSupported
}

// Resolve selects a profile and color depth from TERM and COLORTERM values
// TERM is matched by substring against the known families in order
func Resolve(term, colorterm string) Resolution {
	res := Resolution{
		Profile: profileXterm,
		Depth:   detectColorDepth(term, colorterm),
	}
	for _, p := range knownProfiles {
		if strings.Contains(term, p.name) {
			res.Profile = p
			res.Supported = true
			break
		}
	}
	return res
}

// detectColorDepth determines color capability from environment values
func detectColorDepth(term, colorterm string) ColorDepth {
	// COLORTERM is set by modern terminals and takes priority
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		return DepthTrueColor
	}
	if strings.Contains(term, "256") {
		return Depth256
	}
	return Depth8
}
