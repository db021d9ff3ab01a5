// Package profiling wraps pkg/profile for the host -profile flags.
package profiling

import (
	"fmt"

	"github.com/pkg/profile"
)

// Start begins profiling in mode ("cpu", "mem" or "" for none) and returns
// the func that stops it. Profiles are written to the working directory.
func Start(mode string) (stop func(), err error) {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	default:
		return nil, fmt.Errorf("unknown profile mode %q (want cpu or mem)", mode)
	}
	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	return p.Stop, nil
}
