package cli

import (
	"fmt"
	"time"

	"github.com/rposlabs/kdash/internal/errors"
)

// minInterval is the floor for the chart redraw interval. Anything
// faster just burns CPU repainting identical frames.
const minInterval = 50 * time.Millisecond

// ParseInterval parses an --interval flag value. Returns zero (meaning
// "use the config value") when the flag is empty.
func ParseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 500ms, 1s, or 2s.")
	}
	if d < minInterval {
		return minInterval, nil
	}
	return d, nil
}
