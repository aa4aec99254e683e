package flags

import (
	"fmt"
	"strings"

	"github.com/cometbft/sigverify/libs/log"
)

const defaultLogLevelKey = "*"

// ParseLogLevel parses a log level of the form "info" or "*:info" and
// returns a filtered logger. An empty lvl falls back to defaultLogLevelValue.
//
// Example:
//
//	ParseLogLevel("*:debug", log.NewLogger(os.Stdout), "info")
func ParseLogLevel(lvl string, logger log.Logger, defaultLogLevelValue string) (log.Logger, error) {
	lvl = strings.TrimSpace(lvl)
	if lvl == "" {
		lvl = defaultLogLevelValue
	}
	if module, level, ok := strings.Cut(lvl, ":"); ok {
		if module != defaultLogLevelKey {
			return nil, fmt.Errorf("module level %q is not supported, use %q", lvl, defaultLogLevelKey+":"+level)
		}
		lvl = level
	}

	option, err := log.AllowLevel(lvl)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, option), nil
}
