package flags_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	cmtflags "github.com/cometbft/sigverify/libs/cli/flags"
	"github.com/cometbft/sigverify/libs/log"
)

const (
	defaultLogLevelValue = "info"
)

func TestParseLogLevel(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger := log.NewJSONLoggerNoTS(&buf)

	correctLogLevels := []struct {
		lvl              string
		expectedLogLines []string
	}{
		{"", []string{
			``, // if no level is given, assume the default
			`{"level":"INFO","msg":"Kitty Pryde","module":"verifier"}`,
			`{"level":"ERROR","msg":"Mesmero","module":"verifier"}`,
		}},

		{"*:debug", []string{
			`{"level":"DEBUG","msg":"Kingpin","module":"verifier"}`,
			`{"level":"INFO","msg":"Kitty Pryde","module":"verifier"}`,
			`{"level":"ERROR","msg":"Mesmero","module":"verifier"}`,
		}},

		{"error", []string{
			``,
			``,
			`{"level":"ERROR","msg":"Mesmero","module":"verifier"}`,
		}},

		{"none", []string{
			``,
			``,
			``,
		}},
	}

	for _, c := range correctLogLevels {
		logger, err := cmtflags.ParseLogLevel(c.lvl, jsonLogger, defaultLogLevelValue)
		require.NoError(t, err)

		buf.Reset()

		logger.With("module", "verifier").Debug("Kingpin")
		if have := strings.TrimSpace(buf.String()); c.expectedLogLines[0] != have {
			t.Errorf("\nwant '%s'\nhave '%s'\nlevel '%s'", c.expectedLogLines[0], have, c.lvl)
		}

		buf.Reset()

		logger.With("module", "verifier").Info("Kitty Pryde")
		if have := strings.TrimSpace(buf.String()); c.expectedLogLines[1] != have {
			t.Errorf("\nwant '%s'\nhave '%s'\nlevel '%s'", c.expectedLogLines[1], have, c.lvl)
		}

		buf.Reset()

		logger.With("module", "verifier").Error("Mesmero")
		if have := strings.TrimSpace(buf.String()); c.expectedLogLines[2] != have {
			t.Errorf("\nwant '%s'\nhave '%s'\nlevel '%s'", c.expectedLogLines[2], have, c.lvl)
		}
	}

	incorrectLogLevel := []string{"some", "verifier:debug", "*:some", "*:"}
	for _, lvl := range incorrectLogLevel {
		_, err := cmtflags.ParseLogLevel(lvl, jsonLogger, defaultLogLevelValue)
		require.Error(t, err, lvl)
	}
}
