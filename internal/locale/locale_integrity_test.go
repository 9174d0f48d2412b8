package locale_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// TestLocaleIntegrity ensures that every key built from the formats in
// config.go exists in every locale file.
func TestLocaleIntegrity(t *testing.T) {
	definedKeys := map[string]bool{config.TKeyMonthTitle: true}
	for _, cal := range []string{config.CalendarGregory, config.CalendarIslamic, config.CalendarJalali} {
		for m := 0; m < config.MonthsPerYear; m++ {
			definedKeys[fmt.Sprintf(config.TKeyMonthFormat, cal, m)] = true
		}
	}
	for d := 0; d < config.DaysPerWeek; d++ {
		definedKeys[fmt.Sprintf(config.TKeyWeekdayFormat, d)] = true
		definedKeys[fmt.Sprintf(config.TKeyWeekdayShortFormat, d)] = true
	}

	files, err := filepath.Glob(filepath.Join(config.LocalesDir, config.LocalePrefix+"*"+config.LocaleExt))
	require.NoError(t, err)
	require.NotEmpty(t, files, "Locale files must be found next to the package")

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			content, err := os.ReadFile(path)
			require.NoError(t, err)

			var jsonMap map[string]string
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be a flat string map")

			for key := range definedKeys {
				value, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' is missing", key)
				assert.NotEmptyf(t, strings.TrimSpace(value), "Key '%s' is empty", key)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in JSON but is never built by the code", jsonKey)
				}
			}
		})
	}
}
