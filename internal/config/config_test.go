package config_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultAPIBaseURL", config.DefaultAPIBaseURL},
		{"KeyringService", config.KeyringService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, config.SplashDelay)
	assert.Equal(t, 24*time.Hour, config.ReminderLeadTime)
	assert.Equal(t, 2*time.Second, config.ReminderMinDelay)
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "KonekKalusugan/"), "UserAgent must start with AppName/")
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute, "HTTPTimeout should not be excessively long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")

	assert.Greater(t, config.MaxHTTPResponseSize, 0, "MaxHTTPResponseSize must be positive")
}

// TestRelativeTimeBuckets ensures the thresholds stay strictly ordered.
func TestRelativeTimeBuckets(t *testing.T) {
	assert.Less(t, config.RelTimeJustNowMax, config.RelTimeSecondsMax)
	assert.Less(t, config.RelTimeSecondsMax, config.RelTimeMinutesMax)
	assert.Less(t, config.RelTimeMinutesMax, config.RelTimeHoursMax)
}

// TestEmailPattern_Compiles guards against an invalid regexp literal.
func TestEmailPattern_Compiles(t *testing.T) {
	re, err := regexp.Compile(config.EmailPattern)
	assert.NoError(t, err)
	assert.True(t, re.MatchString("resident@barangay.ph"))
	assert.False(t, re.MatchString("not-an-email"))
	assert.False(t, re.MatchString("spaces in@mail.com"))
}
