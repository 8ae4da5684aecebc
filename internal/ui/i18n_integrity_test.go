package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in the locale JSON files.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool)

	keysToCheck := []string{
		config.TKeyWinTitle,
		// Welcome & intro
		config.TKeyTitleWelcome,
		config.TKeySubtitleWelcome,
		config.TKeyIntroPage1,
		config.TKeyIntroPage2,
		config.TKeyIntroPage3,
		config.TKeyBtnNext,
		config.TKeyBtnSkip,
		// Authentication
		config.TKeyTitleLogin,
		config.TKeyTitleRegister,
		config.TKeyTitleForgot,
		config.TKeyTitleVerify,
		config.TKeyTitleReset,
		config.TKeyBtnLogin,
		config.TKeyBtnRegister,
		config.TKeyBtnCreateAcct,
		config.TKeyBtnContinue,
		config.TKeyBtnVerify,
		config.TKeyBtnResend,
		config.TKeyBtnResetPwd,
		config.TKeyBtnBack,
		config.TKeyLblEmail,
		config.TKeyLblPassword,
		config.TKeyLblConfirmPwd,
		config.TKeyLblFullName,
		config.TKeyLblForgot,
		config.TKeyLblRememberMe,
		config.TKeyLblVerifySent,
		// Alerts
		config.TKeyAlertLoginFailed,
		config.TKeyAlertBadCredentials,
		config.TKeyAlertServerDown,
		config.TKeyAlertConnection,
		config.TKeyAlertBadEmail,
		config.TKeyAlertRequired,
		config.TKeyAlertPwdTooShort,
		config.TKeyAlertPwdMismatch,
		config.TKeyAlertAcctNotFound,
		config.TKeyAlertAcctNotFoundB,
		config.TKeyAlertReminderSet,
		config.TKeyAlertReminderSetB,
		config.TKeyAlertReminderOff,
		config.TKeyAlertReminderOffB,
		config.TKeyAlertPickerFailed,
		config.TKeyAlertRxRequired,
		// Home & programs
		config.TKeyTitleHome,
		config.TKeyTitlePrograms,
		config.TKeyTitleProgramInfo,
		config.TKeyBtnViewDetails,
		config.TKeyBtnRemindMe,
		config.TKeyBtnCancelRemind,
		config.TKeyBtnShare,
		config.TKeyLblOngoing,
		config.TKeyLblCompleted,
		config.TKeyLblUpcoming,
		config.TKeyLblUnreadFormat,
		// Medicine requests
		config.TKeyTitlePortal,
		config.TKeySubtitlePortal,
		config.TKeyTitleRequestForm,
		config.TKeyTitleHistory,
		config.TKeyBtnUploadRx,
		config.TKeyBtnRemoveRx,
		config.TKeyBtnSubmit,
		config.TKeyBtnSubmitAnother,
		config.TKeyBtnNewRequest,
		config.TKeyBtnDone,
		config.TKeyLblPatientName,
		config.TKeyLblPhone,
		config.TKeyLblAddress,
		config.TKeyLblBarangay,
		config.TKeyLblNotes,
		config.TKeyLblNoRequests,
		config.TKeyLblStatusFormat,
		config.TKeyLblRequiredSuffix,
		config.TKeyMsgRequestOK,
		// Settings & profile
		config.TKeyTitleSettings,
		config.TKeyTitleAccount,
		config.TKeyTitleEditProf,
		config.TKeyTitleChangePwd,
		config.TKeyBtnSave,
		config.TKeyBtnCancel,
		config.TKeyBtnSignOut,
		config.TKeyBtnShareCard,
		config.TKeyLblDOB,
		config.TKeyLblGender,
		config.TKeyLblLanguage,
		config.TKeyHelpLanguage,
		config.TKeyLblFooter,
		// Notifications
		config.TKeyTitleNotifCtr,
		config.TKeyTitleNotifPref,
		config.TKeyBtnMarkAllRead,
		config.TKeyBtnClearAll,
		config.TKeyLblNoNotifs,
		config.TKeyNotifPrefSub,
		config.TKeyNotifPushLbl,
		config.TKeyNotifPushDesc,
		config.TKeyNotifAnnLbl,
		config.TKeyNotifAnnDesc,
		config.TKeyNotifProgLbl,
		config.TKeyNotifProgDesc,
		config.TKeyNotifRemLbl,
		config.TKeyNotifRemDesc,
		// Help & support
		config.TKeyTitleHelp,
		config.TKeyTitleSupport,
		config.TKeyFaqQ1,
		config.TKeyFaqA1,
		config.TKeyFaqQ2,
		config.TKeyFaqA2,
		config.TKeyFaqQ3,
		config.TKeyFaqA3,
		config.TKeyFaqQ4,
		config.TKeyFaqA4,
		config.TKeyHelpNeedMore,
		config.TKeyHelpContactSub,
		config.TKeySupportHint,
		config.TKeyBtnEmail,
		config.TKeyBtnCall,
	}

	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, locale := range []string{"active.en.json", "active.fil.json"} {
		t.Run(locale, func(t *testing.T) {
			// Adjust path if running test from internal/ui or root
			path := filepath.Join("locales", locale)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				// Fallback for running tests from different CWD
				path = filepath.Join("..", "..", "internal", "ui", "locales", locale)
				content, err = os.ReadFile(path)
			}
			require.NoError(t, err, "Must load %s", locale)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			// Verify consistency
			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, locale)
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}
