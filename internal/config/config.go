package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "KonekKalusugan/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Konek Kalusugan"
	AppID             = "com.github.jessmaee.konek-kalusugan"
	KeyringService    = "com.github.jessmaee.konek-kalusugan"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Preferences
// -----------------------------------------------------------------------------

const (
	PrefLanguage   = "language"
	PrefAPIBaseURL = "api_base_url"
	PrefServerPort = "calendar_server_port"
	PrefUsername   = "username"
	PrefRememberMe = "remember_me"
	PrefIntroSeen  = "intro_seen"
	PrefLastRun    = "last_run_version"

	PrefNotifPush          = "notif_push"
	PrefNotifAnnouncements = "notif_announcements"
	PrefNotifPrograms      = "notif_programs"
	PrefNotifReminders     = "notif_reminders"
)

// SupportedLanguages defines the list of available UI languages (ISO 639 codes).
var SupportedLanguages = []string{"en", "fil"}

// -----------------------------------------------------------------------------
// Timing & Scheduling
// -----------------------------------------------------------------------------

const (
	// SplashDelay is the fixed one-shot delay before the initial routing decision.
	SplashDelay = 1500 * time.Millisecond

	// ReminderLeadTime is how long before an event a scheduled reminder fires.
	ReminderLeadTime = 24 * time.Hour

	// ReminderMinDelay substitutes for non-positive delays so a reminder for an
	// event that is today or past still visibly fires.
	ReminderMinDelay = 2 * time.Second
)

// Relative-time bucket thresholds.
const (
	RelTimeJustNowMax = 10 * time.Second
	RelTimeSecondsMax = time.Minute
	RelTimeMinutesMax = time.Hour
	RelTimeHoursMax   = 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Medicine Requests
// -----------------------------------------------------------------------------

const (
	// RequestIDFormat renders sequential display ids: #0001, #0002, ...
	RequestIDFormat = "#%04d"

	// RequestDateLayout matches the long en-US date stamped on submission.
	RequestDateLayout = "January 2, 2006"

	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"

	// DefaultMedicinesEntry is the placeholder line item until itemized
	// medicine capture is supported by the intake form.
	DefaultMedicinesEntry = "Prescription medicines"
)

// Prescription upload fallbacks applied when the picker omits metadata.
const (
	UploadNameFormat  = "prescription_%d.jpg"
	UploadDefaultMIME = "image/jpeg"

	// PlaceholderPrescriptionRef is the opaque image reference attached to a
	// request submitted without a staged upload.
	PlaceholderPrescriptionRef = "capsule"
)

// ImageExtensions filters the prescription image picker.
var ImageExtensions = []string{".jpg", ".jpeg", ".png"}

// -----------------------------------------------------------------------------
// Notifications
// -----------------------------------------------------------------------------

const (
	NotifTitleReminder      = "Reminder"
	NotifBodyReminderFormat = "%s is tomorrow. Don't forget to attend."

	NotifTitleReminderSet      = "Program Reminder Set"
	NotifBodyReminderSetFormat = "You'll be reminded about %q on %s"

	NotifTimeJustNow   = "Just now"
	NotifTimeYesterday = "Yesterday"
	NotifTimeSecFormat = "%ds ago"
	NotifTimeMinFormat = "%dm ago"
	NotifTimeHrFormat  = "%dh ago"
	NotifTimeDayFormat = "%dd ago"

	// ReminderKeyFormat builds the deterministic key for one schedulable
	// program occurrence: program-<id>-<yyyy-mm-dd>.
	ReminderKeyFormat = "program-%s-%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 4 * 1024 * 1024 // 4MB: API payloads are small JSON documents
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	AddrSeparator       = ":"

	DefaultAPIBaseURL = "http://www.junssei.site"
	RouteLogin        = "/api/login"
	RouteRegister     = "/api/register"
	RouteBarangays    = "/api/barangays"

	DefaultPort = "18080"
	MinPort     = 1
	MaxPort     = 65535
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderAccept          = "Accept"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeJSON            = "application/json"
	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Konek Kalusugan//Programs//EN"
	ICalCalName = "Barangay Health Programs"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "konekkalusugan"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDescProp   = "DESCRIPTION"
	PropLocation   = "LOCATION"
	PropDTStart    = "DTSTART"
	PropDTEnd      = "DTEND"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	FormatEventUID = "%s-%d@%s"

	DefaultICalRefresh = 1 * time.Hour

	// StubVCalendar is the minimal valid iCalendar object used when no events
	// exist. Clients flag an empty body as an invalid feed.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	DateFormatISO     = "2006-01-02"
	DateFormatDisplay = "January 2, 2006"
	TimeFormatDisplay = "3:04 PM"

	// ScheduleFormat renders "date, start - end".
	ScheduleFormat = "%s, %s - %s"

	// ShareTextFormat renders the plain-text program summary copied by the
	// share action: title, category, date, start, end, venue.
	ShareTextFormat = "%s (%s). Schedule: %s, %s - %s. Venue: %s."
)

// -----------------------------------------------------------------------------
// Validation
// -----------------------------------------------------------------------------

const (
	// MinPasswordLength is enforced on registration and password changes.
	MinPasswordLength = 8

	// EmailPattern is the permissive shape check applied before any network call.
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	VerifyCodePlaceholder = "000000"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle = "win_title"

	// Intro carousel
	TKeyIntroPage1 = "intro_page_1"
	TKeyIntroPage2 = "intro_page_2"
	TKeyIntroPage3 = "intro_page_3"
	TKeyBtnSkip    = "btn_skip"

	// Auth
	TKeyBtnLogin        = "btn_login"
	TKeyBtnRegister     = "btn_register"
	TKeyBtnCreateAcct   = "btn_create_account"
	TKeyBtnContinue     = "btn_continue"
	TKeyBtnVerify       = "btn_verify"
	TKeyBtnResend       = "btn_resend"
	TKeyBtnResetPwd     = "btn_reset_password"
	TKeyBtnBack         = "btn_back"
	TKeyLblEmail        = "lbl_email"
	TKeyLblPassword     = "lbl_password"
	TKeyLblConfirmPwd   = "lbl_confirm_password"
	TKeyLblFullName     = "lbl_full_name"
	TKeyLblForgot       = "lbl_forgot_password"
	TKeyLblVerifySent   = "lbl_verify_sent"
	TKeyTitleLogin      = "title_login"
	TKeyTitleRegister   = "title_register"
	TKeyTitleForgot     = "title_forgot"
	TKeyTitleVerify     = "title_verify"
	TKeyTitleReset      = "title_reset"
	TKeyTitleWelcome    = "title_welcome"
	TKeySubtitleWelcome = "subtitle_welcome"

	// Home & programs
	TKeyTitleHome        = "title_home"
	TKeyTitlePrograms    = "title_programs"
	TKeyTitleProgramInfo = "title_program_info"
	TKeyBtnViewDetails   = "btn_view_details"
	TKeyBtnRemindMe      = "btn_remind_me"
	TKeyBtnCancelRemind  = "btn_cancel_reminder"
	TKeyBtnShare         = "btn_share"
	TKeyLblOngoing       = "lbl_ongoing"
	TKeyLblUpcoming      = "lbl_upcoming"
	TKeyLblCompleted     = "lbl_completed"
	TKeyLblUnreadFormat  = "lbl_unread_format"

	// Medicine requests
	TKeyTitlePortal      = "title_request_portal"
	TKeySubtitlePortal   = "subtitle_request_portal"
	TKeyTitleRequestForm = "title_request_form"
	TKeyTitleHistory     = "title_request_history"
	TKeyBtnUploadRx      = "btn_upload_prescription"
	TKeyBtnRemoveRx      = "btn_remove_prescription"
	TKeyBtnNext          = "btn_next"
	TKeyBtnSubmit        = "btn_submit"
	TKeyBtnSubmitAnother = "btn_submit_another"
	TKeyBtnNewRequest    = "btn_new_request"
	TKeyBtnDone          = "btn_done"
	TKeyLblPatientName   = "lbl_patient_name"
	TKeyLblPhone         = "lbl_phone"
	TKeyLblAddress       = "lbl_address"
	TKeyLblBarangay      = "lbl_barangay"
	TKeyLblNotes         = "lbl_notes"
	TKeyLblStatusFormat  = "lbl_status_format"
	TKeyMsgRequestOK     = "msg_request_submitted"

	// Settings cluster
	TKeyTitleSettings  = "title_settings"
	TKeyTitleAccount   = "title_account"
	TKeyTitleEditProf  = "title_edit_profile"
	TKeyTitleChangePwd = "title_change_password"
	TKeyTitleNotifPref = "title_notifications"
	TKeyTitleHelp      = "title_help"
	TKeyTitleSupport   = "title_support"
	TKeyTitleNotifCtr  = "title_notification_center"
	TKeyBtnSignOut     = "btn_sign_out"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyBtnMarkAllRead = "btn_mark_all_read"
	TKeyBtnClearAll    = "btn_clear_all"
	TKeyBtnShareCard   = "btn_share_contact_card"
	TKeyLblLanguage    = "lbl_language"
	TKeyHelpLanguage   = "help_language"
	TKeyLblDOB         = "lbl_date_of_birth"
	TKeyLblGender      = "lbl_gender"
	TKeyLblFooter      = "lbl_footer"

	// Alerts
	TKeyAlertRequired       = "alert_required_fields"
	TKeyAlertBadEmail       = "alert_invalid_email"
	TKeyAlertPwdMismatch    = "alert_password_mismatch"
	TKeyAlertPwdTooShort    = "alert_password_too_short"
	TKeyAlertAcctNotFound   = "alert_account_not_found"
	TKeyAlertAcctNotFoundB  = "alert_account_not_found_body"
	TKeyAlertLoginFailed    = "alert_login_failed"
	TKeyAlertBadCredentials = "alert_bad_credentials"
	TKeyAlertServerDown     = "alert_server_unavailable"
	TKeyAlertConnection     = "alert_connection_error"
	TKeyAlertRxRequired     = "alert_prescription_required"
	TKeyAlertPickerFailed   = "alert_picker_failed"
	TKeyAlertReminderSet    = "alert_reminder_set"
	TKeyAlertReminderSetB   = "alert_reminder_set_body"
	TKeyAlertReminderOff    = "alert_reminder_removed"
	TKeyAlertReminderOffB   = "alert_reminder_removed_body"

	// Help / FAQ
	TKeyFaqQ1          = "faq_q_programs"
	TKeyFaqA1          = "faq_a_programs"
	TKeyFaqQ2          = "faq_q_reminders"
	TKeyFaqA2          = "faq_a_reminders"
	TKeyFaqQ3          = "faq_q_profile"
	TKeyFaqA3          = "faq_a_profile"
	TKeyFaqQ4          = "faq_q_password"
	TKeyFaqA4          = "faq_a_password"
	TKeyHelpNeedMore   = "help_need_more"
	TKeyHelpContactSub = "help_contact_sub"
	TKeySupportHint    = "support_hint"
	TKeyBtnEmail       = "btn_email"
	TKeyBtnCall        = "btn_call"

	// Notification preferences
	TKeyNotifPrefSub      = "notif_pref_subtitle"
	TKeyNotifPushLbl      = "notif_push_label"
	TKeyNotifPushDesc     = "notif_push_desc"
	TKeyNotifAnnLbl       = "notif_announcements_label"
	TKeyNotifAnnDesc      = "notif_announcements_desc"
	TKeyNotifProgLbl      = "notif_programs_label"
	TKeyNotifProgDesc     = "notif_programs_desc"
	TKeyNotifRemLbl       = "notif_reminders_label"
	TKeyNotifRemDesc      = "notif_reminders_desc"
	TKeyLblRememberMe     = "lbl_remember_me"
	TKeyLblNoNotifs       = "lbl_no_notifications"
	TKeyLblNoRequests     = "lbl_no_requests"
	TKeyLblRequiredSuffix = "lbl_required_suffix"
)

// -----------------------------------------------------------------------------
// Defaults
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"

	LocaleDir        = "locales"
	LocaleFilePrefix = "active."
	LocaleFileSuffix = ".json"
)

// -----------------------------------------------------------------------------
// UI Layout
// -----------------------------------------------------------------------------

const (
	// WindowWidth and WindowHeight approximate a phone portrait viewport.
	WindowWidth  = 400
	WindowHeight = 720

	LayoutColumnsDouble = 2

	IntroPageCount      = 3
	IntroProgressFormat = "%d / %d"

	GreetingFormat    = "Hello, %s"
	UnreadBadgeFormat = "%d"

	// DeliveryAddressJoin glues the street entry to the selected barangay.
	DeliveryAddressJoin = ", "
)

// GenderOptions lists the choices offered on registration and profile edits.
var GenderOptions = []string{"Male", "Female", "Prefer not to say"}

// -----------------------------------------------------------------------------
// Support Contacts
// -----------------------------------------------------------------------------

const (
	SupportEmail = "cho@iligan.gov.ph"
	SupportPhone = "+63 221-7646"
	MailToScheme = "mailto:"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrPortRequired   = "server port is required"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrRequestBuild   = "failed to build request"
	ErrRequestEncode  = "failed to encode request body"
	ErrResponseDecode = "failed to decode response body"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrVCardEncode    = "failed to encode vCard data"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
	ErrUnknownProgram = "unknown program"
	ErrUnknownScreen  = "no builder for screen, falling back to login"
	ErrKeyringSave    = "failed to save credentials to keyring"
	ErrKeyringDelete  = "failed to remove credentials from keyring"
	MsgPassFail       = "Could not load remembered credential"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log/Status Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgLogWarning     = "warning: %s %s: %v\n"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Calendar cache updated"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation"
	MsgScreenChange   = "Screen changed"
	MsgIntentApplied  = "Intent applied"
	MsgLoginAttempt   = "Login attempt"
	MsgAPIResponse    = "API response received"
	MsgLoginRejected  = "Login rejected by local profile check"
	MsgSignOut        = "Signing out, resetting navigation"
	MsgSplashRouted   = "Splash routing decision applied"
	MsgReminderArmed  = "Reminder scheduled"
	MsgReminderDupe   = "Reminder already scheduled for key"
	MsgReminderFired  = "Reminder fired"
	MsgReminderOff    = "Reminder cancelled"
	MsgNotifAdded     = "Notification added"
	MsgRequestAdded   = "Medicine request added to history"
	MsgUploadStaged   = "Prescription upload staged"
	MsgUploadCleared  = "Prescription staging slot cleared"
	MsgFeedRegen      = "Program calendar feed regenerated"
	MsgRegisterSkip   = "Directory registration skipped, continuing locally"
	MsgBarangayFail   = "Barangay directory unavailable, address stays free text"
	MsgPortInvalid    = "Configured port is invalid, using default"
	MsgPortBusy       = "Port %s is busy or unavailable."
	TitleStartupError = "Startup Error"
)

// -----------------------------------------------------------------------------
// Log Keys
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyScreen    = "screen"
	LogKeyDepth     = "stack_depth"
	LogKeyIntent    = "intent"
	LogKeyEmail     = "email"
	LogKeyCount     = "count"
	LogKeyID        = "id"
	LogKeyTitle     = "title"
	LogKeyDelay     = "delay"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyProgram   = "program"
	LogKeyDuration  = "duration_ms"
)

// Startup Log Group Keys
const (
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// Log Components
const (
	CompMain     = "main"
	CompUI       = "ui"
	CompNav      = "nav"
	CompState    = "state"
	CompNotify   = "notify"
	CompAPI      = "api"
	CompServer   = "server"
	CompPrograms = "programs"
	CompI18n     = "i18n"
)
