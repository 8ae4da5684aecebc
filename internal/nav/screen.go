package nav

// Screen identifies one named view in the finite navigation vocabulary.
// The zero value is ScreenIntro, the initial frame pre-authentication.
type Screen int

const (
	ScreenIntro Screen = iota
	ScreenLogin
	ScreenLoginForm
	ScreenRegister
	ScreenForgotPassword
	ScreenVerifyEmail
	ScreenResetPassword
	ScreenHome
	ScreenPrograms
	ScreenProgramDetails
	ScreenMedicineRequestPortal
	ScreenMedicineRequestForm
	ScreenMedicineRequestHistory
	ScreenSettings
	ScreenEditProfile
	ScreenAccount
	ScreenChangePassword
	ScreenNotifications
	ScreenNotificationCenter
	ScreenHelpFaq
	ScreenContactSupport
)

var screenNames = map[Screen]string{
	ScreenIntro:                  "Intro",
	ScreenLogin:                  "Login",
	ScreenLoginForm:              "LoginForm",
	ScreenRegister:               "Register",
	ScreenForgotPassword:         "ForgotPassword",
	ScreenVerifyEmail:            "VerifyEmail",
	ScreenResetPassword:          "ResetPassword",
	ScreenHome:                   "Home",
	ScreenPrograms:               "Programs",
	ScreenProgramDetails:         "ProgramDetails",
	ScreenMedicineRequestPortal:  "MedicineRequestPortal",
	ScreenMedicineRequestForm:    "MedicineRequestForm",
	ScreenMedicineRequestHistory: "MedicineRequestHistory",
	ScreenSettings:               "Settings",
	ScreenEditProfile:            "EditProfile",
	ScreenAccount:                "Account",
	ScreenChangePassword:         "ChangePassword",
	ScreenNotifications:          "Notifications",
	ScreenNotificationCenter:     "NotificationCenter",
	ScreenHelpFaq:                "HelpFaq",
	ScreenContactSupport:         "ContactSupport",
}

// String returns the stable screen name used in logs.
func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "Unknown"
}
