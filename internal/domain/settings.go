package domain

// Settings keys with process-wide defaults, lazily applied on first read
const (
	SettingWelcome  = "welcome_msg"
	SettingCurrency = "currency"

	DefaultWelcome  = "Welcome to our store 🎉\nBrowse the sections below."
	DefaultCurrency = "SYP"
)
