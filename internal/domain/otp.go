package domain

// OtpMethod identifies the second-factor mechanism the server asked for.
type OtpMethod int

const (
	// OtpYubiKey is a hardware token press.
	OtpYubiKey OtpMethod = iota
	// OtpGoogleAuthenticator is a TOTP code from an authenticator app.
	OtpGoogleAuthenticator
	// OtpSesame is the vendor's Sesame USB key.
	OtpSesame
)

// String returns the name shown to the user when prompting for a code.
func (m OtpMethod) String() string {
	switch m {
	case OtpYubiKey:
		return "YubiKey"
	case OtpGoogleAuthenticator:
		return "Google Authenticator"
	case OtpSesame:
		return "Sesame"
	}
	return "unknown"
}

// WireField returns the login.php form field the code is submitted under.
func (m OtpMethod) WireField() string {
	if m == OtpSesame {
		return "sesameotp"
	}
	return "otp"
}
