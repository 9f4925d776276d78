package session

import "lpass/internal/domain"

// outcomeForCause maps a login.php error cause to its terminal outcome.
// Spellings follow the wire exactly, including the server's own
// "unkownemail" typo. Unknown causes are preserved verbatim so new
// server-side causes degrade into a readable error instead of a crash.
func outcomeForCause(cause string) error {
	switch cause {
	case "unknownpassword":
		return domain.ErrInvalidCredentials
	case "unknownemail", "unkownemail":
		return domain.ErrInvalidUser
	case "otprequired", "otpfailed":
		return &domain.OtpRequiredError{Method: domain.OtpYubiKey}
	case "googleauthrequired", "googleauthfailed":
		return &domain.OtpRequiredError{Method: domain.OtpGoogleAuthenticator}
	case "sesameotprequired", "sesameotpfailed":
		return &domain.OtpRequiredError{Method: domain.OtpSesame}
	case "outofbandrequired", "multifactorresponsefailed":
		return &domain.UnsupportedError{Mode: "out-of-band auth"}
	case "gridrestricted":
		return &domain.UnsupportedError{Mode: "grid-based auth"}
	default:
		return &domain.ProtocolError{Reason: cause}
	}
}
