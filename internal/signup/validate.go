package signup

// MismatchMessageKey is the translation key for the locally computed
// password mismatch hint. The core never holds localized text, only keys.
const MismatchMessageKey = "passwordMismatchValidation"

// Submittable reports whether the submit action is enabled: the form is idle
// and the two password fields are non-empty and equal. Required-field rules
// for username and email are deliberately left to the server; submitting
// with empty fields round-trips a server validation error.
func Submittable(f *Form) bool {
	if f.Status() != StatusIdle {
		return false
	}
	pw := f.Value(FieldPassword)
	return pw != "" && pw == f.Value(FieldPasswordRepeat)
}

// PasswordsMismatch reports whether the mismatch hint should be shown: both
// password fields are non-empty and differ. Empty fields never mismatch.
func PasswordsMismatch(f *Form) bool {
	pw := f.Value(FieldPassword)
	rep := f.Value(FieldPasswordRepeat)
	return pw != "" && rep != "" && pw != rep
}

// DisplayedErrors merges the last failed submission's per-field messages
// with the given localized mismatch message. A non-empty mismatch owns the
// passwordRepeat slot and supersedes any server message there.
func DisplayedErrors(f *Form, mismatchMessage string) map[Field]string {
	out := make(map[Field]string)
	for _, name := range Fields() {
		if msg, ok := f.FieldError(name); ok {
			out[name] = msg
		}
	}
	if mismatchMessage != "" {
		out[FieldPasswordRepeat] = mismatchMessage
	}
	return out
}
