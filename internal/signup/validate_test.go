package signup

import "testing"

func TestSubmittableMatrix(t *testing.T) {
	cases := []struct {
		name     string
		password string
		repeat   string
		want     bool
	}{
		{"both empty", "", "", false},
		{"only password", "P4ssword", "", false},
		{"only repeat", "", "P4ssword", false},
		{"mismatch", "pass1", "pass2", false},
		{"match", "P4ssword", "P4ssword", true},
	}
	for _, tc := range cases {
		f := NewForm()
		f.SetField(FieldPassword, tc.password)
		f.SetField(FieldPasswordRepeat, tc.repeat)
		if got := Submittable(f); got != tc.want {
			t.Errorf("%s: Submittable = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSubmittableIgnoresUsernameAndEmail(t *testing.T) {
	// Required-field rules for username and email are the server's job; the
	// button enables as soon as the password fields agree.
	f := NewForm()
	f.SetField(FieldPassword, "P4ssword")
	f.SetField(FieldPasswordRepeat, "P4ssword")
	if !Submittable(f) {
		t.Fatal("Submittable should be true with empty username and email")
	}
}

func TestSubmittableFalseWhileSubmitting(t *testing.T) {
	f := NewForm()
	f.SetField(FieldPassword, "P4ssword")
	f.SetField(FieldPasswordRepeat, "P4ssword")
	if err := f.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	if Submittable(f) {
		t.Fatal("Submittable should be false while a submission is outstanding")
	}
}

func TestPasswordsMismatchThenFix(t *testing.T) {
	f := NewForm()
	f.SetField(FieldPassword, "pass1")
	f.SetField(FieldPasswordRepeat, "pass2")
	if !PasswordsMismatch(f) {
		t.Fatal("expected mismatch for differing passwords")
	}
	if Submittable(f) {
		t.Fatal("mismatching passwords must disable submit")
	}

	f.SetField(FieldPasswordRepeat, "pass1")
	if PasswordsMismatch(f) {
		t.Fatal("mismatch should clear once the fields agree")
	}
	if !Submittable(f) {
		t.Fatal("submit should enable once the fields agree")
	}
}

func TestPasswordsMismatchNeedsBothFields(t *testing.T) {
	f := NewForm()
	f.SetField(FieldPassword, "pass1")
	if PasswordsMismatch(f) {
		t.Fatal("mismatch should not fire while the repeat field is empty")
	}
}

func TestDisplayedErrorsMergesMismatchIntoRepeatSlot(t *testing.T) {
	f := NewForm()
	if err := f.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	f.CompleteFailure(map[Field]string{
		FieldUsername:       "Username cannot be null",
		FieldPasswordRepeat: "server says no",
	})

	out := DisplayedErrors(f, "Password mismatch")
	if out[FieldUsername] != "Username cannot be null" {
		t.Errorf("username = %q", out[FieldUsername])
	}
	if out[FieldPasswordRepeat] != "Password mismatch" {
		t.Errorf("passwordRepeat = %q, want the mismatch message to supersede", out[FieldPasswordRepeat])
	}
}

func TestDisplayedErrorsWithoutMismatchKeepsServerMessage(t *testing.T) {
	f := NewForm()
	if err := f.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	f.CompleteFailure(map[Field]string{FieldEmail: "E-mail cannot be null"})

	out := DisplayedErrors(f, "")
	if len(out) != 1 || out[FieldEmail] != "E-mail cannot be null" {
		t.Fatalf("DisplayedErrors = %v", out)
	}
}
