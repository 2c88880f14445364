package helper

import "testing"

func TestValidateLoginInput(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "admin@escala.mil", "admin", false},
		{"valid with spaces around email", "  admin@escala.mil  ", "admin", false},
		{"empty email", "", "admin", true},
		{"empty password", "admin@escala.mil", "", true},
		{"malformed email", "admin@", "admin", true},
		{"no tld", "admin@escala", "admin", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLoginInput(tc.email, tc.password)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateLoginInput(%q, %q) err = %v, wantErr %v", tc.email, tc.password, err, tc.wantErr)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("user123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "user123" {
		t.Fatal("hash must not equal plaintext")
	}
	if err := CheckPasswordHash(hashed, "user123"); err != nil {
		t.Errorf("CheckPasswordHash with right password: %v", err)
	}
	if err := CheckPasswordHash(hashed, "wrong"); err == nil {
		t.Error("CheckPasswordHash accepted wrong password")
	}
}
