package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/eduai/eduai/internal/api"
)

func TestFileSaveLoadRoundTrip(t *testing.T) {
	f := NewFile(t.TempDir())
	user := api.User{ID: 7, Email: "student@example.com", FullName: "Sam Student", Role: api.RoleStudent}
	in := Session{User: &user, Token: "access-abc", RefreshToken: "refresh-xyz"}

	if err := f.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out := f.Load()
	if !out.IsAuthenticated() {
		t.Fatal("loaded session not authenticated")
	}
	if out.User.Email != user.Email || out.User.Role != user.Role {
		t.Errorf("User = %+v, want %+v", out.User, user)
	}
	if out.Token != in.Token || out.RefreshToken != in.RefreshToken {
		t.Errorf("tokens = %q/%q, want %q/%q", out.Token, out.RefreshToken, in.Token, in.RefreshToken)
	}
}

func TestFileLoadMissing(t *testing.T) {
	f := NewFile(t.TempDir())
	if sess := f.Load(); sess.IsAuthenticated() || sess.User != nil {
		t.Errorf("Load of missing file = %+v, want zero session", sess)
	}
}

func TestFileSavedRecordShape(t *testing.T) {
	f := NewFile(t.TempDir())
	user := api.User{ID: 1, Email: "a@b.c", FullName: "A", Role: api.RoleAdmin}
	if err := f.Save(Session{User: &user, Token: "tok"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(f.Path())
	if err != nil {
		t.Fatalf("read record: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec["isAuthenticated"] != true {
		t.Error("isAuthenticated not written as true")
	}
	if rec["isAdmin"] != true {
		t.Error("isAdmin not written as true")
	}
	if filepath.Base(f.Path()) != RecordKey+".json" {
		t.Errorf("record stored as %q, want %q", filepath.Base(f.Path()), RecordKey+".json")
	}
}

func TestDecodeRecordCorruptData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not json at all {{{"},
		{"wrong type", `"just a string"`},
		{"token wrong type", `{"user": {"id": 1, "email": "a@b.c", "full_name": "A", "role": "student"}, "token": 12345}`},
		{"bad role", `{"user": {"id": 1, "email": "a@b.c", "full_name": "A", "role": "superuser"}, "token": "tok"}`},
		{"user missing fields", `{"user": {"id": 1}, "token": "tok"}`},
		{"empty object", `{}`},
		{"token without user", `{"user": null, "token": "tok"}`},
		{"user without token", `{"user": {"id": 1, "email": "a@b.c", "full_name": "A", "role": "student"}, "token": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := decodeRecord([]byte(tt.raw))
			if sess.IsAuthenticated() {
				t.Error("corrupt record produced an authenticated session")
			}
			if sess.User != nil || sess.Token != "" || sess.RefreshToken != "" {
				t.Errorf("corrupt record produced non-zero session: %+v", sess)
			}
		})
	}
}

func TestDecodeRecordIgnoresStoredBooleans(t *testing.T) {
	// A tampered record claiming admin over a student identity: the stored
	// flags are ignored and the role decides.
	raw := `{
		"user": {"id": 1, "email": "a@b.c", "full_name": "A", "role": "student"},
		"token": "tok",
		"refreshToken": "ref",
		"isAuthenticated": true,
		"isAdmin": true
	}`

	sess := decodeRecord([]byte(raw))
	if !sess.IsAuthenticated() {
		t.Fatal("valid record not authenticated")
	}
	if sess.IsAdmin() {
		t.Error("stored isAdmin flag overrode the student role")
	}
}

func TestFileLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(dir)
	if err := os.WriteFile(f.Path(), []byte("garbage"), 0o600); err != nil {
		t.Fatalf("write garbage: %v", err)
	}

	if sess := f.Load(); sess.IsAuthenticated() {
		t.Error("corrupt file produced an authenticated session")
	}
}

func TestLogoutAfterCorruptLoad(t *testing.T) {
	// Corrupt data rehydrates as logged out, and the next save overwrites it
	// with a clean record.
	dir := t.TempDir()
	f := NewFile(dir)
	if err := os.WriteFile(f.Path(), []byte("{{{"), 0o600); err != nil {
		t.Fatalf("write garbage: %v", err)
	}

	store := NewStore(&mockAuthService{}, f)
	store.Load()
	if store.Current().IsAuthenticated() {
		t.Fatal("authenticated after corrupt load")
	}

	if err := store.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sess := f.Load(); sess.IsAuthenticated() {
		t.Error("record still authenticated after logout")
	}
}
