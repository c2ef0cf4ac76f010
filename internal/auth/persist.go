package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eduai/eduai/internal/api"
)

// RecordKey is the namespace the session record is stored under.
const RecordKey = "eduai-auth"

// record is the on-disk shape of a Session. The derived booleans are
// written for compatibility with other platform clients but ignored on
// load; they are recomputed from the identity and token.
type record struct {
	User            *api.User `json:"user"`
	Token           string    `json:"token"`
	RefreshToken    string    `json:"refreshToken"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	IsAdmin         bool      `json:"isAdmin"`
}

// File persists the session record as a JSON file. Writes go through a
// temp file and rename so a crash cannot leave a half-written record.
type File struct {
	path string
}

// NewFile creates a File persister storing the record in dir.
func NewFile(dir string) *File {
	return &File{path: filepath.Join(dir, RecordKey+".json")}
}

// Path returns the record's file path.
func (f *File) Path() string { return f.path }

// Save serializes the full session to disk.
func (f *File) Save(s Session) error {
	rec := record{
		User:            s.User,
		Token:           s.Token,
		RefreshToken:    s.RefreshToken,
		IsAuthenticated: s.IsAuthenticated(),
		IsAdmin:         s.IsAdmin(),
	}

	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("install session record: %w", err)
	}
	return nil
}

// Load reads the stored record back. Stored data is untrusted across app
// versions: a missing file, unparseable JSON, a record that fails schema
// validation, or a partial record (identity without token or vice versa)
// all come back as the logged-out zero Session.
func (f *File) Load() Session {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return Session{}
	}
	return decodeRecord(raw)
}

// decodeRecord validates and decodes a raw session record.
func decodeRecord(raw []byte) Session {
	if err := validateRecord(raw); err != nil {
		return Session{}
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Session{}
	}

	// Partial records are "no session", not a half-authenticated state.
	if rec.User == nil || rec.Token == "" {
		return Session{}
	}

	return Session{
		User:         rec.User,
		Token:        rec.Token,
		RefreshToken: rec.RefreshToken,
	}
}
