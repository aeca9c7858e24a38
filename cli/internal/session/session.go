// ABOUTME: Client-side session cache: token and profile persisted to disk
// ABOUTME: Presence of a token means "authenticated"; only the server verifies it

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Profile is the cached public user profile
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type state struct {
	Token string   `json:"token"`
	User  *Profile `json:"user,omitempty"`
}

// Cache persists the session under an XDG config directory. It never
// validates the token itself; an expired or forged token is only discovered
// when the server rejects it.
type Cache struct {
	configDir string
}

// New creates a session cache rooted at the given config directory
func New(configDir string) *Cache {
	return &Cache{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rimki")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rimki")
}

// sessionFile returns the path to the session JSON
func (c *Cache) sessionFile() string {
	return filepath.Join(c.configDir, "session.json")
}

// Persist writes token and profile to disk, overwriting any prior session
func (c *Cache) Persist(token string, user *Profile) error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(state{Token: token, User: user})
	if err != nil {
		return err
	}

	// 0600: the token grants access by possession
	return os.WriteFile(c.sessionFile(), data, 0o600)
}

// Token returns the cached token string, or "" if absent
func (c *Cache) Token() string {
	return c.load().Token
}

// IsAuthenticated reports whether a plausible token is cached. This is a
// presence check only; it cannot detect an expired or forged token.
func (c *Cache) IsAuthenticated() bool {
	token := strings.TrimSpace(c.Token())
	return token != "" && token != "undefined"
}

// CurrentUser returns the cached profile, or nil if absent or malformed
func (c *Cache) CurrentUser() *Profile {
	return c.load().User
}

// Clear removes the cached session. Called on logout and whenever the server
// reports an unauthorized status.
func (c *Cache) Clear() error {
	err := os.Remove(c.sessionFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// load reads the session file; any read or parse failure degrades to an
// empty (anonymous) state rather than an error.
func (c *Cache) load() state {
	data, err := os.ReadFile(c.sessionFile())
	if err != nil {
		return state{}
	}

	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		return state{}
	}
	return s
}
