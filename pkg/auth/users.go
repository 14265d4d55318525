package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/magpielabs/magpie/pkg/storage"
	"github.com/magpielabs/magpie/pkg/types"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2-HMAC-SHA-256 with a 128-bit per-user salt.
	pbkdf2Iterations = 100000
	saltBytes        = 16
	keyBytes         = 32
)

// Users manages client credentials on top of the user store.
type Users struct {
	store storage.UserStore
}

// NewUsers creates a user manager backed by the given store.
func NewUsers(store storage.UserStore) *Users {
	return &Users{store: store}
}

// Register creates a new user with a freshly salted password hash.
// Returns storage.ErrExists if the username is taken.
func (u *Users) Register(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	return u.store.CreateUser(&types.User{
		Username:     username,
		PasswordHash: hex.EncodeToString(derive(password, salt)),
		Salt:         hex.EncodeToString(salt),
	})
}

// Authenticate re-derives the hash and compares in constant time. An
// unknown user and a wrong password are indistinguishable to callers.
func (u *Users) Authenticate(username, password string) bool {
	// Unknown user and store errors both fail closed.
	user, err := u.store.GetUser(username)
	if err != nil {
		return false
	}

	salt, err := hex.DecodeString(user.Salt)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(user.PasswordHash)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(derive(password, salt), stored) == 1
}

func derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyBytes, sha256.New)
}
