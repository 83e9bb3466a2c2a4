package globals

import "os"

// Context keys
type ContextKey string

const ProfileKey ContextKey = "profile"

// JwtSecret returns the token signing key. Read lazily so a .env loaded
// at startup is honored. Override JWT_SECRET in production.
func JwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("campushub_dev_secret")
}
