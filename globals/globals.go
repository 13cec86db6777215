package globals

import (
	"context"
)

var (
	// JwtSecret is overridden from JWT_SECRET at startup.
	JwtSecret = []byte("change_this_secret")

	// AdminEmail is the single privileged account, from ADMIN_EMAIL.
	AdminEmail = "admin@romaclubcdlvi.it"

	// ShareURL is printed on exports and share texts.
	ShareURL = "https://romaclubcdlvi.it/trasferte"
)

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
