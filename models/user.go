package models

// User is an admin account. There is exactly one, seeded at startup.
type User struct {
	UserID   string   `json:"userid" bson:"userid"`
	Email    string   `json:"email" bson:"email"`
	Password string   `json:"password,omitempty" bson:"password"`
	Role     []string `json:"role" bson:"role"`
}
