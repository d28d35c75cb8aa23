package model

// User is the account record cached client-side after login. It mirrors the
// backend's user resource minus the verification OTP, which is never stored.
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}
