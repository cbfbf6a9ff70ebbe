package entity

// User is the aggregate root for the user domain.
// Password holds ciphertext produced by the configured secret cipher and is
// never serialized outward.
type User struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	BirthDate *Date
	Password  string
}
