package validation

// EmailValidator reports whether an email address is well formed.
// Implementations may fail, for example when the verdict requires a
// remote lookup.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}
