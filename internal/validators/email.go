package validators

import "net/mail"

// IsEmailValid is a syntactic check only; no DNS lookup, so client
// creation never blocks on the network.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
