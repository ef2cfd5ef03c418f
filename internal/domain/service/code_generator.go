package service

// CodeGenerator defines the interface for producing attendance confirmation
// codes. Codes are exactly four digits, zero-padded, so "0000" through
// "9999" are all valid outputs.
type CodeGenerator interface {
	// ConfirmationCode returns a new four digit code.
	ConfirmationCode() (string, error)
}
