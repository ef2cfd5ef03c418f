// Package random provides crypto/rand backed generators for short codes.
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"cafemeetup/internal/domain/entity"
	"cafemeetup/internal/domain/service"
)

type codeGenerator struct{}

// NewCodeGenerator is the constructor for codeGenerator.
func NewCodeGenerator() service.CodeGenerator {
	return &codeGenerator{}
}

// ConfirmationCode draws a uniform number in [0, 10^4) and renders it
// zero-padded, so "0042" stays a valid code.
func (g *codeGenerator) ConfirmationCode() (string, error) {
	limit := big.NewInt(1)
	for range entity.ConfirmationCodeLength {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", errors.Wrap(err, "failed to draw confirmation code")
	}

	return fmt.Sprintf("%0*d", entity.ConfirmationCodeLength, n), nil
}
