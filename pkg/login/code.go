// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package login

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeLength  = 8
	codeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// generateCode returns an 8 character mixed-case alphanumeric one-time
// code, uniformly sampled.
func generateCode() (string, error) {
	code := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeCharset)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to sample code character: %w", err)
		}
		code[i] = codeCharset[n.Int64()]
	}

	return string(code), nil
}
