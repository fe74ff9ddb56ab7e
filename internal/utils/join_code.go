package utils

import "crypto/rand"

const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// JoinCodeLength is the fixed size of a family join code.
const JoinCodeLength = 6

// joinCodeMaxByte is the largest multiple of len(joinCodeAlphabet) below 256.
// Bytes at or above it are redrawn so every character stays equally likely.
const joinCodeMaxByte = 256 - 256%len(joinCodeAlphabet)

// GenerateJoinCode returns a random uppercase join code. Uniqueness is the
// caller's problem: the family create flow re-generates while the code is
// already taken.
func GenerateJoinCode() (string, error) {
	code := make([]byte, 0, JoinCodeLength)
	buf := make([]byte, JoinCodeLength)

	for len(code) < JoinCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= joinCodeMaxByte {
				continue
			}
			code = append(code, joinCodeAlphabet[int(b)%len(joinCodeAlphabet)])
			if len(code) == JoinCodeLength {
				break
			}
		}
	}

	return string(code), nil
}
