package reservation

import (
    "crypto/rand"
    "math/big"
)

// codeAlphabet deliberately sticks to upper-case letters and digits:
// reservation codes are read over the phone.
const (
    codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
    codeLength   = 8
)

// NewCode generates a random 8-character reservation code. Uniqueness
// is checked against the reservations table by the caller; the unique
// key on the code column backs that check up.
func NewCode() (string, error) {
    buf := make([]byte, codeLength)
    max := big.NewInt(int64(len(codeAlphabet)))
    for i := range buf {
        n, err := rand.Int(rand.Reader, max)
        if err != nil {
            return "", err
        }
        buf[i] = codeAlphabet[n.Int64()]
    }
    return string(buf), nil
}
