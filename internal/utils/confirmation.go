package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// confirmationAlphabet excludes visually confusable characters (no 0, 1, O, I)
// so codes read aloud or typed from a receipt are unambiguous.
const confirmationAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const confirmationSuffixLen = 6

// ConfirmationCode builds a rental confirmation code: a 2-letter prefix, the
// issue date as YYMMDD, a hyphen, and 6 characters drawn from the unambiguous
// alphabet. Codes are generated without a collision check; rentals are keyed
// by their primary ID and the random suffix space makes duplicates negligible
// for a single-user catalog.
func ConfirmationCode(prefix string, issued time.Time) string {
	var b strings.Builder
	for i := 0; i < confirmationSuffixLen; i++ {
		b.WriteByte(confirmationAlphabet[rand.Intn(len(confirmationAlphabet))])
	}
	return fmt.Sprintf("%s%s-%s", prefix, issued.Format("060102"), b.String())
}
