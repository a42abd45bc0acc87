package utils

import (
	"fmt"
	"time"
)

// GenReferenceNo membuat nomor referensi movement kalau request tidak
// membawa request_id sendiri.
func GenReferenceNo(seq int64, t time.Time) string {
	return fmt.Sprintf("TR-%d-%06d", t.Year(), seq)
}
