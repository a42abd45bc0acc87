package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenReferenceNo(t *testing.T) {
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "TR-2025-000042", GenReferenceNo(42, ts))
}
