package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("anna@example.com", 254))
	assert.Error(t, Email("", 254))
	assert.Error(t, Email("not-an-email", 254))
	assert.Error(t, Email(strings.Repeat("a", 250)+"@example.com", 254))
}

func TestStructAndMessage(t *testing.T) {
	type request struct {
		ClassID string `json:"classId" validate:"required"`
		Status  string `validate:"oneof=pending confirmed"`
	}

	err := Struct(request{Status: "lost"})
	require.Error(t, err)

	msg := Message(err)
	assert.Contains(t, msg, "ClassID must satisfy required")
	assert.Contains(t, msg, "Status must satisfy oneof=pending confirmed")
}
