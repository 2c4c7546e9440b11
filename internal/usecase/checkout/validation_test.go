package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-YogaStore/pkg/ptr"
)

func TestNormalizeRequest_UserName(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{name: "absent", in: nil, want: nil},
		{name: "blank", in: ptr.Ptr("   "), want: nil},
		{name: "trimmed", in: ptr.Ptr("  Anna  "), want: ptr.Ptr("Anna")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{OwnerID: " session-1 ", UserEmail: " anna@example.com ", UserName: tt.in}
			normalizeRequest(req)

			assert.Equal(t, tt.want, req.UserName)
			assert.Equal(t, "session-1", req.OwnerID)
			assert.Equal(t, "anna@example.com", req.UserEmail)
		})
	}
}
