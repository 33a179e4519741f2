package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUUID(t *testing.T) {
	testCases := []struct {
		name  string
		id    string
		valid bool
	}{
		{"valid lowercase", "a3bb189e-8bf9-3888-9912-ace4e6543002", true},
		{"valid uppercase", "A3BB189E-8BF9-3888-9912-ACE4E6543002", true},
		{"empty", "", false},
		{"missing dashes", "a3bb189e8bf938889912ace4e6543002", false},
		{"too short", "a3bb189e-8bf9-3888-9912", false},
		{"not hex", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz", false},
		{"sql injection attempt", "1; DROP TABLE users--", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidUUID(tc.id))
		})
	}
}
