package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	tests := []struct {
		err         error
		name        string
		wantError   string
		wantMessage string
	}{
		{
			name:        "wraps cause",
			err:         NewUserError("could not read keywords", ErrInvalidInput),
			wantError:   "could not read keywords: invalid input",
			wantMessage: "could not read keywords",
		},
		{
			name:        "message only",
			err:         NewUserError("nothing to do", nil),
			wantError:   "nothing to do",
			wantMessage: "nothing to do",
		},
		{
			name:        "plain error",
			err:         fmt.Errorf("load: %w", ErrUnknownBrand),
			wantError:   "load: unknown brand",
			wantMessage: "load: unknown brand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantError, tt.err.Error())
			assert.Equal(t, tt.wantMessage, UserMessage(tt.err))
		})
	}
}

func TestUserError_Unwrap(t *testing.T) {
	err := fmt.Errorf("ingest: %w", NewUserError("bad file", ErrUnknownFormat))

	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Equal(t, "bad file", UserMessage(err))
}
