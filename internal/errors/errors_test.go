package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *E
		want string
	}{
		{name: "message and cause", err: Wrap(InvalidFiles, "invalid files JSON", stderrors.New("unexpected end")), want: "invalid files JSON: unexpected end"},
		{name: "message only", err: New(NotAuthenticated, "not signed in"), want: "not signed in"},
		{name: "cause only", err: Wrap(RequestFailed, "", stderrors.New("idea not found")), want: "idea not found"},
		{name: "kind only", err: &E{Kind: AuthFailed}, want: "auth_failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOfFollowsWrapping(t *testing.T) {
	base := stderrors.New("boom")
	err := fmt.Errorf("execute: %w", Wrap(NetworkFailed, "", base))

	assert.Equal(t, NetworkFailed, KindOf(err))
	assert.True(t, Is(err, NetworkFailed))
	assert.False(t, Is(err, AuthFailed))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, Kind(""), KindOf(base))
	assert.False(t, Is(nil, NetworkFailed))
}
