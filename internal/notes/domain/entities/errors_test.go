package entities_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"notablelists/internal/notes/domain/entities"
)

func TestErrorClasses(t *testing.T) {
	assert.ErrorIs(t, entities.ErrNoteNotFound, entities.ErrNotFound)
	assert.ErrorIs(t, entities.ErrSharedNoteNotFound, entities.ErrNotFound)
	assert.ErrorIs(t, entities.ErrUserNotFound, entities.ErrNotFound)
	assert.ErrorIs(t, entities.ErrMissingRemoteID, entities.ErrValidation)
	assert.NotErrorIs(t, entities.ErrMissingRemoteID, entities.ErrNotFound)
}

func TestRemoteErrorUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *entities.RemoteError
		want string
	}{
		{name: "share 404", err: &entities.RemoteError{Op: entities.OpShareNote, StatusCode: http.StatusNotFound}, want: "note or user not found"},
		{name: "share 400", err: &entities.RemoteError{Op: entities.OpShareNote, StatusCode: http.StatusBadRequest, Message: "dup"}, want: "already shared or not friends"},
		{name: "unshare 403", err: &entities.RemoteError{Op: entities.OpUpdateSharedStatus, StatusCode: http.StatusForbidden}, want: "not authorized"},
		{name: "share 500 keeps server message", err: &entities.RemoteError{Op: entities.OpShareNote, StatusCode: 500, Message: "boom"}, want: "boom"},
		{name: "other op 404", err: &entities.RemoteError{Op: "get note", StatusCode: http.StatusNotFound, Message: "missing"}, want: "missing"},
		{name: "no message", err: &entities.RemoteError{Op: "get note", StatusCode: 502}, want: "remote error (code 502)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.UserMessage())
		})
	}
}

func TestIsRemoteStatus(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &entities.RemoteError{Op: "x", StatusCode: 404})
	assert.True(t, entities.IsRemoteStatus(err, 404))
	assert.False(t, entities.IsRemoteStatus(err, 400))
	assert.False(t, entities.IsRemoteStatus(errors.New("plain"), 404))
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := &entities.NetworkError{Op: "create note", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection reset by peer", err.UserMessage())
	assert.Equal(t, "create note: connection reset by peer", err.Error())

	empty := &entities.NetworkError{Op: "create note"}
	assert.Equal(t, "network error", empty.UserMessage())
}
