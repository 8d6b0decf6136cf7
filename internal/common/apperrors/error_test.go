package apperrors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("TestError", func(t *testing.T) {
		ErrBaseErr := New("base error")
		assert.Equal(t, "base error", ErrBaseErr.Error())
		assert.Equal(t, "msg", ErrBaseErr.New("msg").Error())
		assert.ErrorIs(t, ErrBaseErr, ErrBaseErr)

		ErrFirstLevel := ErrBaseErr.New("first level")
		assert.Equal(t, "first level", ErrFirstLevel.Error())
		assert.ErrorIs(t, ErrFirstLevel, ErrBaseErr)

		ErrAnotherErr := New("another error")
		ErrWrappedErr := ErrFirstLevel.Err(ErrAnotherErr)
		assert.Equal(t, "first level", ErrWrappedErr.Error())
		assert.ErrorIs(t, ErrWrappedErr, ErrBaseErr)
		assert.ErrorIs(t, ErrWrappedErr, ErrAnotherErr)

		err := errors.New("error")
		ErrWrappedErr = ErrFirstLevel.Err(err)
		assert.Equal(t, "first level", ErrWrappedErr.Error())
		assert.ErrorIs(t, ErrWrappedErr, ErrBaseErr)
		assert.ErrorIs(t, ErrWrappedErr, err)

		ErrWrappedErr = ErrFirstLevel.MsgErr("msg", err)
		assert.Equal(t, "msg", ErrWrappedErr.Error())
		assert.ErrorIs(t, ErrWrappedErr, ErrBaseErr)
		assert.ErrorIs(t, ErrWrappedErr, err)
	})

	t.Run("TestStatusCode", func(t *testing.T) {
		ErrBase := New("request failed").SetStatusCode(http.StatusBadRequest)
		assert.Equal(t, http.StatusBadRequest, ErrBase.StatusCode())

		derived := ErrBase.New("name too long")
		assert.Equal(t, http.StatusBadRequest, derived.StatusCode())
		assert.ErrorIs(t, derived, ErrBase)
	})

	t.Run("TestExpandError", func(t *testing.T) {
		inner := errors.New("connection refused")
		err := New("network error").Err(inner).SetExpandError(true)
		assert.Equal(t, "network error: connection refused", err.ErrorAll())
		err = err.SetExpandError(false)
		assert.Equal(t, "network error", err.ErrorAll())
	})

	t.Run("TestDerivationLeavesReceiver", func(t *testing.T) {
		ErrConn := New("could not connect")
		cause1 := errors.New("dial tcp: connection refused")
		cause2 := errors.New("dial tcp: connection reset")

		first := ErrConn.Err(cause1)
		second := ErrConn.Err(cause2)
		assert.ErrorIs(t, first, cause1)
		assert.ErrorIs(t, second, cause2)
		assert.NotErrorIs(t, second, cause1)
		assert.NotErrorIs(t, first, cause2)

		// The sentinel itself accumulates nothing
		assert.Empty(t, ErrConn.Unwrap())
		_ = ErrConn.MsgErr("read failed", cause1)
		assert.Equal(t, "could not connect", ErrConn.Error())
		_ = ErrConn.SetStatusCode(http.StatusBadGateway)
		assert.Equal(t, 0, ErrConn.StatusCode())
	})
}
