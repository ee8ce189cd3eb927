package suite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectFailure(t *testing.T) {
	retryErr := errors.New("connection refused")
	purgeErr := errors.New("no such container")

	t.Run("Reports the retry error", func(t *testing.T) {
		err := connectFailure(retryErr, nil)

		assert.ErrorIs(t, err, retryErr)
		assert.EqualError(t, err, "could not connect to redis: connection refused")
	})

	t.Run("Keeps the retry error when purging fails", func(t *testing.T) {
		err := connectFailure(retryErr, purgeErr)

		assert.ErrorIs(t, err, retryErr)
		assert.ErrorIs(t, err, purgeErr)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
