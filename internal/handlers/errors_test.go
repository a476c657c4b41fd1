package handlers

import (
	"net/http"
	"testing"

	"refresh-tracker/internal/destruction"
	"refresh-tracker/internal/filestore"
	"refresh-tracker/internal/ingest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLookupError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{errors.Wrap(ingest.ErrNoRecords, "import avances"), http.StatusBadRequest},
		{destruction.ErrDuplicateSerial, http.StatusConflict},
		{filestore.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{errors.Wrapf(ingest.ErrUnknownEntity, "%q", "otro"), http.StatusNotFound},
	}
	for _, tc := range cases {
		got, ok := lookupError(tc.err)
		if assert.True(t, ok, tc.err.Error()) {
			assert.Equal(t, tc.status, got.status, tc.err.Error())
			assert.NotEmpty(t, got.message)
		}
	}

	_, ok := lookupError(errors.New("disk full"))
	assert.False(t, ok)
}
