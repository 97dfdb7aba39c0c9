package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachment(t *testing.T) {
	t.Run("valid attachment", func(t *testing.T) {
		a, err := NewAttachment("image/png", []byte{0x89, 0x50})
		require.NoError(t, err)
		assert.Equal(t, "image/png", a.MIMEType)
		assert.Equal(t, []byte{0x89, 0x50}, a.Data)
	})

	t.Run("missing MIME type", func(t *testing.T) {
		a, err := NewAttachment("", []byte{0x01})
		assert.Nil(t, a)
		assert.ErrorIs(t, err, ErrAttachmentMIMETypeEmpty)
	})

	t.Run("missing data", func(t *testing.T) {
		a, err := NewAttachment("application/pdf", nil)
		assert.Nil(t, a)
		assert.ErrorIs(t, err, ErrAttachmentDataEmpty)
	})
}
