package infrastructure

import (
	"testing"

	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtensionFromMIME(t *testing.T) {
	testCases := []struct {
		mime string
		want string
	}{
		{"image/jpeg", "jpg"},
		{"image/jpg", "jpg"},
		{"image/png", "png"},
		{"image/webp", "webp"},
	}

	for _, tc := range testCases {
		ext, err := GetExtensionFromMIME(tc.mime)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ext)
	}
}

func TestGetExtensionFromMIMEUnsupported(t *testing.T) {
	_, err := GetExtensionFromMIME("application/pdf")
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}
