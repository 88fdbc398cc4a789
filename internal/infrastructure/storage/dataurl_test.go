package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDataURL(t *testing.T) {
	assert.True(t, IsDataURL("data:image/png;base64,aGVsbG8="))
	assert.False(t, IsDataURL("https://cdn.example.com/pho.jpg"))
	assert.False(t, IsDataURL(""))
	assert.False(t, IsDataURL("data:text/plain;base64,aGVsbG8="))
}

func TestDecodeDataURL(t *testing.T) {
	t.Run("well-formed png blob", func(t *testing.T) {
		contentType, data, ok := DecodeDataURL("data:image/png;base64,aGVsbG8=")
		require.True(t, ok)
		assert.Equal(t, "image/png", contentType)
		assert.Equal(t, []byte("hello"), data)
	})

	tests := []struct {
		name  string
		image string
	}{
		{"plain url", "https://cdn.example.com/pho.jpg"},
		{"missing comma", "data:image/png;base64"},
		{"not base64 encoded", "data:image/png,rawbytes"},
		{"invalid base64 payload", "data:image/png;base64,!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := DecodeDataURL(tt.image)
			assert.False(t, ok)
		})
	}
}

func TestExtensionForContentType(t *testing.T) {
	assert.Equal(t, ".jpg", ExtensionForContentType("image/jpeg"))
	assert.Equal(t, ".png", ExtensionForContentType("image/png"))
	assert.Equal(t, ".gif", ExtensionForContentType("image/gif"))
	assert.Equal(t, ".webp", ExtensionForContentType("image/webp"))
	assert.Equal(t, ".img", ExtensionForContentType("image/x-unknown"))
}
