package objectstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupabaseStore(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		key     string
		bucket  string
		wantErr bool
	}{
		{name: "complete", url: "https://abc.supabase.co/", key: "service", bucket: "photos"},
		{name: "missing url", key: "service", bucket: "photos", wantErr: true},
		{name: "missing key", url: "https://abc.supabase.co", bucket: "photos", wantErr: true},
		{name: "missing bucket", url: "https://abc.supabase.co", key: "service", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewSupabaseStore(tt.url, tt.key, tt.bucket)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, store)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}

func TestPublicURL(t *testing.T) {
	store, err := NewSupabaseStore("https://abc.supabase.co/", "service", "photos")
	require.NoError(t, err)

	assert.Equal(t,
		"https://abc.supabase.co/storage/v1/object/public/photos/pkg-1/a.jpg",
		store.PublicURL("pkg-1/a.jpg"))
}

func TestDeleteFilesEmpty(t *testing.T) {
	store, err := NewSupabaseStore("https://abc.supabase.co", "service", "photos")
	require.NoError(t, err)

	assert.NoError(t, store.DeleteFiles(nil))
}
