package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	store := NewBlobImageStore(bucket, "https://cdn.example.com")
	defer store.Close()

	img, err := store.Upload(ctx, strings.NewReader("fake-png"), "image/png", "/ads/")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(img.PublicID, "ads/"))
	assert.True(t, strings.HasSuffix(img.PublicID, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+img.PublicID, img.URL)

	data, err := bucket.ReadAll(ctx, img.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "fake-png", string(data))

	attrs, err := bucket.Attributes(ctx, img.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, img.PublicID))
	exists, err := bucket.Exists(ctx, img.PublicID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Error(t, store.Delete(ctx, img.PublicID))
}

func TestOpenBlobImageStore(t *testing.T) {
	store, err := OpenBlobImageStore(context.Background(), "mem://", "http://localhost/images")
	require.NoError(t, err)
	assert.NoError(t, store.Close())

	_, err = OpenBlobImageStore(context.Background(), "nosuchscheme://bucket", "")
	assert.Error(t, err)
}

func TestObjectName(t *testing.T) {
	assert.True(t, strings.HasSuffix(objectName("x", "image/jpeg"), ".jpg"))
	assert.True(t, strings.HasSuffix(objectName("x", "image/webp"), ".webp"))
	assert.True(t, strings.HasSuffix(objectName("x", "text/plain"), ".bin"))
	assert.False(t, strings.Contains(objectName("", "image/gif"), "/"))
	assert.NotEqual(t, objectName("x", "image/png"), objectName("x", "image/png"))
}
