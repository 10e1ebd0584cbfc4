package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStorage(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobImageStorage(bucket, "http://shop.test/media/")

	require.NoError(t, storage.Put(ctx, "products/1/abc.png", strings.NewReader("png-bytes"), "image/png"))

	r, contentType, err := storage.Open(ctx, "products/1/abc.png")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", contentType)

	url, err := storage.URL(ctx, "products/1/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "http://shop.test/media/products/1/abc.png", url)

	require.NoError(t, storage.Delete(ctx, "products/1/abc.png"))
	require.NoError(t, storage.Delete(ctx, "products/1/abc.png"), "deleting a missing key is not an error")

	_, _, err = storage.Open(ctx, "products/1/abc.png")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://user:xxxxx@bucket", redactBucketURL("s3://user:secret@bucket"))
	assert.Equal(t, "file:///var/lib/media", redactBucketURL("file:///var/lib/media"))
}
