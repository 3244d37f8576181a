package media

import (
	"context"
	"io"

	"mytube/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// blobStore stores objects in any gocloud.dev bucket.
type blobStore struct {
	bucket *blob.Bucket
}

// OpenBlobStore opens a bucket URL such as file:///var/mytube, mem://, gs://b or s3://b.
func OpenBlobStore(ctx context.Context, bucketURL string) (*blobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return newBlobStore(bucket), nil
}

func newBlobStore(bucket *blob.Bucket) *blobStore {
	return &blobStore{bucket: bucket}
}

func (s *blobStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	var opts *blob.WriterOptions
	if contentType != "" {
		opts = &blob.WriterOptions{ContentType: contentType}
	}

	return errors.WithStack(s.bucket.Upload(ctx, key, r, opts))
}

func (s *blobStore) Remove(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.WithStack(err)
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
