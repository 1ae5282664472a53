// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/logging"
)

const s3Scheme = "s3://"

// ObjectFetcher downloads a remote snapshot object.
type ObjectFetcher interface {
	Download(ctx context.Context, bucket, key string, w io.Writer) error
}

// S3Fetcher downloads snapshots from S3 or an S3-compatible store.
type S3Fetcher struct {
	client *s3.Client
}

// NewS3Fetcher builds an S3 client from the dataset S3 settings. Static
// credentials are used when both keys are set, otherwise the default AWS
// credential chain applies.
func NewS3Fetcher(ctx context.Context, cfg config.S3Config) (*S3Fetcher, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Fetcher{client: client}, nil
}

// Download streams s3://bucket/key into w.
func (f *S3Fetcher) Download(ctx context.Context, bucket, key string, w io.Writer) error {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	if _, err := io.Copy(w, out.Body); err != nil {
		return fmt.Errorf("read s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}

// ParseS3URL splits s3://bucket/key. ok is false for any other path.
func ParseS3URL(path string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(path, s3Scheme) {
		return "", "", false
	}
	bucket, key, found := strings.Cut(strings.TrimPrefix(path, s3Scheme), "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// fetcherFactory builds an ObjectFetcher on demand so local-only datasets
// never touch AWS configuration.
type fetcherFactory func(ctx context.Context, cfg config.S3Config) (ObjectFetcher, error)

func newS3ObjectFetcher(ctx context.Context, cfg config.S3Config) (ObjectFetcher, error) {
	return NewS3Fetcher(ctx, cfg)
}

// localizeSources replaces every s3:// path in paths with a downloaded
// local copy. The returned cleanup removes any temporary directory created.
func localizeSources(ctx context.Context, cfg *config.DatasetConfig, paths map[string]string, newFetcher fetcherFactory) (map[string]string, func(), error) {
	noop := func() {}
	local := make(map[string]string, len(paths))
	var remote []string
	for table, p := range paths {
		if strings.HasPrefix(p, s3Scheme) {
			remote = append(remote, table)
			continue
		}
		local[table] = p
	}
	if len(remote) == 0 {
		return local, noop, nil
	}

	fetcher, err := newFetcher(ctx, cfg.S3)
	if err != nil {
		return nil, noop, err
	}

	dir := cfg.S3.DownloadDir
	cleanup := noop
	if dir == "" {
		dir, err = os.MkdirTemp("", "steamlens-snapshots-")
		if err != nil {
			return nil, noop, fmt.Errorf("create download dir: %w", err)
		}
		cleanup = func() { _ = os.RemoveAll(dir) }
	}

	for _, table := range remote {
		bucket, key, ok := ParseS3URL(paths[table])
		if !ok {
			cleanup()
			return nil, noop, fmt.Errorf("%s: malformed S3 path %q", table, paths[table])
		}
		dst := filepath.Join(dir, table+".parquet")
		if err := downloadTo(ctx, fetcher, bucket, key, dst); err != nil {
			cleanup()
			return nil, noop, fmt.Errorf("%s: %w", table, err)
		}
		logging.Info().
			Str("table", table).
			Str("source", paths[table]).
			Str("file", dst).
			Msg("Snapshot downloaded")
		local[table] = dst
	}
	return local, cleanup, nil
}

func downloadTo(ctx context.Context, fetcher ObjectFetcher, bucket, key, dst string) error {
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if err := fetcher.Download(ctx, bucket, key, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
