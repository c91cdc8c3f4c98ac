// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// multipart above this size
const uploadThreshold = 100 * 1024 * 1024

type S3Client struct {
	s3 *s3.Client
}

// NewS3Client uses static credentials when an access key is configured and
// the default AWS chain otherwise.
func NewS3Client(ctx context.Context, cfgCreds S3Config) (*S3Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfgCreds.AccessKey != "" {
		creds := aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			cfgCreds.AccessKey,
			cfgCreds.SecretKey,
			cfgCreds.AccessToken,
		))
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	}
	if cfgCreds.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfgCreds.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Options := func(o *s3.Options) {
		if cfgCreds.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfgCreds.EndpointURL)
			o.UsePathStyle = true
		}
	}

	return &S3Client{
		s3: s3.NewFromConfig(cfg, s3Options),
	}, nil
}

// S3URI is a parsed s3://bucket/prefix destination.
type S3URI struct {
	Bucket string
	Prefix string
}

func (u S3URI) String() string {
	if u.Prefix == "" {
		return "s3://" + u.Bucket
	}
	return "s3://" + u.Bucket + "/" + u.Prefix
}

// Key joins the prefix and name into an object key without a leading "/".
func (u S3URI) Key(name string) string {
	prefix := strings.Trim(u.Prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func ParseS3URI(raw string) (S3URI, error) {
	if !strings.HasPrefix(raw, "s3://") {
		return S3URI{}, Validationf("sync destination must be an s3:// URI, got %q", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return S3URI{}, Validationf("invalid destination %q: %v", raw, err)
	}
	bucket := strings.TrimPrefix(u.Host, "/")
	if bucket == "" {
		return S3URI{}, Validationf("destination %q has no bucket", raw)
	}
	return S3URI{Bucket: bucket, Prefix: strings.TrimPrefix(u.Path, "/")}, nil
}

/* -------------------- PRESENCE -------------------- */

// ObjectExists lists at most one key under key and compares it exactly;
// the exact key always sorts first among keys sharing it as prefix.
func (c *S3Client) ObjectExists(ctx context.Context, bucket, key string) (bool, error) {
	resp, err := c.s3.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		Prefix:  aws.String(key),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, fmt.Errorf("failed to list objects in S3: %w", err)
	}
	return len(resp.Contents) > 0 && aws.ToString(resp.Contents[0].Key) == key, nil
}

/* -------------------- UPLOAD -------------------- */

// UploadFile uploads localPath with AES256 server-side encryption.
func (c *S3Client) UploadFile(ctx context.Context, bucket, key, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat error: %w", err)
	}
	size := info.Size()

	// Detect MIME TYPE
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mime := http.DetectContentType(buf[:n])
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind error: %w", err)
	}

	if size > uploadThreshold {
		_, err = manager.NewUploader(c.s3).Upload(ctx, &s3.PutObjectInput{
			Bucket:               aws.String(bucket),
			Key:                  aws.String(key),
			Body:                 file,
			ContentType:          aws.String(mime),
			ServerSideEncryption: s3types.ServerSideEncryptionAes256,
		})
	} else {
		_, err = c.s3.PutObject(ctx, &s3.PutObjectInput{
			Bucket:               aws.String(bucket),
			Key:                  aws.String(key),
			Body:                 file,
			ContentLength:        aws.Int64(size),
			ContentType:          aws.String(mime),
			ServerSideEncryption: s3types.ServerSideEncryptionAes256,
		})
	}
	if err != nil {
		return fmt.Errorf("upload error: %w", err)
	}
	return nil
}
