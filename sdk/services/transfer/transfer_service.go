// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

// ObjectStore is the subset of the S3 client used by sync.
type ObjectStore interface {
	ObjectExists(ctx context.Context, bucket, key string) (bool, error)
	UploadFile(ctx context.Context, bucket, key, localPath string) error
}

// Decrypter turns a downloaded .cip/.gpg file into plaintext and returns
// the plaintext path.
type Decrypter interface {
	Decrypt(ctx context.Context, creds config.Credentials, encryptedPath string) (string, error)
}

type TransferService struct {
	http      config.CoreHTTP
	s3conf    config.S3Config
	store     ObjectStore
	decrypter Decrypter
	progress  io.Writer
	log       zerolog.Logger
}

type Option func(*TransferService)

func WithHTTP(core config.CoreHTTP) Option {
	return func(s *TransferService) { s.http = core }
}

func WithObjectStore(store ObjectStore) Option {
	return func(s *TransferService) { s.store = store }
}

func WithDecrypter(d Decrypter) Option {
	return func(s *TransferService) { s.decrypter = d }
}

// WithProgress renders download progress bars on w.
func WithProgress(w io.Writer) Option {
	return func(s *TransferService) { s.progress = w }
}

// NewTransferService builds the java decrypter from conf.Decrypt unless
// overridden by options. The S3 client is built from conf.S3 on first use,
// so local downloads never need an AWS configuration.
func NewTransferService(_ context.Context, conf config.Config, log zerolog.Logger, opts ...Option) (*TransferService, error) {
	s := &TransferService{log: log, s3conf: conf.S3}
	for _, opt := range opts {
		opt(s)
	}

	if s.http == nil {
		s.http = config.NewHTTPCore(nil, conf.Core, log)
	}
	if s.decrypter == nil {
		s.decrypter = NewJavaDecrypter(conf.Decrypt, log)
	}
	return s, nil
}

// ObjectStore returns the configured store, building the S3 client if none
// was injected.
func (s *TransferService) ObjectStore(ctx context.Context) (ObjectStore, error) {
	if s.store != nil {
		return s.store, nil
	}
	s3c, err := config.NewS3Client(ctx, s.s3conf)
	if err != nil {
		return nil, fmt.Errorf("S3 init failed: %w", err)
	}
	s.store = s3c
	return s.store, nil
}
