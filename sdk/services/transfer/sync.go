// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ega-tools/ega-cli-sdk/sdk/services/request"
)

// SyncAll relays every ticket to req.Destination:
// - skip when the plaintext-named object already exists
// - download ciphertext into WorkDir
// - decrypt .cip/.gpg files through the external client
// - upload plaintext with server-side encryption
// - remove local ciphertext and plaintext
// The first failing file stops the run.
func (s *TransferService) SyncAll(ctx context.Context, req SyncRequest) ([]SyncInfo, error) {
	if req.Destination.Bucket == "" {
		return nil, errors.New("sync destination has no bucket")
	}
	store, err := s.ObjectStore(ctx)
	if err != nil {
		return nil, err
	}
	if req.WorkDir != "" {
		if err := os.MkdirAll(req.WorkDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", req.WorkDir, err)
		}
	}

	s.log.Info().Int("files", len(req.Tickets)).Msg("Number of results")
	out := make([]SyncInfo, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		local := LocalName(t)
		key := req.Destination.Key(PlaintextName(local))
		info := SyncInfo{Ticket: t.Ticket, Key: key, Size: int64(t.FileSize)}

		exists, err := store.ObjectExists(ctx, req.Destination.Bucket, key)
		if err != nil {
			return out, fmt.Errorf("presence check for %s failed: %w", key, err)
		}
		if exists {
			s.log.Info().Str("file", t.FileName).Int64("bytes", int64(t.FileSize)).Msg("Skipping")
			info.Skipped = true
			out = append(out, info)
			continue
		}

		if err := s.syncOne(ctx, store, req, t, local, key); err != nil {
			return out, err
		}
		out = append(out, info)
	}
	return out, nil
}

func (s *TransferService) syncOne(ctx context.Context, store ObjectStore, req SyncRequest, t request.Ticket, local, key string) error {
	cipherPath := filepath.Join(req.WorkDir, local)
	plainPath := filepath.Join(req.WorkDir, PlaintextName(local))
	defer s.cleanup(cipherPath, plainPath)

	s.log.Info().Str("file", t.FileName).Int64("bytes", int64(t.FileSize)).Msg("Downloading")
	if _, err := s.DownloadTicket(ctx, t.Ticket, cipherPath); err != nil {
		return err
	}

	if IsEncrypted(local) {
		decrypted, err := s.decrypter.Decrypt(ctx, req.Credentials, cipherPath)
		if err != nil {
			return err
		}
		plainPath = decrypted
		// the decrypter may write somewhere else than expected
		defer s.cleanup(plainPath)
	}

	s.log.Info().Str("file", filepath.Base(plainPath)).Str("dest", "s3://"+req.Destination.Bucket+"/"+key).Msg("Uploading")
	if err := store.UploadFile(ctx, req.Destination.Bucket, key, plainPath); err != nil {
		return fmt.Errorf("upload of %s failed: %w", key, err)
	}
	return nil
}

func (s *TransferService) cleanup(paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", p).Msg("cleanup failed")
		}
	}
}
