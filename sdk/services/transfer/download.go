// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/ega-tools/ega-cli-sdk/sdk/services/request"
	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

// DownloadTicket streams the encrypted bytes of one ticket into dest,
// overwriting it. A failed transfer leaves a truncated file behind.
func (s *TransferService) DownloadTicket(ctx context.Context, ticket, dest string) (int64, error) {
	if ticket == "" {
		return 0, errors.New("empty download ticket")
	}

	out, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to create local file: %w", err)
	}
	defer out.Close()

	body, total, err := s.http.Stream(ctx, s.http.DownloadURL(ticket))
	if err != nil {
		return 0, fmt.Errorf("download of ticket %s failed: %w", ticket, err)
	}
	defer body.Close()

	bar := utils.NewProgress(s.progress, total, filepath.Base(dest))
	n, err := io.Copy(io.MultiWriter(out, bar), body)
	if err != nil {
		return n, fmt.Errorf("failed to write to local file: %w", err)
	}
	return n, nil
}

// DownloadAll downloads every ticket sequentially into destDir, naming each
// file after the last segment of its remote name. Failures are recorded on
// the returned entries and do not stop the loop.
func (s *TransferService) DownloadAll(ctx context.Context, tickets []request.Ticket, destDir string) ([]DownloadInfo, error) {
	if destDir != "" {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", destDir, err)
		}
	}

	s.log.Info().Int("files", len(tickets)).Msg("Number of results")
	out := make([]DownloadInfo, 0, len(tickets))
	for _, t := range tickets {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		name := LocalName(t)
		target := filepath.Join(destDir, name)
		s.log.Info().Str("file", t.FileName).Int64("bytes", int64(t.FileSize)).Msg("Downloading")

		info := DownloadInfo{Ticket: t.Ticket, Filename: name, Path: target}
		n, err := s.DownloadTicket(ctx, t.Ticket, target)
		info.Size = n
		if err != nil {
			s.log.Error().Err(err).Str("file", name).Msg("download failed")
			info.Err = err.Error()
		}
		out = append(out, info)
	}
	return out, nil
}

// LocalName is the final segment of the remote file name, or the ticket
// when the name carries none.
func LocalName(t request.Ticket) string {
	base := path.Base(filepath.ToSlash(t.FileName))
	if base == "." || base == "/" || base == "" {
		return t.Ticket
	}
	return base
}
