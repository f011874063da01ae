package nextstep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"nextstep-go/internal/api"
)

// ErrAttemptTimeout marks an upload attempt that hit the per-attempt
// deadline. It is network-class for retry purposes but keeps its own
// user-facing message.
var ErrAttemptTimeout = errors.New("upload attempt timed out")

// uploadMimeTypes are the accepted resume formats and their MIME types.
var uploadMimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ResolveUploadFile validates a local path for upload: it must be a
// regular file with a supported resume extension. The returned UploadFile
// re-opens the file on every attempt.
func ResolveUploadFile(rawPath string) (api.UploadFile, error) {
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return api.UploadFile{}, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return api.UploadFile{}, fmt.Errorf("stat path: %w", err)
	}
	if !info.Mode().IsRegular() {
		return api.UploadFile{}, &ValidationError{Field: "file", Reason: "not a regular file"}
	}

	mimeType, ok := uploadMimeTypes[strings.ToLower(filepath.Ext(absPath))]
	if !ok {
		return api.UploadFile{}, &ValidationError{Field: "file", Reason: "supported formats are pdf, doc and docx"}
	}

	return api.UploadFile{
		Open:     func() (io.ReadCloser, error) { return os.Open(absPath) },
		Name:     filepath.Base(absPath),
		MimeType: mimeType,
	}, nil
}

// UploadResume validates the file and drives the upload through the
// bounded retry loop. maxAttempts values below 1 mean a single attempt.
func (s *Service) UploadResume(ctx context.Context, rawPath string, maxAttempts int) (*api.ResumeUploadResult, error) {
	file, err := ResolveUploadFile(rawPath)
	if err != nil {
		return nil, err
	}
	return s.uploadWithRetry(ctx, file, maxAttempts)
}

// uploadWithRetry runs up to maxAttempts upload attempts. Each attempt is
// capped by the per-attempt timeout. Only network-class failures (timeout
// included) are retried, with exponential backoff between attempts:
// base, 2*base, 4*base, ... Anything else aborts immediately. When
// attempts are exhausted the last error is returned.
func (s *Service) uploadWithRetry(ctx context.Context, file api.UploadFile, maxAttempts int) (*api.ResumeUploadResult, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := s.uploadOnce(ctx, file)
		if err == nil {
			s.logger.Info("resume uploaded", "file", file.Name, "attempt", attempt)
			return result, nil
		}
		lastErr = err

		if !uploadRetryable(err) {
			s.logger.Warn("resume upload failed", "file", file.Name, "error", err)
			return nil, err
		}
		if attempt == maxAttempts {
			break
		}

		delay := s.uploadBackoffBase * (1 << (attempt - 1))
		s.logger.Warn("upload attempt failed, retrying",
			"file", file.Name, "attempt", attempt, "backoff", delay, "error", err)
		if err := s.sleep(ctx, delay); err != nil {
			return nil, lastErr
		}
	}

	s.logger.Error("resume upload exhausted retries", "file", file.Name, "attempts", maxAttempts)
	return nil, lastErr
}

// uploadOnce performs a single attempt under the per-attempt deadline.
// When the deadline fires (and the caller's context is still live) the
// error is normalized to ErrAttemptTimeout.
func (s *Service) uploadOnce(ctx context.Context, file api.UploadFile) (*api.ResumeUploadResult, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.uploadAttemptTimeout)
	defer cancel()

	result, err := s.backend.UploadResume(attemptCtx, file)
	if err != nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, fmt.Errorf("%w after %s", ErrAttemptTimeout, s.uploadAttemptTimeout)
	}
	return result, err
}

func uploadRetryable(err error) bool {
	return errors.Is(err, ErrAttemptTimeout) || api.IsNetworkError(err)
}

// UploadFailureMessage maps an upload error to the user-facing message,
// distinguishing timeout, network and everything else.
func UploadFailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrAttemptTimeout):
		return "The analysis took too long to respond. Try again or upload a smaller file."
	case api.IsNetworkError(err):
		return "Network error during upload. Check your connection and try again."
	default:
		return "Failed to upload the resume. Please try again."
	}
}
