package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
)

// UploadResume sends the file as a multipart form to POST /resume/upload.
//
// The attempt is bounded only by ctx: resume analysis can take far longer
// than a regular request, so the per-request timeout does not apply and
// the single-shot retry policy is skipped. Retries belong to the upload
// orchestrator, which re-opens the file for each attempt.
func (c *Client) UploadResume(ctx context.Context, file UploadFile) (*ResumeUploadResult, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	header.Set("Content-Type", file.MimeType)
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("creating form part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("reading upload file: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("finalizing form: %w", err)
	}

	var result ResumeUploadResult
	err = c.doOnce(ctx, http.MethodPost, "/resume/upload", form.FormDataContentType(), buf.Bytes(), c.uploadClient, &result)
	if err != nil {
		return nil, fmt.Errorf("uploading resume: %w", err)
	}
	return &result, nil
}

// ResumeAnalysis returns the stored analysis for the given user.
// An HTTP 200 is the backend's "a resume exists" signal; callers treat
// any error, including 404, as "no resume".
func (c *Client) ResumeAnalysis(ctx context.Context, userID string) (*AnalysisEnvelope, error) {
	path := "/resume/analysis/" + url.PathEscape(userID)
	var envelope AnalysisEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetching resume analysis: %w", err)
	}
	return &envelope, nil
}
