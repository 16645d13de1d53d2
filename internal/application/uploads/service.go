package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Buckets admins may upload content images into.
const (
	BucketBlogCovers    = "blog-covers"
	BucketProgramImages = "program-images"
)

var (
	ErrBucketNotAllowed = errors.New("bucket is not allowed")
	ErrFileNameRequired = errors.New("file_name is required")

	unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
)

// StorageClient signs upload URLs against Supabase storage.
type StorageClient interface {
	CreateSignedUploadURL(ctx context.Context, bucket, path string) (string, error)
}

// HTTPClient is a StorageClient backed by the Supabase storage HTTP API.
type HTTPClient struct {
	BaseURL   string
	SecretKey string
	Client    *http.Client
}

type signedUploadResponse struct {
	SignedURL      string `json:"signedUrl"`
	SignedURLSnake string `json:"signed_url"`
	URL            string `json:"url"`
	Path           string `json:"path"`
}

func (c *HTTPClient) CreateSignedUploadURL(ctx context.Context, bucket, path string) (string, error) {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if c.BaseURL == "" {
		return "", fmt.Errorf("supabase: SUPABASE_URL is not set")
	}
	if c.SecretKey == "" {
		return "", fmt.Errorf("supabase: SUPABASE_SERVICE_ROLE_KEY is not set")
	}
	base := strings.TrimRight(c.BaseURL, "/")
	url := fmt.Sprintf("%s/storage/v1/object/upload/sign/%s/%s", base, bucket, path)

	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"expiresIn": 3600,
		"upsert":    false,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("apikey", c.SecretKey)
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("supabase request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("supabase error: status %d body: %s", resp.StatusCode, string(respBody))
	}

	var data signedUploadResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return "", fmt.Errorf("supabase response decode: %w", err)
	}
	switch {
	case data.SignedURL != "":
		return data.SignedURL, nil
	case data.SignedURLSnake != "":
		return data.SignedURLSnake, nil
	case data.URL != "":
		// Relative URL with the signing token; build the absolute form.
		u := data.URL
		if u[0] != '/' {
			u = "/" + u
		}
		return base + u, nil
	}
	return "", fmt.Errorf("supabase returned no signed URL, body: %s", string(respBody))
}

// Service signs content-image uploads so blog covers and program images go
// straight from the admin's browser to storage.
type Service struct {
	Client      StorageClient
	SupabaseURL string
}

// UploadResult is what the admin UI needs to perform and then reference an
// upload.
type UploadResult struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	Path      string `json:"path"`
}

// SignUpload validates the bucket, prefixes the file name with epoch millis
// to avoid collisions, and returns the signed upload and public URLs.
func (s *Service) SignUpload(ctx context.Context, bucket, fileName string) (*UploadResult, error) {
	switch bucket {
	case BucketBlogCovers, BucketProgramImages:
	default:
		return nil, ErrBucketNotAllowed
	}
	fileName = unsafeFileChars.ReplaceAllString(strings.TrimSpace(fileName), "-")
	if fileName == "" || fileName == "-" {
		return nil, ErrFileNameRequired
	}

	path := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), fileName)
	signedURL, err := s.Client.CreateSignedUploadURL(ctx, bucket, path)
	if err != nil {
		return nil, err
	}

	publicBase := strings.TrimRight(s.SupabaseURL, "/")
	return &UploadResult{
		UploadURL: signedURL,
		PublicURL: fmt.Sprintf("%s/storage/v1/object/public/%s/%s", publicBase, bucket, path),
		Path:      path,
	}, nil
}
