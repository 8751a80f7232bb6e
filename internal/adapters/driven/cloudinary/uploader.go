package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.AssetStore = (*Uploader)(nil)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// Config holds Cloudinary credentials. UploadPreset enables unsigned
// uploads; APIKey/APISecret are required for deletes and signed uploads.
type Config struct {
	CloudName    string
	UploadPreset string
	APIKey       string
	APISecret    string

	// BaseURL overrides the API endpoint, used in tests
	BaseURL string
}

// Uploader implements driven.AssetStore against the Cloudinary upload API.
// The resource type segment of the endpoint is inferred from the upload's
// content type.
type Uploader struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

// NewUploader creates a new Cloudinary-backed AssetStore
func NewUploader(cfg Config) (*Uploader, error) {
	if cfg.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud name is required")
	}
	if cfg.UploadPreset == "" && (cfg.APIKey == "" || cfg.APISecret == "") {
		return nil, fmt.Errorf("cloudinary upload preset or api key pair is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Uploader{
		cfg:     cfg,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// uploadResponse is the subset of the Cloudinary response we use
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload stores a file and returns its durable URL
func (u *Uploader) Upload(ctx context.Context, upload *domain.AssetUpload) (string, error) {
	resourceType := domain.ResourceTypeFor(upload.ContentType)
	endpoint := fmt.Sprintf("%s/%s/%s/upload", u.baseURL, u.cfg.CloudName, resourceType)

	var body strings.Builder
	writer := multipart.NewWriter(&body)

	fields := map[string]string{}
	if upload.Folder != "" {
		fields["folder"] = upload.Folder
	}
	if u.cfg.UploadPreset != "" {
		fields["upload_preset"] = u.cfg.UploadPreset
	} else {
		timestamp := strconv.FormatInt(time.Now().Unix(), 10)
		fields["timestamp"] = timestamp
		fields["signature"] = u.sign(map[string]string{
			"folder":    upload.Folder,
			"timestamp": timestamp,
		})
		fields["api_key"] = u.cfg.APIKey
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return "", err
		}
	}

	part, err := writer.CreateFormFile("file", upload.FileName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, upload.Body); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", domain.ErrServiceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode >= 500 {
			return "", fmt.Errorf("%w: status %d: %s", domain.ErrServiceUnavailable, resp.StatusCode, result.Error.Message)
		}
		return "", fmt.Errorf("%w: %s", domain.ErrUploadRejected, result.Error.Message)
	}

	// Prefer the https URL; older responses may only carry url
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	if result.URL != "" {
		return result.URL, nil
	}
	return "", fmt.Errorf("%w: response carried no url", domain.ErrUploadRejected)
}

// Delete removes an uploaded asset by URL. Requires API credentials; with
// only an unsigned preset configured this reports the asset as kept.
func (u *Uploader) Delete(ctx context.Context, assetURL string) error {
	if u.cfg.APIKey == "" || u.cfg.APISecret == "" {
		return fmt.Errorf("cloudinary delete requires api credentials")
	}

	publicID, resourceType, err := parseAssetURL(assetURL)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s/%s/destroy", u.baseURL, u.cfg.CloudName, resourceType)
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", u.cfg.APIKey)
	form.Set("signature", u.sign(map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cloudinary destroy failed with status %d", resp.StatusCode)
	}

	return nil
}

// sign computes the request signature: parameters sorted by key, joined
// with &, with the secret appended, hashed with SHA-1
func (u *Uploader) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + u.cfg.APISecret))
	return hex.EncodeToString(sum[:])
}

// parseAssetURL extracts the public id and resource type from a delivery
// URL like https://res.cloudinary.com/cloud/image/upload/v123/folder/name.png
func parseAssetURL(assetURL string) (publicID string, resourceType domain.ResourceType, err error) {
	parsed, err := url.Parse(assetURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid asset url %q: %w", assetURL, err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	// cloud / resource_type / upload / [vN] / public_id...
	uploadIdx := -1
	for i, seg := range segments {
		if seg == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 1 || uploadIdx == len(segments)-1 {
		return "", "", fmt.Errorf("unrecognised asset url %q", assetURL)
	}

	resourceType = domain.ResourceType(segments[uploadIdx-1])
	rest := segments[uploadIdx+1:]

	// Skip the version segment if present
	if len(rest) > 1 && strings.HasPrefix(rest[0], "v") {
		if _, convErr := strconv.Atoi(rest[0][1:]); convErr == nil {
			rest = rest[1:]
		}
	}

	publicID = strings.Join(rest, "/")
	// Raw assets keep their extension in the public id; others drop it
	if resourceType != domain.ResourceRaw {
		publicID = strings.TrimSuffix(publicID, path.Ext(publicID))
	}
	if publicID == "" {
		return "", "", fmt.Errorf("unrecognised asset url %q", assetURL)
	}

	return publicID, resourceType, nil
}
