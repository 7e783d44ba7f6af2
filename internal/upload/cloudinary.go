package upload

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"swadwala/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const baseURL = "https://api.cloudinary.com/v1_1"

// Client uploads images to the Cloudinary HTTP API and hands back the CDN
// URL that gets stored on shops and items.
type Client struct {
	http   *resty.Client
	cloud  string
	key    string
	secret string
}

func New(cfg config.Config) *Client {
	return &Client{
		http:   resty.New().SetTimeout(30 * time.Second),
		cloud:  cfg.CloudinaryCloudName,
		key:    cfg.CloudinaryAPIKey,
		secret: cfg.CloudinaryAPISecret,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadImage pushes the file into the given folder and returns the secure
// URL. The public id is generated here so re-uploads never collide.
func (c *Client) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	if c.cloud == "" || c.key == "" || c.secret == "" {
		return "", fmt.Errorf("cloudinary is not configured")
	}

	publicID := uuid.NewString()
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	var out uploadResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", publicID, file).
		SetFormData(map[string]string{
			"api_key":   c.key,
			"folder":    folder,
			"public_id": publicID,
			"timestamp": timestamp,
			"signature": c.sign(folder, publicID, timestamp),
		}).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("%s/%s/image/upload", baseURL, c.cloud))
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	if resp.IsError() || out.SecureURL == "" {
		if out.Error.Message != "" {
			return "", fmt.Errorf("image upload failed: %s", out.Error.Message)
		}
		return "", fmt.Errorf("image upload failed: status %d", resp.StatusCode())
	}

	return out.SecureURL, nil
}

// Cloudinary signs the alphabetically sorted params followed by the secret.
func (c *Client) sign(folder, publicID, timestamp string) string {
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", folder, publicID, timestamp, c.secret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}
