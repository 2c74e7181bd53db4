package helper

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"

	"restaurant_manager/config"
)

// InitCloudinary builds the upload client. Returns nil without error when
// no credentials are configured, so image uploads degrade to disabled.
func InitCloudinary(cfg *config.Config) (*cloudinary.Cloudinary, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, nil
	}
	return cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
}

type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}

// SignUploadParams signs direct-upload parameters the way Cloudinary
// verifies them: sorted key=value pairs joined with &, secret appended,
// SHA1 hex digest.
func SignUploadParams(cfg *config.Config, folder, publicID string, timestamp int64) UploadSignature {
	params := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if folder != "" {
		params["folder"] = folder
	}
	if publicID != "" {
		params["public_id"] = publicID
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	toSign := strings.Join(pairs, "&") + cfg.CloudinaryAPISecret

	h := sha1.New()
	h.Write([]byte(toSign))

	return UploadSignature{
		Signature: hex.EncodeToString(h.Sum(nil)),
		Timestamp: timestamp,
		APIKey:    cfg.CloudinaryAPIKey,
		CloudName: cfg.CloudinaryCloudName,
	}
}
