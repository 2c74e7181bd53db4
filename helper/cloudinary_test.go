package helper

import (
	"testing"

	"restaurant_manager/config"
)

func TestSignUploadParams(t *testing.T) {
	cfg := &config.Config{
		CloudinaryCloudName: "demo",
		CloudinaryAPIKey:    "key123",
		CloudinaryAPISecret: "topsecret",
	}

	// sha1("folder=dishes&public_id=menu-1&timestamp=1700000000" + secret)
	got := SignUploadParams(cfg, "dishes", "menu-1", 1700000000)
	if got.Signature != "70f17558c38f339f2ca6fe8c1f020bd356f07526" {
		t.Errorf("SignUploadParams() signature = %s", got.Signature)
	}
	if got.Timestamp != 1700000000 {
		t.Errorf("SignUploadParams() timestamp = %d, want 1700000000", got.Timestamp)
	}
	if got.APIKey != "key123" || got.CloudName != "demo" {
		t.Errorf("SignUploadParams() credentials = %s/%s, want key123/demo", got.APIKey, got.CloudName)
	}
}

func TestSignUploadParamsTimestampOnly(t *testing.T) {
	cfg := &config.Config{
		CloudinaryCloudName: "demo",
		CloudinaryAPIKey:    "key123",
		CloudinaryAPISecret: "topsecret",
	}

	// sha1("timestamp=1700000000" + secret)
	got := SignUploadParams(cfg, "", "", 1700000000)
	if got.Signature != "8e1a09a828985352cd753768412e637cf52f1734" {
		t.Errorf("SignUploadParams() signature = %s", got.Signature)
	}
}

func TestInitCloudinaryUnconfigured(t *testing.T) {
	cld, err := InitCloudinary(&config.Config{})
	if err != nil {
		t.Fatalf("InitCloudinary() error = %v", err)
	}
	if cld != nil {
		t.Error("InitCloudinary() returned a client without credentials")
	}
}
