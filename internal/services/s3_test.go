package services

import (
	"context"
	"net/http"
	"testing"
)

func TestUploadProductImageRejectsBadURL(t *testing.T) {
	client := &S3Client{httpClient: &http.Client{}}

	for _, url := range []string{"", "not-a-url", "ftp://host/image.png"} {
		if _, err := client.UploadProductImage(context.Background(), url, "SQ1"); err == nil {
			t.Errorf("Expected error for image URL %q", url)
		}
	}
}

func TestGetPublicURL(t *testing.T) {
	client := &S3Client{bucketName: "phepros-product-images", region: "us-east-1"}

	want := "https://phepros-product-images.s3.us-east-1.amazonaws.com/products/sq1.jpg"
	if got := client.GetPublicURL("/products/sq1.jpg"); got != want {
		t.Errorf("GetPublicURL() = %q, want %q", got, want)
	}
}
