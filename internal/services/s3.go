package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"epoxyworld-backend/internal/models"
)

// S3Client handles product image uploads and sync run records.
type S3Client struct {
	client       *s3.Client
	httpClient   *http.Client
	bucketName   string
	region       string
	imagesPrefix string
}

// S3UploadResult represents the result of an S3 upload operation
type S3UploadResult struct {
	Key         string    `json:"key"`
	ETag        string    `json:"etag"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
	ContentType string    `json:"content_type"`
	PublicURL   string    `json:"public_url"`
}

var imageExtPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)(?:\?|$)`)

// NewS3Client creates an S3 client for the given bucket. Region comes from
// the resolved AWS configuration.
func NewS3Client(ctx context.Context, bucketName, region, imagesPrefix string) (*S3Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Client{
		client: s3.NewFromConfig(cfg),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		bucketName:   bucketName,
		region:       cfg.Region,
		imagesPrefix: imagesPrefix,
	}, nil
}

// UploadProductImage downloads an image from the Square CDN and uploads it
// to the product images bucket at a deterministic key derived from the
// item's Square ID. Returns the public URL of the uploaded object.
func (s *S3Client) UploadProductImage(ctx context.Context, imageURL, squareID string) (string, error) {
	if !models.IsValidURL(imageURL) {
		return "", fmt.Errorf("invalid image URL: %s", imageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create image request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image download failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image body: %w", err)
	}

	ext := "jpg"
	if m := imageExtPattern.FindStringSubmatch(imageURL); m != nil {
		ext = strings.ToLower(m[1])
	}

	key := fmt.Sprintf("%s%s.%s", s.imagesPrefix, models.Slugify(squareID), ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/" + ext),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	return s.GetPublicURL(key), nil
}

// UploadSyncRun uploads a sync run record as JSON under a timestamped key.
func (s *S3Client) UploadSyncRun(ctx context.Context, run *models.SyncRun) (*S3UploadResult, error) {
	jsonData, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync run to JSON: %w", err)
	}

	timestamp := time.Now().UTC().Format("2006-01-02T15-04-05Z")
	key := fmt.Sprintf("sync-runs/%s.json", timestamp)

	return s.uploadJSON(ctx, jsonData, key, "application/json")
}

// uploadJSON is a helper method to upload JSON data to S3
func (s *S3Client) uploadJSON(ctx context.Context, data []byte, key, contentType string) (*S3UploadResult, error) {
	key = strings.TrimPrefix(key, "/")

	uploadInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"uploaded-by": "epoxyworld-catalog-sync",
			"upload-time": time.Now().UTC().Format(time.RFC3339),
		},
	}

	result, err := s.client.PutObject(ctx, uploadInput)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &S3UploadResult{
		Key:         key,
		ETag:        strings.Trim(aws.ToString(result.ETag), `"`),
		Size:        int64(len(data)),
		UploadedAt:  time.Now(),
		ContentType: contentType,
		PublicURL:   s.GetPublicURL(key),
	}, nil
}

// GetBucketName returns the configured bucket name
func (s *S3Client) GetBucketName() string {
	return s.bucketName
}

// GetPublicURL generates the public URL for an S3 object
func (s *S3Client) GetPublicURL(key string) string {
	key = strings.TrimPrefix(key, "/")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key)
}
