package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// SquareConfig holds credentials and scope for the Square Catalog API.
type SquareConfig struct {
	AccessToken string `envconfig:"SQUARE_ACCESS_TOKEN" required:"true"`
	Environment string `envconfig:"SQUARE_ENVIRONMENT" default:"sandbox"`
	LocationID  string `envconfig:"SQUARE_LOCATION_ID"`
}

// BaseURL returns the Square API endpoint for the configured environment.
func (c SquareConfig) BaseURL() string {
	if c.Environment == "production" {
		return "https://connect.squareup.com"
	}
	return "https://connect.squareupsandbox.com"
}

// AWSConfig holds the AWS settings shared by the sync job.
type AWSConfig struct {
	Region   string `envconfig:"AWS_REGION" default:"us-east-1"`
	S3Bucket string `envconfig:"S3_BUCKET_NAME" default:"phepros-product-images"`
}

// PathsConfig holds the local file locations the sync job reads and rewrites.
type PathsConfig struct {
	ProductsFile string `envconfig:"PRODUCTS_FILE" default:"src/data/products.json"`
	ImagesPrefix string `envconfig:"IMAGES_PREFIX" default:"products/"`
}

// SyncConfig is the full configuration for the catalog sync CLI.
type SyncConfig struct {
	Square SquareConfig
	AWS    AWSConfig
	Paths  PathsConfig
}

// EmailConfig holds sender/recipient addresses for the contact form handler.
type EmailConfig struct {
	FromEmail string `envconfig:"FROM_EMAIL" default:"PHEpros@proton.me"`
	ToEmail   string `envconfig:"TO_EMAIL" default:"PHEpros@proton.me"`
	ReplyTo   string `envconfig:"REPLY_TO_EMAIL" default:"PHEpros@proton.me"`
	SiteURL   string `envconfig:"SITE_URL" default:"https://d1o9vf52vkst66.cloudfront.net"`
}

// NewsletterConfig holds settings for the newsletter subscription handler.
type NewsletterConfig struct {
	TableName string `envconfig:"NEWSLETTER_TABLE" default:"phepros-prod-newsletter"`
	Email     EmailConfig
}

// LoadSync populates a SyncConfig from the environment.
func LoadSync() (*SyncConfig, error) {
	var cfg SyncConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// LoadEmail populates an EmailConfig from the environment.
func LoadEmail() (*EmailConfig, error) {
	var cfg EmailConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// LoadNewsletter populates a NewsletterConfig from the environment.
func LoadNewsletter() (*NewsletterConfig, error) {
	var cfg NewsletterConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}
