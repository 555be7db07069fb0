package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/astro-atlas/pkg/adapters"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

const (
	DefaultRegion = "us-east-1" // Default region if not specified in AWS profile
)

// Archiver stores rendered reports and returns where they were written.
type Archiver interface {
	Archive(ctx context.Context, report domain.Report) (string, error)
}

// PutObjectAPI is the part of the S3 client the archiver needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Settings struct {
	Bucket  string
	Prefix  string
	Region  string
	Profile string
}

type s3Archiver struct {
	client PutObjectAPI
	bucket string
	prefix string
}

func NewS3Archiver(client PutObjectAPI, bucket, prefix string) (Archiver, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	if bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	return &s3Archiver{client: client, bucket: bucket, prefix: prefix}, nil
}

// LoadS3Archiver builds an archiver from the default AWS credential chain.
func LoadS3Archiver(ctx context.Context, settings Settings) (Archiver, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithDefaultRegion(DefaultRegion),
	}
	if settings.Region != "" {
		opts = append(opts, config.WithRegion(settings.Region))
	}
	if settings.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(settings.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return NewS3Archiver(s3.NewFromConfig(awsCfg), settings.Bucket, settings.Prefix)
}

// Key is <prefix>/<tradition>/<report id>.json.
func (a *s3Archiver) Key(report domain.Report) string {
	return path.Join(a.prefix, string(report.Tradition), report.ID+".json")
}

func (a *s3Archiver) Archive(ctx context.Context, report domain.Report) (string, error) {
	if report.ID == "" {
		return "", fmt.Errorf("report has no id")
	}

	body, err := json.Marshal(adapters.MapReportDomainToApi(report))
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	key := a.Key(report)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", report.ID, err)
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
