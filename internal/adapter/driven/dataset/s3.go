package dataset

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

// ObjectGetter is the part of the S3 client used to download inputs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Source baixa objetos S3, com cache de config por perfil.
type s3Source struct {
	client   ObjectGetter
	cfgCache map[string]aws.Config
	mu       sync.Mutex
}

func newS3Source() *s3Source {
	return &s3Source{cfgCache: make(map[string]aws.Config)}
}

func isS3URI(location string) bool {
	return strings.HasPrefix(location, s3Scheme)
}

// parseS3URI splits s3://bucket/key into bucket and key.
func parseS3URI(uri string) (string, string, error) {
	rest := strings.TrimPrefix(uri, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q, expected s3://bucket/key", uri)
	}
	return bucket, key, nil
}

func (s *s3Source) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg, ok := s.cfgCache[profile]; ok {
		return cfg, nil
	}

	var optFns []func(*config.LoadOptions) error
	if profile != "" {
		optFns = append(optFns, config.WithSharedConfigProfile(profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	s.cfgCache[profile] = cfg
	return cfg, nil
}

func (s *s3Source) getClient(ctx context.Context, profile string) (ObjectGetter, error) {
	if s.client != nil {
		return s.client, nil
	}
	cfg, err := s.getAWSConfig(ctx, profile)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

func (s *s3Source) fetch(ctx context.Context, uri, profile string) ([]byte, error) {
	bucket, key, err := parseS3URI(uri)
	if err != nil {
		return nil, err
	}

	client, err := s.getClient(ctx, profile)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s from bucket %s: %w", key, bucket, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}
