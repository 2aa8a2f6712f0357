package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/blog/internal/server/config"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/google/uuid"
)

const presignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Presigner hands out short-lived object storage links, so cover bytes never
// pass through the API server.
type Presigner interface {
	PresignPut(ctx context.Context, key string) (*models.PresignedURL, error)
	PresignGet(ctx context.Context, key string) (*models.PresignedURL, error)
}

// S3Presigner signs requests against an S3-compatible backend (MinIO in dev).
type S3Presigner struct {
	config *sc.Config
	now    func() time.Time
}

func NewS3Presigner(config *sc.Config) *S3Presigner {
	return &S3Presigner{config: config, now: time.Now}
}

// CoverKey returns a fresh object key for a post's cover image.
func CoverKey(postID string) string {
	return fmt.Sprintf("covers/%s/%v", postID, uuid.New())
}

func (p *S3Presigner) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(p.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			p.config.S3RootUser,
			p.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(p.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (p *S3Presigner) PresignPut(ctx context.Context, key string) (*models.PresignedURL, error) {
	pc, err := p.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := p.config.S3Bucket
	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, err
	}

	return &models.PresignedURL{URL: req.URL, Method: req.Method, ExpiresAt: p.now().Add(presignExpiry).UTC()}, nil
}

func (p *S3Presigner) PresignGet(ctx context.Context, key string) (*models.PresignedURL, error) {
	pc, err := p.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := p.config.S3Bucket
	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, err
	}

	return &models.PresignedURL{URL: req.URL, Method: req.Method, ExpiresAt: p.now().Add(presignExpiry).UTC()}, nil
}
