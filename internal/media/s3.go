package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/vkotlyar/account-keeper/internal/config"
	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/models"
)

// objectPutter is the slice of the S3 client the uploader needs.
// *s3.Client satisfies it.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Uploader struct {
	client        objectPutter
	bucket        string
	publicBaseURL string
	timeout       time.Duration

	logger *logger.Logger
}

func newS3Uploader(ctx context.Context, cfg config.Media, log *logger.Logger) (*s3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMediaSetup, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // MinIO and friends
		}
	})

	return &s3Uploader{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		timeout:       cfg.RequestTimeout,
		logger:        log,
	}, nil
}

// randomObjectKey spreads uploads over date-based prefixes so a single
// listing never has to page through the whole bucket.
func randomObjectKey(fileName string) string {
	d := time.Now()
	return fmt.Sprintf("avatars/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), path.Ext(fileName))
}

// Upload implements [Uploader]. It stores the file under a generated
// date-based object key and returns the public URL of the stored object.
func (u *s3Uploader) Upload(ctx context.Context, file models.FileUpload) (string, error) {
	log := logger.FromContext(ctx)

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	key := randomObjectKey(file.Name)

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   file.Reader,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3Uploader.Upload").Str("key", key).Msg("error: putting object failed")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return fmt.Sprintf("%s/%s/%s", u.publicBaseURL, u.bucket, key), nil
}
