package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/mpetrenko/videostore/internal/server/config"
	"github.com/mpetrenko/videostore/internal/server/models"
	"github.com/mpetrenko/videostore/internal/server/repositories/videos"
)

// VideoService manages the catalog and hands out presigned upload URLs for
// poster images kept in S3-compatible storage.
type VideoService struct {
	repo   videos.Repository
	config *sc.Config
}

func NewVideoService(repo videos.Repository, config *sc.Config) *VideoService {
	return &VideoService{
		repo:   repo,
		config: config,
	}
}

func (s *VideoService) Add(ctx context.Context, video *models.Video) (*models.Video, error) {
	return s.repo.Create(ctx, video)
}

func (s *VideoService) GetAll(ctx context.Context) ([]models.Video, error) {
	return s.repo.GetAll(ctx)
}

func (s *VideoService) GetByID(ctx context.Context, id string) (*models.Video, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites an existing catalog entry; a missing id yields
// common.ErrorNotFound.
func (s *VideoService) Update(ctx context.Context, id string, video *models.Video) (*models.Video, error) {
	video.ID = id
	return s.repo.Update(ctx, video)
}

func (s *VideoService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *VideoService) GetByCategory(ctx context.Context, category string) ([]models.Video, error) {
	return s.repo.GetByCategory(ctx, category)
}

func (s *VideoService) SearchByTitle(ctx context.Context, title string) ([]models.Video, error) {
	return s.repo.SearchByTitle(ctx, title)
}

func (s *VideoService) GetFeatured(ctx context.Context, category string) ([]models.Video, error) {
	return s.repo.GetFeatured(ctx, category)
}

// GetRandomPosterKey builds a date-partitioned object key for a poster image.
func GetRandomPosterKey() string {
	d := time.Now()
	return fmt.Sprintf("posters/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *VideoService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// GetPosterUploadURL returns a fresh object key and a presigned PUT URL the
// client can use to upload a poster image directly to the bucket.
func (s *VideoService) GetPosterUploadURL(ctx context.Context) (string, string, error) {

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomPosterKey()

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}
