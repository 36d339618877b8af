// Package intakes3 persists intake submissions as JSON objects in an S3
// bucket, one object per submission id. This mirrors the flat key-value
// blob layout the intake form originally wrote to.
package intakes3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/opsfront/intake-backend/intake"
)

const contentTypeJson = "application/json"

type S3SubmRepo struct {
	client *s3.Client
	bucket string
	prefix string // e.g. "submissions/"
}

func NewS3SubmRepo(region string, bucket string, prefix string) (*S3SubmRepo, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &S3SubmRepo{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (repo *S3SubmRepo) key(id string) string {
	return repo.prefix + id + ".json"
}

// Put implements intakesrvc.SubmRepo.
func (repo *S3SubmRepo) Put(ctx context.Context, subm intake.Submission) error {
	content, err := json.Marshal(subm)
	if err != nil {
		return fmt.Errorf("failed to marshal submission %s: %w", subm.ID, err)
	}

	key := repo.key(subm.ID)
	_, err = repo.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &repo.bucket,
		Key:         &key,
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentTypeJson),
	})
	if err != nil {
		return fmt.Errorf("failed to upload submission %s: %w", subm.ID, err)
	}
	return nil
}

// GetAll implements intakesrvc.SubmRepo: lists every object under the
// prefix and downloads each one.
func (repo *S3SubmRepo) GetAll(ctx context.Context) ([]intake.Submission, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: &repo.bucket,
	}
	if repo.prefix != "" {
		input.Prefix = &repo.prefix
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(repo.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list submissions: %w", err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, *obj.Key)
		}
	}

	subms := make([]intake.Submission, 0, len(keys))
	for _, key := range keys {
		output, err := repo.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: &repo.bucket,
			Key:    &key,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to download %s: %w", key, err)
		}

		var subm intake.Submission
		err = json.NewDecoder(output.Body).Decode(&subm)
		output.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", key, err)
		}
		subms = append(subms, subm)
	}

	return subms, nil
}
