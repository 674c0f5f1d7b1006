package documents

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store lists and fetches raw report documents from the filing bucket. Keys
// follow <report-type>/FY<year>_Q<quarter>.<ext>.
type Store struct {
	client *s3.Client
	bucket string
}

func NewStore(cfg awssdk.Config, bucket string) (*Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	return &Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// List returns the document keys for one report type, newest name first.
func (s *Store) List(ctx context.Context, reportType string) ([]string, error) {
	prefix := reportType + "/"
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: awssdk.String(s.bucket),
		Prefix: awssdk.String(prefix),
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil || strings.HasSuffix(*obj.Key, "/") {
				continue
			}
			keys = append(keys, *obj.Key)
		}
	}

	// Names sort lexicographically by FY/Q, so newest last; reverse.
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys, nil
}

// Fetch downloads one raw document fully into memory. Filings are single
// report pages; whole-object reads are the working unit.
func (s *Store) Fetch(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: awssdk.String(s.bucket),
		Key:    awssdk.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path.Base(key), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path.Base(key), err)
	}
	return data, nil
}
