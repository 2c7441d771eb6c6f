package state

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/de-tools/roi-atlas/pkg/adapters"
	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

// ObjectAPI is the subset of the S3 client used by the store.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Settings struct {
	Bucket string
	Prefix string
}

// Store keeps one JSON object per namespace under Settings.Prefix.
type Store struct {
	client   ObjectAPI
	settings Settings
}

func NewFromConfig(cfg aws.Config, settings Settings) (*Store, error) {
	return NewStore(s3.NewFromConfig(cfg), settings)
}

func NewStore(client ObjectAPI, settings Settings) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	if settings.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	return &Store{client: client, settings: settings}, nil
}

func (s *Store) key(namespace string) string {
	return path.Join(s.settings.Prefix, namespace+".json")
}

func (s *Store) Load(ctx context.Context, namespace string) (*domain.ReportState, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.settings.Bucket),
		Key:    aws.String(s.key(namespace)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report state object: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report state object: %w", err)
	}

	var record store.ReportState
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal report state: %w", err)
	}
	return adapters.MapStoreStateToDomain(&record), nil
}

func (s *Store) Save(ctx context.Context, namespace string, st domain.ReportState) error {
	payload, err := json.Marshal(adapters.MapDomainStateToStore(st))
	if err != nil {
		return fmt.Errorf("marshal report state: %w", err)
	}

	key := s.key(namespace)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.settings.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put report state object: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("bucket", s.settings.Bucket).
		Str("key", key).
		Int("bytes", len(payload)).
		Msg("report state persisted")
	return nil
}
