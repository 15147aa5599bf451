// Package s3 stores archived delivery tracking histories in an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/tracking"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectPutter is the part of *s3.Client the archive uses.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type archivedEntry struct {
	Lat        float64   `json:"lat"`
	Long       float64   `json:"long"`
	RecordedAt time.Time `json:"recordedAt"`
}

type archivedTracking struct {
	OrderID string          `json:"orderId"`
	Entries []archivedEntry `json:"entries"`
}

// TrackingArchive implements ports.TrackingArchive. Each order is one JSON
// object under prefix, so archiving the same order twice overwrites it.
type TrackingArchive struct {
	client objectPutter
	bucket string
	prefix string
}

// NewClient loads the default AWS configuration for region.
func NewClient(ctx context.Context, region string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func NewTrackingArchive(client objectPutter, bucket, prefix string) *TrackingArchive {
	return &TrackingArchive{client: client, bucket: bucket, prefix: prefix}
}

func (a *TrackingArchive) objectKey(orderID kernel.UUID) string {
	return fmt.Sprintf("%sdelivery-trackings/%s.json", a.prefix, orderID)
}

// Store uploads entries and returns the s3:// location.
func (a *TrackingArchive) Store(ctx context.Context, orderID kernel.UUID, entries []tracking.Entry) (string, error) {
	doc := archivedTracking{
		OrderID: orderID.String(),
		Entries: make([]archivedEntry, 0, len(entries)),
	}
	for _, e := range entries {
		doc.Entries = append(doc.Entries, archivedEntry{
			Lat:        e.Point().Lat(),
			Long:       e.Point().Long(),
			RecordedAt: e.RecordedAt().UTC(),
		})
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	key := a.objectKey(orderID)
	if _, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return "", fmt.Errorf("unable to upload tracking of order %s: %w", orderID, err)
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
