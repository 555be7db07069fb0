package archive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/astro-atlas/pkg/models/api"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.PutObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func sampleReport() domain.Report {
	return domain.Report{
		ID:          "r-123",
		Title:       "Chinese Astrology",
		Tradition:   domain.TraditionChinese,
		GeneratedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Sections:    []domain.ReportSection{{Title: "Four Pillars", Body: "text"}},
	}
}

func TestNewS3Archiver_Validation(t *testing.T) {
	_, err := NewS3Archiver(nil, "bucket", "")
	assert.Error(t, err)

	_, err = NewS3Archiver(new(mockS3), "", "")
	assert.Error(t, err)
}

func TestArchive_UploadsJSON(t *testing.T) {
	client := new(mockS3)
	a, err := NewS3Archiver(client, "astro-reports", "natal")
	require.NoError(t, err)

	var uploaded api.Report
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "astro-reports" &&
			aws.ToString(in.Key) == "natal/chinese/r-123.json" &&
			aws.ToString(in.ContentType) == "application/json"
	})).Run(func(args mock.Arguments) {
		in := args.Get(1).(*s3.PutObjectInput)
		raw, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &uploaded))
	}).Return(&s3.PutObjectOutput{}, nil)

	uri, err := a.Archive(context.Background(), sampleReport())
	require.NoError(t, err)

	assert.Equal(t, "s3://astro-reports/natal/chinese/r-123.json", uri)
	assert.Equal(t, "r-123", uploaded.ID)
	assert.Equal(t, "chinese", uploaded.Tradition)
	require.Len(t, uploaded.Sections, 1)
	client.AssertExpectations(t)
}

func TestArchive_NoPrefix(t *testing.T) {
	client := new(mockS3)
	a, err := NewS3Archiver(client, "b", "")
	require.NoError(t, err)

	client.On("PutObject", mock.Anything, mock.Anything).Return(&s3.PutObjectOutput{}, nil)

	uri, err := a.Archive(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.Equal(t, "s3://b/chinese/r-123.json", uri)
}

func TestArchive_Errors(t *testing.T) {
	client := new(mockS3)
	a, err := NewS3Archiver(client, "b", "p")
	require.NoError(t, err)

	_, err = a.Archive(context.Background(), domain.Report{})
	assert.Error(t, err)

	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))
	_, err = a.Archive(context.Background(), sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
