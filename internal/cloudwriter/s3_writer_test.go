package cloudwriter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3WriterUploadsOnClose(t *testing.T) {
	var (
		gotPath, gotType string
		gotBody          []byte
		calls            int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
		Credentials:  aws.AnonymousCredentials{},
	})
	factory := NewS3WriterFactoryFromClient(client)

	w, err := factory.NewWriter(context.Background(), "reports", "popularity/r1.csv", "text/csv")
	require.NoError(t, err)
	_, err = w.Write([]byte("rank,id\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("1,A\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, calls)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	assert.Equal(t, 1, calls)
	assert.Equal(t, "/reports/popularity/r1.csv", gotPath)
	assert.Equal(t, "text/csv", gotType)
	assert.Equal(t, "rank,id\n1,A\n", string(gotBody))

	_, err = w.Write([]byte("late"))
	assert.ErrorIs(t, err, errWriterClosed)
}

func TestNewWriterRequiresBucket(t *testing.T) {
	factory := NewS3WriterFactoryFromClient(s3.New(s3.Options{Region: "us-east-1"}))

	_, err := factory.NewWriter(context.Background(), "", "key", "")
	assert.Error(t, err)
}

func TestNewFactoryRejectsUnknownProvider(t *testing.T) {
	_, err := NewFactory(context.Background(), "azure", "westeurope")
	assert.Error(t, err)
}
