package audit_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"audit-manager/core/storage/mocks"
	"audit-manager/feature/audit"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(client *mocks.Client) *audit.Service {
	sessions := audit.NewSessionStore(time.Minute)
	if client == nil {
		return audit.NewService(testConfig(), zap.NewNop(), sessions, nil, "")
	}
	return audit.NewService(testConfig(), zap.NewNop(), sessions, client, "audit-bucket")
}

func TestService_Process(t *testing.T) {
	svc := newTestService(nil)

	stock := stockXLSX(t,
		[]any{"A1", "Gold Ring", 10},
		[]any{"A2", "Silver Chain", 5},
	)
	barcode := scanXLSX(t, []any{"Found", "A1"})
	label := scanXLSX(t, []any{"Found", "A1"}, []any{"Found", "A1"})

	result, err := svc.Process(bytes.NewReader(stock), bytes.NewReader(barcode), bytes.NewReader(label))
	require.NoError(t, err)

	require.Len(t, result.Found, 1)
	assert.Equal(t, "A1", result.Found[0].Identifier)
	assert.Equal(t, "Gold Ring", result.Found[0].Description)
	assert.Equal(t, 10, result.Found[0].ExpectedQty)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "A2", result.Missing[0].Identifier)
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, 3, result.Duplicates[0].Count)
}

func TestService_Process_EmptyScansMeanAllMissing(t *testing.T) {
	svc := newTestService(nil)

	stock := stockXLSX(t, []any{"A1", "Gold Ring", 10})
	barcode := scanXLSX(t)
	label := scanXLSX(t)

	result, err := svc.Process(bytes.NewReader(stock), bytes.NewReader(barcode), bytes.NewReader(label))
	require.NoError(t, err)

	assert.Empty(t, result.Found)
	assert.Len(t, result.Missing, 1)
	assert.Empty(t, result.Duplicates)
}

func TestService_Process_UnreadableFile(t *testing.T) {
	svc := newTestService(nil)

	stock := strings.NewReader("not a workbook")
	barcode := bytes.NewReader(scanXLSX(t))
	label := bytes.NewReader(scanXLSX(t))

	_, err := svc.Process(stock, barcode, label)

	var unreadable *audit.UnreadableFileError
	require.ErrorAs(t, err, &unreadable)
	assert.Equal(t, audit.RoleStock, unreadable.File)
}

func TestService_Process_EmptyWorkbook(t *testing.T) {
	svc := newTestService(nil)

	stock := bytes.NewReader(stockXLSX(t, []any{"A1", "x", 1}))
	barcode := bytes.NewReader(buildXLSX(t, nil))
	label := bytes.NewReader(scanXLSX(t))

	_, err := svc.Process(stock, barcode, label)

	var empty *audit.EmptyFileError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, audit.RoleOldBarcode, empty.File)
}

func TestService_Process_StockMissingColumn(t *testing.T) {
	svc := newTestService(nil)

	stock := buildXLSX(t, [][]any{
		{"Label No", "Item Name"},
		{"A1", "Gold Ring"},
	})
	barcode := bytes.NewReader(scanXLSX(t))
	label := bytes.NewReader(scanXLSX(t))

	_, err := svc.Process(bytes.NewReader(stock), barcode, label)

	var missing *audit.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Pcs", missing.Column)
}

func TestService_Run_Archives(t *testing.T) {
	client := new(mocks.Client)
	svc := newTestService(client)

	client.On("BucketExists", mock.Anything, "audit-bucket").Return(true, nil)
	client.On("PutObject", mock.Anything, "audit-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Times(3)

	stock := bytes.NewReader(stockXLSX(t, []any{"A1", "Gold Ring", 10}))
	barcode := bytes.NewReader(scanXLSX(t, []any{"Found", "A1"}))
	label := bytes.NewReader(scanXLSX(t))

	sess, err := svc.Run(context.Background(), stock, barcode, label)
	require.NoError(t, err)
	require.NotNil(t, sess)

	client.AssertExpectations(t)
}

func TestService_Run_CreatesMissingBucket(t *testing.T) {
	client := new(mocks.Client)
	svc := newTestService(client)

	client.On("BucketExists", mock.Anything, "audit-bucket").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "audit-bucket", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "audit-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Times(3)

	stock := bytes.NewReader(stockXLSX(t, []any{"A1", "Gold Ring", 10}))
	barcode := bytes.NewReader(scanXLSX(t))
	label := bytes.NewReader(scanXLSX(t))

	_, err := svc.Run(context.Background(), stock, barcode, label)
	require.NoError(t, err)
	client.AssertExpectations(t)
}

// An archive failure is logged, not surfaced: the audit itself succeeded.
func TestService_Run_ArchiveFailureIsNotFatal(t *testing.T) {
	client := new(mocks.Client)
	svc := newTestService(client)

	client.On("BucketExists", mock.Anything, "audit-bucket").Return(false, assert.AnError)

	stock := bytes.NewReader(stockXLSX(t, []any{"A1", "Gold Ring", 10}))
	barcode := bytes.NewReader(scanXLSX(t))
	label := bytes.NewReader(scanXLSX(t))

	sess, err := svc.Run(context.Background(), stock, barcode, label)
	require.NoError(t, err)
	assert.NotNil(t, sess)
}

func TestService_Discard_RemovesArchivedReports(t *testing.T) {
	client := new(mocks.Client)
	svc := newTestService(client)

	client.On("BucketExists", mock.Anything, "audit-bucket").Return(true, nil)
	client.On("PutObject", mock.Anything, "audit-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Times(3)

	stock := bytes.NewReader(stockXLSX(t, []any{"A1", "Gold Ring", 10}))
	barcode := bytes.NewReader(scanXLSX(t, []any{"Found", "A1"}))
	label := bytes.NewReader(scanXLSX(t))

	sess, err := svc.Run(context.Background(), stock, barcode, label)
	require.NoError(t, err)

	objects := make(chan minio.ObjectInfo, 1)
	objects <- minio.ObjectInfo{Key: "audits/" + sess.ID + "/found.csv"}
	close(objects)

	client.On("ListObjects", mock.Anything, "audit-bucket", mock.Anything).
		Return((<-chan minio.ObjectInfo)(objects))
	client.On("RemoveObject", mock.Anything, "audit-bucket", "audits/"+sess.ID+"/found.csv", mock.Anything).
		Return(nil)

	svc.Discard(context.Background(), sess.ID)

	_, ok := svc.Sessions().Get(sess.ID)
	assert.False(t, ok)
	client.AssertExpectations(t)
}

func TestService_Run_NoArchiverConfigured(t *testing.T) {
	svc := newTestService(nil)

	stock := bytes.NewReader(stockXLSX(t, []any{"A1", "Gold Ring", 10}))
	barcode := bytes.NewReader(scanXLSX(t))
	label := bytes.NewReader(scanXLSX(t))

	sess, err := svc.Run(context.Background(), stock, barcode, label)
	require.NoError(t, err)

	got, ok := svc.Sessions().Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.Result.Summary.Missing)
}
