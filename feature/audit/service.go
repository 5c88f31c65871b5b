package audit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"audit-manager/core/storage"
	"audit-manager/core/table"
	"audit-manager/feature/audit/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Upload roles, used as table names in validation errors and as
// multipart form field names.
const (
	RoleStock      = "stock"
	RoleOldBarcode = "barcode"
	RoleLabel      = "label"
)

// Service runs the audit pipeline: parse the three spreadsheets, validate
// each, reconcile, and keep the result downloadable for the session TTL.
type Service struct {
	cfg      Config
	logger   *zap.Logger
	sessions *SessionStore
	client   storage.Client
	bucket   string
}

// NewService creates an audit service. client may be nil, which disables
// report archiving.
func NewService(cfg Config, logger *zap.Logger, sessions *SessionStore, client storage.Client, bucket string) *Service {
	return &Service{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		client:   client,
		bucket:   bucket,
	}
}

// Sessions exposes the session store to the HTTP handler.
func (s *Service) Sessions() *SessionStore {
	return s.sessions
}

// Process runs validate → reconcile over the three uploads and returns the
// result set. Validation failures surface as the typed errors from
// errors.go; no partial output is produced.
func (s *Service) Process(stock, barcode, label io.Reader) (*models.ResultSet, error) {
	stockTbl, err := s.readTable(stock, RoleStock)
	if err != nil {
		return nil, err
	}
	barcodeTbl, err := s.readTable(barcode, RoleOldBarcode)
	if err != nil {
		return nil, err
	}
	labelTbl, err := s.readTable(label, RoleLabel)
	if err != nil {
		return nil, err
	}

	v := NewValidator(s.cfg)
	if err := v.ValidateStock(stockTbl); err != nil {
		return nil, err
	}
	if err := v.ValidateScan(barcodeTbl); err != nil {
		return nil, err
	}
	if err := v.ValidateScan(labelTbl); err != nil {
		return nil, err
	}

	stockItems := StockItems(stockTbl, s.cfg)
	scans := ScanRecords(barcodeTbl, s.cfg, models.SourceOldBarcode)
	scans = append(scans, ScanRecords(labelTbl, s.cfg, models.SourceLabelNumber)...)

	result := Reconcile(stockItems, scans)
	s.logger.Info("Audit processed",
		zap.Int("total_stock", result.Summary.TotalStock),
		zap.Int("total_scanned", result.Summary.TotalScanned),
		zap.Int("found", result.Summary.Found),
		zap.Int("missing", result.Summary.Missing),
		zap.Int("duplicates", result.Summary.Duplicates),
	)
	return result, nil
}

// Run processes the uploads and stores the result in a session. When
// archiving is enabled the reports are also mirrored to object storage;
// archive failures are logged and never fail the audit.
func (s *Service) Run(ctx context.Context, stock, barcode, label io.Reader) (*Session, error) {
	result, err := s.Process(stock, barcode, label)
	if err != nil {
		return nil, err
	}

	sess := s.sessions.Put(result)
	if s.client != nil {
		if err := s.archive(ctx, sess); err != nil {
			s.logger.Warn("Report archiving failed",
				zap.String("session_id", sess.ID), zap.Error(err))
		}
	}
	return sess, nil
}

// Discard drops a session and, when archiving is enabled, removes its
// archived reports from object storage. Storage failures are logged only;
// the session itself is always gone afterwards.
func (s *Service) Discard(ctx context.Context, id string) {
	s.sessions.Delete(id)
	if s.client == nil {
		return
	}

	prefix := fmt.Sprintf("audits/%s/", id)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			s.logger.Warn("Listing archived reports failed",
				zap.String("session_id", id), zap.Error(obj.Err))
			return
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			s.logger.Warn("Removing archived report failed",
				zap.String("object", obj.Key), zap.Error(err))
		}
	}
}

// readTable parses one upload, mapping parse failures onto the error
// taxonomy: no cells at all is an empty file, anything else unreadable.
func (s *Service) readTable(r io.Reader, role string) (*table.Table, error) {
	t, err := table.ReadXLSX(r, role)
	if err != nil {
		if errors.Is(err, table.ErrNoContent) {
			return nil, &EmptyFileError{File: role}
		}
		return nil, &UnreadableFileError{File: role, Err: err}
	}
	return t, nil
}

// archive mirrors the three reports as CSV under audits/<session id>/.
func (s *Service) archive(ctx context.Context, sess *Session) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("creating bucket %q: %w", s.bucket, err)
		}
	}

	for _, name := range []string{models.ReportFound, models.ReportMissing, models.ReportDuplicates} {
		report, _ := sess.Result.Report(name)

		var buf bytes.Buffer
		if err := report.WriteCSV(&buf); err != nil {
			return fmt.Errorf("encoding %s report: %w", name, err)
		}

		object := fmt.Sprintf("audits/%s/%s.csv", sess.ID, name)
		_, err := s.client.PutObject(ctx, s.bucket, object,
			bytes.NewReader(buf.Bytes()), int64(buf.Len()),
			minio.PutObjectOptions{ContentType: "text/csv"})
		if err != nil {
			return fmt.Errorf("uploading %s: %w", object, err)
		}
	}

	s.logger.Info("Reports archived",
		zap.String("session_id", sess.ID), zap.String("bucket", s.bucket))
	return nil
}
