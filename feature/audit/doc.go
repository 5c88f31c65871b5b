// Package audit implements the inventory reconciliation pipeline.
//
// One audit session takes three spreadsheet uploads (the ERP stock export
// and two scanner reports keyed by competing barcode schemes), validates
// them, merges the scans, and classifies every stock item as found or
// missing. Identifiers scanned more than once across either report are
// flagged as duplicates on top of that partition.
//
// # Pipeline
//
// validate → normalize → set-compare → group. Identifiers are normalized
// (trim + uppercase) before any matching so formatting drift between the
// ERP and the scanners cannot misclassify items. The Reconciler consumes
// already-validated tables and has no error path of its own.
//
// # HTTP Endpoints
//
//   - POST   /audit                      : upload all three files, run the audit.
//   - GET    /audit/{id}                 : summary + duplicates for a session.
//   - GET    /audit/{id}/reports/{name}  : download found/missing/duplicates (csv or xlsx).
//   - DELETE /audit/{id}                 : discard a session early.
//
// Results are request-scoped: they live in an in-memory TTL session store
// and are never persisted. When object storage is configured, finished
// report sets are additionally mirrored to the bucket as CSV.
package audit
