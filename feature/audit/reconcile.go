package audit

import (
	"sort"
	"strings"

	"audit-manager/core/table"
	"audit-manager/core/utils"
	"audit-manager/feature/audit/models"
)

// Normalize maps an identifier to its comparison form: trimmed and
// uppercased. Applied uniformly to stock and scan identifiers so that
// formatting drift between the ERP and the scanners cannot produce false
// "missing" classifications. Raw identifiers are kept for display.
func Normalize(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// StockItems extracts stock rows from a validated stock table.
func StockItems(t *table.Table, cfg Config) []models.StockItem {
	idIdx := t.ColumnIndex(cfg.IdentifierColumn)
	qtyIdx := t.ColumnIndex(cfg.QuantityColumn)
	descIdx := t.ColumnIndex(cfg.DescriptionColumn)

	items := make([]models.StockItem, 0, t.Len())
	for _, row := range t.Rows {
		raw := strings.TrimSpace(table.Cell(row, idIdx))
		items = append(items, models.StockItem{
			Identifier:  raw,
			Normalized:  Normalize(raw),
			Description: table.Cell(row, descIdx),
			ExpectedQty: utils.ToInt(table.Cell(row, qtyIdx)),
		})
	}
	return items
}

// ScanRecords extracts scan rows from a validated scan table, tagging each
// with its source report. When the table carries the status column, only
// rows marked as found count as scans.
func ScanRecords(t *table.Table, cfg Config, source models.ScanSource) []models.ScanRecord {
	idIdx := t.ColumnIndex(cfg.IdentifierColumn)
	statusIdx := t.ColumnIndex(cfg.StatusColumn)

	v := NewValidator(cfg)
	records := make([]models.ScanRecord, 0, t.Len())
	for _, row := range t.Rows {
		if !v.statusCounts(row, statusIdx) {
			continue
		}
		raw := strings.TrimSpace(table.Cell(row, idIdx))
		records = append(records, models.ScanRecord{
			Identifier: raw,
			Normalized: Normalize(raw),
			Source:     source,
		})
	}
	return records
}

// scanGroup accumulates all scans of one normalized identifier.
type scanGroup struct {
	count   int
	sources map[models.ScanSource]struct{}
}

// Reconcile classifies every stock item as found or missing against the
// union of both scan reports, and flags identifiers scanned more than once
// as duplicates. Input is assumed validated; there is no error path.
func Reconcile(stock []models.StockItem, scans []models.ScanRecord) *models.ResultSet {
	groups := make(map[string]*scanGroup)
	for _, scan := range scans {
		g, ok := groups[scan.Normalized]
		if !ok {
			g = &scanGroup{sources: make(map[models.ScanSource]struct{})}
			groups[scan.Normalized] = g
		}
		g.count++
		g.sources[scan.Source] = struct{}{}
	}

	result := &models.ResultSet{
		Found:      []models.FoundItem{},
		Missing:    []models.MissingItem{},
		Duplicates: []models.DuplicateScan{},
	}

	for _, item := range stock {
		g, scanned := groups[item.Normalized]
		if scanned {
			result.Found = append(result.Found, models.FoundItem{
				Identifier:  item.Identifier,
				Description: item.Description,
				ExpectedQty: item.ExpectedQty,
				ScanCount:   g.count,
				Sources:     sourceList(g.sources),
			})
		} else {
			result.Missing = append(result.Missing, models.MissingItem{
				Identifier:  item.Identifier,
				Description: item.Description,
				ExpectedQty: item.ExpectedQty,
			})
		}
	}

	// Duplicates are keyed on scans alone: an identifier scanned twice is
	// flagged even when the ERP does not know it.
	duplicateIDs := make([]string, 0)
	for id, g := range groups {
		if g.count > 1 {
			duplicateIDs = append(duplicateIDs, id)
		}
	}
	sort.Strings(duplicateIDs)
	for _, id := range duplicateIDs {
		g := groups[id]
		result.Duplicates = append(result.Duplicates, models.DuplicateScan{
			Identifier: id,
			Count:      g.count,
			Sources:    sourceList(g.sources),
		})
	}

	// Deterministic report order
	sort.Slice(result.Found, func(i, j int) bool {
		return result.Found[i].Identifier < result.Found[j].Identifier
	})
	sort.Slice(result.Missing, func(i, j int) bool {
		return result.Missing[i].Identifier < result.Missing[j].Identifier
	})

	result.Summary = summarize(len(stock), len(scans), result)
	return result
}

func summarize(totalStock, totalScanned int, r *models.ResultSet) models.Summary {
	s := models.Summary{
		TotalStock:   totalStock,
		TotalScanned: totalScanned,
		Found:        len(r.Found),
		Missing:      len(r.Missing),
		Duplicates:   len(r.Duplicates),
	}
	if totalStock > 0 {
		s.FoundPercentage = float64(s.Found) / float64(totalStock) * 100
	}
	return s
}

// sourceList returns the contributing sources in a stable order.
func sourceList(set map[models.ScanSource]struct{}) []models.ScanSource {
	out := make([]models.ScanSource, 0, len(set))
	if _, ok := set[models.SourceOldBarcode]; ok {
		out = append(out, models.SourceOldBarcode)
	}
	if _, ok := set[models.SourceLabelNumber]; ok {
		out = append(out, models.SourceLabelNumber)
	}
	return out
}
