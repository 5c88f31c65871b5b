package audit

import (
	"errors"
	"mime/multipart"

	"audit-manager/core/logger"
	"audit-manager/feature/audit/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory audits.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Post("/", h.HandleSubmit)
	group.Get("/:id", h.HandleGetSession)
	group.Get("/:id/reports/:name", h.HandleDownloadReport)
	group.Delete("/:id", h.HandleClearSession)
}

// HandleSubmit accepts the three spreadsheets and runs the reconciliation.
// @Summary Submit Audit Files
// @Description Upload the ERP stock export plus both audit scan reports (multipart fields: stock, barcode, label) and run the reconciliation.
// @Tags audit
// @Accept multipart/form-data
// @Produce json
// @Param stock formData file true "ERP stock export (.xlsx)"
// @Param barcode formData file true "Old barcode audit report (.xlsx)"
// @Param label formData file true "Label number audit report (.xlsx)"
// @Success 200 {object} map[string]interface{} "Session ID, summary and duplicate report"
// @Failure 400 {object} map[string]string "Missing, empty or unreadable file"
// @Failure 422 {object} map[string]string "Column validation failure"
// @Router /audit [post]
func (h *Handler) HandleSubmit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	files := make(map[string]multipart.File, 3)
	for _, role := range []string{RoleStock, RoleOldBarcode, RoleLabel} {
		header, err := c.FormFile(role)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "missing upload",
				"file":  role,
			})
		}
		f, err := header.Open()
		if err != nil {
			l.Error("Opening upload failed", zap.String("file", role), zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "could not open upload",
				"file":  role,
			})
		}
		defer f.Close()
		files[role] = f
	}

	sess, err := h.service.Run(c.Context(), files[RoleStock], files[RoleOldBarcode], files[RoleLabel])
	if err != nil {
		l.Warn("Audit rejected", zap.Error(err))
		return h.renderError(c, err)
	}

	l.Info("Audit session created", zap.String("session_id", sess.ID))
	return c.JSON(h.sessionView(sess))
}

// HandleGetSession returns the summary for a finished audit.
// @Summary Get Audit Session
// @Description Get the summary and duplicate report of a finished audit session.
// @Tags audit
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Session summary"
// @Failure 404 {object} map[string]string "Unknown or expired session"
// @Router /audit/{id} [get]
func (h *Handler) HandleGetSession(c *fiber.Ctx) error {
	sess, ok := h.service.Sessions().Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown or expired session",
		})
	}
	return c.JSON(h.sessionView(sess))
}

// HandleDownloadReport streams one report as a downloadable file.
// @Summary Download Audit Report
// @Description Download the found, missing, or duplicates report as CSV (default) or XLSX.
// @Tags audit
// @Produce text/csv
// @Param id path string true "Session ID"
// @Param name path string true "Report name (found, missing, duplicates)"
// @Param format query string false "Export format: csv or xlsx" default(csv)
// @Success 200 {file} file "Report file"
// @Failure 404 {object} map[string]string "Unknown session or report"
// @Router /audit/{id}/reports/{name} [get]
func (h *Handler) HandleDownloadReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sess, ok := h.service.Sessions().Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown or expired session",
		})
	}

	name := c.Params("name")
	report, ok := sess.Result.Report(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown report",
			"name":  name,
		})
	}

	filename, contentType := exportNames(name, c.Query("format", "csv"))
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)

	var err error
	if c.Query("format", "csv") == "xlsx" {
		err = report.WriteXLSX(c.Response().BodyWriter())
	} else {
		err = report.WriteCSV(c.Response().BodyWriter())
	}
	if err != nil {
		l.Error("Report export failed", zap.String("report", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return nil
}

// HandleClearSession discards a session before its TTL runs out.
// @Summary Clear Audit Session
// @Description Discard a finished audit session, its reports, and any archived copies.
// @Tags audit
// @Param id path string true "Session ID"
// @Success 204 "Session discarded"
// @Router /audit/{id} [delete]
func (h *Handler) HandleClearSession(c *fiber.Ctx) error {
	h.service.Discard(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// sessionView is the JSON shape shared by submit and get. The found and
// missing reports can be large, so they are download-only; duplicates are
// inlined because they demand immediate attention.
func (h *Handler) sessionView(sess *Session) fiber.Map {
	return fiber.Map{
		"session_id": sess.ID,
		"created_at": sess.CreatedAt,
		"expires_at": h.service.Sessions().ExpiresAt(sess),
		"summary":    sess.Result.Summary,
		"duplicates": sess.Result.Duplicates,
	}
}

// renderError maps the validation taxonomy onto HTTP statuses: column
// failures are 422 (well-formed file, wrong shape), empty or unreadable
// files are 400.
func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	var missingCol *MissingColumnError
	if errors.As(err, &missingCol) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  err.Error(),
			"type":   "missing_column",
			"file":   missingCol.File,
			"column": missingCol.Column,
		})
	}
	var invalidCol *InvalidColumnError
	if errors.As(err, &invalidCol) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  err.Error(),
			"type":   "invalid_column",
			"file":   invalidCol.File,
			"column": invalidCol.Column,
		})
	}
	var empty *EmptyFileError
	if errors.As(err, &empty) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"type":  "empty_file",
			"file":  empty.File,
		})
	}
	var unreadable *UnreadableFileError
	if errors.As(err, &unreadable) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"type":  "unreadable_file",
			"file":  unreadable.File,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// exportNames maps a report and format to its download filename and mime type.
func exportNames(name, format string) (string, string) {
	base := map[string]string{
		models.ReportFound:      "found_items_report",
		models.ReportMissing:    "missing_items_report",
		models.ReportDuplicates: "duplicate_items_report",
	}[name]

	if format == "xlsx" {
		return base + ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return base + ".csv", "text/csv"
}
