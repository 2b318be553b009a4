package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"kolekta.io/kolekta/ent"
	"kolekta.io/kolekta/internal/feed"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/pkg/logger"
)

// SubmitReportInput represents a resident's issue report.
// FileURLs keep their upload order; the backend treats them as opaque.
type SubmitReportInput struct {
	UserID      string   `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	FileURLs    []string `json:"file_urls"`
}

// SubmitReportUseCase files a resident report. New reports start Pending
// until an official responds.
type SubmitReportUseCase struct {
	entClient *ent.Client
	hub       *feed.Hub
}

// NewSubmitReportUseCase creates a new SubmitReportUseCase.
func NewSubmitReportUseCase(entClient *ent.Client) *SubmitReportUseCase {
	return &SubmitReportUseCase{entClient: entClient}
}

// WithFeed sets the change feed hub (optional dependency).
func (uc *SubmitReportUseCase) WithFeed(hub *feed.Hub) *SubmitReportUseCase {
	uc.hub = hub
	return uc
}

// Execute validates and stores the report.
func (uc *SubmitReportUseCase) Execute(ctx context.Context, input SubmitReportInput) (*ent.Report, error) {
	var fields []apperrors.FieldError
	if strings.TrimSpace(input.UserID) == "" {
		fields = append(fields, apperrors.FieldError{Field: "user_id", Code: "required"})
	}
	if strings.TrimSpace(input.Title) == "" {
		fields = append(fields, apperrors.FieldError{Field: "title", Code: "required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		fields = append(fields, apperrors.FieldError{Field: "description", Code: "required"})
	}
	if len(fields) > 0 {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "report validation failed").
			WithFieldErrors(fields)
	}

	create := uc.entClient.Report.Create().
		SetID(generateID()).
		SetUserID(input.UserID).
		SetTitle(input.Title).
		SetDescription(input.Description)
	if input.Category != "" {
		create.SetCategory(input.Category)
	}
	if input.Location != "" {
		create.SetLocation(input.Location)
	}
	if len(input.FileURLs) > 0 {
		create.SetFileUrls(input.FileURLs)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	if uc.hub != nil {
		uc.hub.Publish(ctx, feed.NewEvent(generateID(), feed.TableReports, feed.OpInsert, row.ID, row))
	}

	logger.Info("Report submitted",
		zap.String("report_id", row.ID),
		zap.String("user_id", row.UserID),
	)

	return row, nil
}
