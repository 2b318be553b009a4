package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"kolekta.io/kolekta/ent"
	entfeedback "kolekta.io/kolekta/ent/feedback"
	entreport "kolekta.io/kolekta/ent/report"
	entreportstatus "kolekta.io/kolekta/ent/reportstatus"
	"kolekta.io/kolekta/internal/feed"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/pkg/logger"
)

// SubmitFeedbackInput represents a resident's rating of a resolved report.
type SubmitFeedbackInput struct {
	ReportID   string
	ResidentID string
	Rating     int
	Comment    string
}

// SubmitFeedbackUseCase stores a resident's rating for a resolved report.
// Each resident gets one row per report; submitting again replaces the
// earlier rating.
type SubmitFeedbackUseCase struct {
	entClient *ent.Client
	hub       *feed.Hub
}

// NewSubmitFeedbackUseCase creates a new SubmitFeedbackUseCase.
func NewSubmitFeedbackUseCase(entClient *ent.Client) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{entClient: entClient}
}

// WithFeed sets the change feed hub (optional dependency).
func (uc *SubmitFeedbackUseCase) WithFeed(hub *feed.Hub) *SubmitFeedbackUseCase {
	uc.hub = hub
	return uc
}

// Execute validates and upserts the feedback.
func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, input SubmitFeedbackInput) (*ent.Feedback, error) {
	var fields []apperrors.FieldError
	if strings.TrimSpace(input.ReportID) == "" {
		fields = append(fields, apperrors.FieldError{Field: "report_id", Code: "required"})
	}
	if strings.TrimSpace(input.ResidentID) == "" {
		fields = append(fields, apperrors.FieldError{Field: "resident_id", Code: "required"})
	}
	if input.Rating < 1 || input.Rating > 5 {
		fields = append(fields, apperrors.FieldError{Field: "rating", Code: "out_of_range"})
	}
	if len(fields) > 0 {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "feedback validation failed").
			WithFieldErrors(fields)
	}

	report, err := uc.entClient.Report.Query().
		Where(entreport.IDEQ(input.ReportID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrReportNotFoundf(input.ReportID)
		}
		return nil, fmt.Errorf("load report %s: %w", input.ReportID, err)
	}

	// Only resolved reports accept feedback.
	if report.Status != string(entreportstatus.StatusResolved) {
		return nil, &apperrors.AppError{
			Code:       apperrors.CodeFeedbackNotResolved,
			Message:    "feedback is only accepted on resolved reports",
			HTTPStatus: http.StatusConflict,
			Params:     map[string]interface{}{"report_id": input.ReportID},
		}
	}

	create := uc.entClient.Feedback.Create().
		SetID(generateID()).
		SetReportID(input.ReportID).
		SetResidentID(input.ResidentID).
		SetRating(input.Rating)
	if input.Comment != "" {
		create.SetComment(input.Comment)
	}
	err = create.
		OnConflictColumns(entfeedback.FieldReportID, entfeedback.FieldResidentID).
		Update(func(u *ent.FeedbackUpsert) {
			u.SetRating(input.Rating)
			u.SetComment(input.Comment)
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert feedback: %w", err)
	}

	row, err := uc.entClient.Feedback.Query().
		Where(
			entfeedback.ReportIDEQ(input.ReportID),
			entfeedback.ResidentIDEQ(input.ResidentID),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feedback after upsert: %w", err)
	}

	if uc.hub != nil {
		uc.hub.Publish(ctx, feed.NewEvent(generateID(), feed.TableFeedback, feed.OpInsert, row.ID, row))
	}

	logger.Info("Feedback submitted",
		zap.String("report_id", row.ReportID),
		zap.String("resident_id", row.ResidentID),
		zap.Int("rating", row.Rating),
	)

	return row, nil
}
