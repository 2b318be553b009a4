package service

import (
	"context"
	"fmt"

	"kolekta.io/kolekta/ent"
	entfeedback "kolekta.io/kolekta/ent/feedback"
	entreport "kolekta.io/kolekta/ent/report"
	entreportstatus "kolekta.io/kolekta/ent/reportstatus"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
)

// ReportService provides report queries. The denormalized status on the
// reports table is what list views read; the report_status table stays
// the authoritative record and both are written together.
type ReportService struct {
	client *ent.Client
}

// NewReportService creates a new ReportService.
func NewReportService(client *ent.Client) *ReportService {
	return &ReportService{client: client}
}

// GetByID fetches a report by ID.
func (s *ReportService) GetByID(ctx context.Context, id string) (*ent.Report, error) {
	row, err := s.client.Report.Query().Where(entreport.IDEQ(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrReportNotFoundf(id)
		}
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	return row, nil
}

// ListAll returns every report, newest first.
func (s *ReportService) ListAll(ctx context.Context) ([]*ent.Report, error) {
	rows, err := s.client.Report.Query().
		Order(ent.Desc(entreport.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return rows, nil
}

// ListForUser returns one resident's reports, newest first.
func (s *ReportService) ListForUser(ctx context.Context, userID string) ([]*ent.Report, error) {
	rows, err := s.client.Report.Query().
		Where(entreport.UserIDEQ(userID)).
		Order(ent.Desc(entreport.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports for user %s: %w", userID, err)
	}
	return rows, nil
}

// ResolvedForUser returns a resident's resolved reports, the only ones
// eligible for feedback.
func (s *ReportService) ResolvedForUser(ctx context.Context, userID string) ([]*ent.Report, error) {
	rows, err := s.client.Report.Query().
		Where(
			entreport.UserIDEQ(userID),
			entreport.StatusEQ(string(entreportstatus.StatusResolved)),
		).
		Order(ent.Desc(entreport.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resolved reports for user %s: %w", userID, err)
	}
	return rows, nil
}

// FeedbackForResident returns one resident's feedback rows, newest first.
func (s *ReportService) FeedbackForResident(ctx context.Context, residentID string) ([]*ent.Feedback, error) {
	rows, err := s.client.Feedback.Query().
		Where(entfeedback.ResidentIDEQ(residentID)).
		Order(ent.Desc(entfeedback.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback for resident %s: %w", residentID, err)
	}
	return rows, nil
}

// StatusOf returns the authoritative status row for a report, or nil
// when no official has touched it yet.
func (s *ReportService) StatusOf(ctx context.Context, reportID string) (*ent.ReportStatus, error) {
	row, err := s.client.ReportStatus.Query().
		Where(entreportstatus.ReportIDEQ(reportID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status for report %s: %w", reportID, err)
	}
	return row, nil
}
