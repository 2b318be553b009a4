package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"kolekta.io/kolekta/ent"
	enteducation "kolekta.io/kolekta/ent/educationalcontent"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
)

// EducationService manages waste-segregation guides and announcements.
type EducationService struct {
	client *ent.Client
}

// NewEducationService creates a new EducationService.
func NewEducationService(client *ent.Client) *EducationService {
	return &EducationService{client: client}
}

// CreateContentInput represents the input for publishing content.
type CreateContentInput struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// Create publishes a new content entry.
func (s *EducationService) Create(ctx context.Context, in CreateContentInput) (*ent.EducationalContent, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Body) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "title and body are required")
	}

	row, err := s.client.EducationalContent.Create().
		SetID(uuid.NewString()).
		SetTitle(in.Title).
		SetBody(in.Body).
		SetCategory(in.Category).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create educational content: %w", err)
	}
	return row, nil
}

// ListPublished returns published content, newest first.
func (s *EducationService) ListPublished(ctx context.Context) ([]*ent.EducationalContent, error) {
	rows, err := s.client.EducationalContent.Query().
		Where(enteducation.PublishedEQ(true)).
		Order(ent.Desc(enteducation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list educational content: %w", err)
	}
	return rows, nil
}

// SetPublished toggles content visibility.
func (s *EducationService) SetPublished(ctx context.Context, id string, published bool) (*ent.EducationalContent, error) {
	row, err := s.client.EducationalContent.UpdateOneID(id).
		SetPublished(published).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeContentNotFound, "content not found")
		}
		return nil, fmt.Errorf("update educational content %s: %w", id, err)
	}
	return row, nil
}
