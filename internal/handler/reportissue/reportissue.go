// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package reportissue

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/bugunapp/bugun-server/internal/bugundb"
	"github.com/bugunapp/bugun-server/internal/device"
)

type ReportIssueInput struct {
	Body struct {
		Description string `json:"description" minLength:"1" maxLength:"2000" doc:"Problem description"`
		Email       string `json:"email,omitempty" format:"email" doc:"Optional reply address"`
	}
}

type ReportIssueResponse struct {
	ID string `json:"id" doc:"Report ID"`
}

type ReportIssueOutput struct {
	Body ReportIssueResponse
}

func NewHandler(store *firestore.Client) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store *firestore.Client
}

// ReportIssue stores a user problem report. Reports used to be mailed by
// a side server; keeping them in the store lets support read them in one
// place.
func (h *Handler) ReportIssue(ctx context.Context, req *ReportIssueInput) (*ReportIssueOutput, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("reportissue: generating report id: %w", err)
	}

	report := bugundb.IssueReport{
		ID:          id,
		Description: req.Body.Description,
		Email:       req.Body.Email,
		DeviceID:    device.FromContext(ctx),
		CreatedAt:   time.Now(),
	}
	if _, err := h.store.Collection(bugundb.CollectionIssues).Doc(id).Set(ctx, report); err != nil {
		return nil, fmt.Errorf("reportissue: saving report: %w", err)
	}
	return &ReportIssueOutput{Body: ReportIssueResponse{ID: id}}, nil
}
