// Package report builds downloadable workbook exports of stored analytics.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/TheTestGit/LinkedInPro/internal/models"
)

const analyticsSheet = "Analytics"

// Service renders analytics history into Excel workbooks
type Service struct{}

// NewService creates a report service
func NewService() *Service {
	return &Service{}
}

// AnalyticsWorkbook builds an .xlsx workbook of the user's analytics history,
// oldest day first, and returns it as an in-memory buffer ready to stream.
func (s *Service) AnalyticsWorkbook(user *models.User, rows []models.Analytics) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", analyticsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	header := []interface{}{
		"Date", "Connections Sent", "Connections Accepted", "Messages Sent",
		"Content Shared", "Likes Given", "Comments Given",
	}
	if err := f.SetSheetRow(analyticsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	// Rows arrive date-descending from storage; write them oldest first so
	// the sheet reads chronologically.
	line := 2
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		cell := fmt.Sprintf("A%d", line)
		values := []interface{}{
			row.Date, row.ConnectionsSent, row.ConnectionsAccepted,
			row.MessagesSent, row.ContentShared, row.LikesGiven, row.CommentsGiven,
		}
		if err := f.SetSheetRow(analyticsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", line, err)
		}
		line++
	}

	// A totals line and a title cell make the sheet usable standalone.
	totalCell := fmt.Sprintf("A%d", line+1)
	totals := []interface{}{"Total"}
	var sent, accepted, messages, shared, likes, comments int
	for _, row := range rows {
		sent += row.ConnectionsSent
		accepted += row.ConnectionsAccepted
		messages += row.MessagesSent
		shared += row.ContentShared
		likes += row.LikesGiven
		comments += row.CommentsGiven
	}
	totals = append(totals, sent, accepted, messages, shared, likes, comments)
	if err := f.SetSheetRow(analyticsSheet, totalCell, &totals); err != nil {
		return nil, fmt.Errorf("failed to write totals: %w", err)
	}

	props := &excelize.DocProperties{
		Title:   fmt.Sprintf("Analytics export for %s", user.Name),
		Creator: "LinkedInPro",
	}
	if err := f.SetDocProps(props); err != nil {
		return nil, fmt.Errorf("failed to set workbook properties: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}
