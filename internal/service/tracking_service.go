package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"mis/internal/model"
	"mis/internal/repository"
	"mis/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

// hierarchyParams are the only filters a bulk tracking-sheet delete honours
var hierarchyParams = []string{"outputId", "activityId", "subActivityId"}

var exportHeaders = []string{
	"Sub-Sub-Activity ID", "Sub-Activity ID", "Description", "Indicator", "Unit",
	"Target", "Achieved", "Budget", "Expenditure", "Province", "District",
	"Start Date", "End Date", "Status", "Remarks",
}

// TrackingService covers the four levels of the tracking sheet
type TrackingService struct {
	Outputs       *Resource[model.TrackingOutput]
	Activities    *Resource[model.TrackingActivity]
	SubActivities *Resource[model.TrackingSubActivity]
	Rows          *Resource[model.TrackingRow]
}

func NewTrackingService(tables *repository.Tables, audit AuditService) *TrackingService {
	return &TrackingService{
		Outputs:       NewResource(tables.Outputs, audit),
		Activities:    NewResource(tables.Activities, audit),
		SubActivities: NewResource(tables.SubActivities, audit),
		Rows:          NewResource(tables.TrackingRows, audit),
	}
}

// UpdateRow takes the row id from the body, as the sheet editor posts whole rows
func (s *TrackingService) UpdateRow(ctx context.Context, actor string, fields repository.Fields) error {
	return s.Rows.Update(ctx, actor, idOf(fields, "subSubActivityId"), fields)
}

// DeleteRows removes one row by id, or every row under a hierarchy node
func (s *TrackingService) DeleteRows(ctx context.Context, actor string, params repository.Params) (int64, error) {
	if id := params["id"]; id != "" {
		if err := s.Rows.Delete(ctx, actor, id); err != nil {
			return 0, err
		}
		return 1, nil
	}

	scoped := repository.Params{}
	for _, key := range hierarchyParams {
		if v := params[key]; v != "" {
			scoped[key] = v
		}
	}
	if len(scoped) == 0 {
		return 0, apperror.BadRequest("id or one of outputId, activityId, subActivityId is required")
	}
	return s.Rows.DeleteWhere(ctx, actor, scoped)
}

// Export writes the filtered rows as an xlsx workbook
func (s *TrackingService) Export(ctx context.Context, params repository.Params, w io.Writer) error {
	rows, err := s.Rows.List(ctx, params)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Tracking Sheet"
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return apperror.Internal("failed to prepare workbook", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return apperror.Internal("failed to write header", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
		_ = f.SetCellStyle(sheet, "A1", lastCol+"1", style)
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{
			r.SubSubActivityID, r.SubActivityID, r.Description, r.Indicator, r.Unit,
			r.Target, r.Achieved, r.Budget.InexactFloat64(), r.Expenditure.InexactFloat64(),
			r.Province, r.District, formatDate(r.StartDate), formatDate(r.EndDate),
			r.Status, r.Remarks,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return apperror.Internal(fmt.Sprintf("failed to write row %d", i+2), err)
		}
	}

	if err := f.Write(w); err != nil {
		return apperror.Internal("failed to write workbook", err)
	}
	return nil
}

// ExportFileName names the download after the current date
func ExportFileName(now time.Time) string {
	return "tracking-sheet-" + now.Format("2006-01-02") + ".xlsx"
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
