// Package export renders search results as spreadsheet files.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"station-search-service/internal/domain"
)

const sheetName = "Stations"

// WriteStations streams the ranked station list into an xlsx workbook.
func WriteStations(w io.Writer, stations []domain.Station) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("write stations: create sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("write stations: stream writer: %w", err)
	}

	headers := []interface{}{
		"충전소 ID", "이름", "주소", "충전기 타입", "운영시간",
		"거리(km)", "상태", "운영기관",
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("write stations: header row: %w", err)
	}

	for i, s := range stations {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)

		types := ""
		for j, t := range s.ChargerTypes {
			if j > 0 {
				types += ", "
			}
			types += t
		}

		row := []interface{}{
			s.ID, s.Name, s.Address, types, s.OperatingHours,
			s.DistanceKm, s.Status, s.OperatorName,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write stations: row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("write stations: flush: %w", err)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write stations: write workbook: %w", err)
	}

	return nil
}
