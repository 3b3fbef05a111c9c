package application

import (
	"fmt"
	"sort"

	"cricstats/internal/models"

	"github.com/xuri/excelize/v2"
)

type OpponentStats struct {
	Name        string
	Matches     int
	Wins        int
	Losses      int
	Draws       int
	Runs        int
	BestRunRate float64
}

// ExcelReport renders the log as a workbook: every parsable match, the
// aggregate figures, and a per-opponent table.
func (s *MatchServiceImpl) ExcelReport() ([]byte, error) {
	lines, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}

	var records []models.MatchRecord
	for i, line := range lines {
		r, err := models.ParseRecord(line)
		if err != nil {
			s.logger.Debug("skipping line %d in report: %v", i+1, err)
			continue
		}
		records = append(records, r)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelMatchesSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeMatchesSheet(f, records); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, ComputeStats(lines)); err != nil {
		return nil, err
	}
	if err := writeOpponentsSheet(f, calculateOpponentStats(records)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %s: %w", h, err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	return f.SetSheetRow(sheet, cell, &values)
}

func writeMatchesSheet(f *excelize.File, records []models.MatchRecord) error {
	sheet := excelMatchesSheet
	headers := []string{"Date", "Opponent", "Runs", "Overs", "Run Rate", "Result", "Player of the Match"}
	if err := writeHeaders(f, sheet, headers); err != nil {
		return err
	}

	row := 2
	for _, r := range records {
		err := writeRow(f, sheet, row,
			r.Timestamp.Format(models.TimestampLayout),
			r.Opponent,
			r.Runs,
			r.Overs,
			fmt.Sprintf("%.2f", RunRate(r.Runs, r.Overs)),
			r.Result.String(),
			r.PlayerOfMatch,
		)
		if err != nil {
			return fmt.Errorf("failed to write match row %d: %w", row, err)
		}
		row++
	}

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "C", "F", 10)
	f.SetColWidth(sheet, "G", "G", 24)
	return nil
}

func writeSummarySheet(f *excelize.File, report *StatsReport) error {
	sheet := excelSummarySheet
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeHeaders(f, sheet, []string{"Metric", "Value"}); err != nil {
		return err
	}

	rows := [][]interface{}{}
	if report.HasBasic {
		rows = append(rows,
			[]interface{}{"Matches", report.Basic.Matches},
			[]interface{}{"Highest Score", report.Basic.HighestScore},
			[]interface{}{"Average Runs", report.Basic.AverageRuns},
			[]interface{}{"Best Run Rate", fmt.Sprintf("%.2f", report.Basic.BestRunRate)},
		)
	}
	if report.HasResults {
		rows = append(rows,
			[]interface{}{"Win Rate %", fmt.Sprintf("%.1f%%", report.Results.WinRate)},
			[]interface{}{"Loss Rate %", fmt.Sprintf("%.1f%%", report.Results.LossRate)},
			[]interface{}{"Draws", report.Results.Draws},
		)
	}
	if len(report.Form) > 0 {
		rows = append(rows, []interface{}{"Recent Form", FormatForm(report.Form)})
	}

	for i, values := range rows {
		if err := writeRow(f, sheet, i+2, values...); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "B", 40)
	return nil
}

func writeOpponentsSheet(f *excelize.File, statsList []*OpponentStats) error {
	sheet := excelOpponentsSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create opponents sheet: %w", err)
	}
	headers := []string{"Rank", "Opponent", "Matches", "Wins", "Losses", "Draws", "WinRate %", "Avg Runs", "Best RR"}
	if err := writeHeaders(f, sheet, headers); err != nil {
		return err
	}

	for i, st := range statsList {
		err := writeRow(f, sheet, i+2,
			i+1,
			st.Name,
			st.Matches,
			st.Wins,
			st.Losses,
			st.Draws,
			fmt.Sprintf("%.1f%%", calculateRate(st.Wins, st.Matches)),
			int(roundTo(float64(st.Runs)/float64(st.Matches), 0)),
			fmt.Sprintf("%.2f", st.BestRunRate),
		)
		if err != nil {
			return fmt.Errorf("failed to write opponent row: %w", err)
		}
	}

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "C", "I", 12)
	return nil
}

func calculateOpponentStats(records []models.MatchRecord) []*OpponentStats {
	statsMap := make(map[string]*OpponentStats)

	for _, r := range records {
		if _, exists := statsMap[r.Opponent]; !exists {
			statsMap[r.Opponent] = &OpponentStats{Name: r.Opponent}
		}

		stat := statsMap[r.Opponent]
		stat.Matches++
		stat.Runs += r.Runs
		if rr := RunRate(r.Runs, r.Overs); rr > stat.BestRunRate {
			stat.BestRunRate = rr
		}

		switch r.Result {
		case models.ResultWin:
			stat.Wins++
		case models.ResultLoss:
			stat.Losses++
		case models.ResultDraw:
			stat.Draws++
		}
	}

	statsList := make([]*OpponentStats, 0, len(statsMap))
	for _, st := range statsMap {
		statsList = append(statsList, st)
	}
	sort.Slice(statsList, func(i, j int) bool {
		return compareOpponentsByPriority(statsList[i], statsList[j])
	})
	return statsList
}
