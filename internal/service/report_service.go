package service

import (
	"bytes"
	"fmt"
	"math_practice_backend/internal/model"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ReportConfig struct {
	PageSize   string
	MarginsMM  float64
	FontFamily string
}

// ReportService 把练习统计渲染成可打印的 PDF
type ReportService struct {
	cfg ReportConfig
	Now func() time.Time
}

func NewReportService(cfg ReportConfig) *ReportService {
	if cfg.PageSize == "" {
		cfg.PageSize = "A4"
	}
	if cfg.MarginsMM <= 0 {
		cfg.MarginsMM = 15
	}
	if cfg.FontFamily == "" {
		cfg.FontFamily = "Helvetica"
	}
	return &ReportService{
		cfg: cfg,
		Now: time.Now,
	}
}

func (s *ReportService) Render(stats model.DashboardStats) ([]byte, error) {
	// Caser 有状态，每次渲染单独创建
	title := cases.Title(language.English)

	pdf := fpdf.New("P", "mm", s.cfg.PageSize, "")
	pdf.SetMargins(s.cfg.MarginsMM, s.cfg.MarginsMM, s.cfg.MarginsMM)
	pdf.SetTitle("Math Practice Progress Report", false)
	pdf.AddPage()

	// ---------- title ----------
	pdf.SetFont(s.cfg.FontFamily, "B", 20)
	pdf.CellFormat(0, 12, "Math Practice Progress Report", "", 1, "C", false, 0, "")
	pdf.SetFont(s.cfg.FontFamily, "", 10)
	pdf.CellFormat(0, 6, s.Now().Format("2 January 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// ---------- summary ----------
	pdf.SetFont(s.cfg.FontFamily, "", 12)
	pdf.MultiCell(0, 7, fmt.Sprintf("Problems solved: %d   Correct: %d   Accuracy: %d%%",
		stats.TotalProblems, stats.CorrectAnswers, stats.Accuracy), "", "L", false)
	pdf.MultiCell(0, 7, fmt.Sprintf("Current streak: %d   Best streak: %d",
		stats.Streak, stats.BestStreak), "", "L", false)
	pdf.Ln(4)

	// ---------- breakdowns ----------
	s.breakdownTable(pdf, title, "By difficulty", []breakdownRow{
		{string(model.DifficultyEasy), stats.DifficultyBreakdown.Easy},
		{string(model.DifficultyMedium), stats.DifficultyBreakdown.Medium},
		{string(model.DifficultyHard), stats.DifficultyBreakdown.Hard},
	})
	s.breakdownTable(pdf, title, "By problem type", []breakdownRow{
		{string(model.ProblemTypeAddition), stats.ProblemTypeBreakdown.Addition},
		{string(model.ProblemTypeSubtraction), stats.ProblemTypeBreakdown.Subtraction},
		{string(model.ProblemTypeMultiplication), stats.ProblemTypeBreakdown.Multiplication},
		{string(model.ProblemTypeDivision), stats.ProblemTypeBreakdown.Division},
		{string(model.ProblemTypeMixed), stats.ProblemTypeBreakdown.Mixed},
	})

	// ---------- recent problems ----------
	if len(stats.RecentProblems) > 0 {
		pdf.SetFont(s.cfg.FontFamily, "B", 14)
		pdf.CellFormat(0, 10, "Recent problems", "", 1, "L", false, 0, "")
		for i, item := range stats.RecentProblems {
			mark := "Incorrect"
			if item.IsCorrect {
				mark = "Correct"
			}
			pdf.SetFont(s.cfg.FontFamily, "B", 11)
			pdf.MultiCell(0, 6, fmt.Sprintf("%d. [%s, %s] %s", i+1,
				title.String(item.Difficulty), title.String(item.ProblemType), mark), "", "L", false)
			pdf.SetFont(s.cfg.FontFamily, "", 11)
			pdf.MultiCell(0, 6, item.Problem, "", "L", false)
			pdf.MultiCell(0, 6, fmt.Sprintf("Your answer: %s   Correct answer: %s",
				formatNumber(item.UserAnswer), formatNumber(item.CorrectAnswer)), "", "L", false)
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

type breakdownRow struct {
	label string
	b     model.Breakdown
}

func (s *ReportService) breakdownTable(pdf *fpdf.Fpdf, title cases.Caser, heading string, rows []breakdownRow) {
	pdf.SetFont(s.cfg.FontFamily, "B", 14)
	pdf.CellFormat(0, 10, heading, "", 1, "L", false, 0, "")

	widths := []float64{50, 30, 30, 30}
	pdf.SetFont(s.cfg.FontFamily, "B", 11)
	for i, h := range []string{"", "Total", "Correct", "Accuracy"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(s.cfg.FontFamily, "", 11)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 7, title.String(r.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprint(r.b.Total), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprint(r.b.Correct), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%d%%", r.b.Accuracy), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}
