package service

import (
	"math"
	"math_practice_backend/internal/model"
)

const DefaultRecentLimit = 10

// CalculateStats 汇总作答历史，history 按时间从旧到新排列
func CalculateStats(history []model.HistoryItem, recentLimit int) model.DashboardStats {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}

	stats := model.DashboardStats{
		RecentProblems: []model.HistoryItem{},
	}

	run := 0
	currentOpen := true
	for i := len(history) - 1; i >= 0; i-- {
		item := history[i]

		stats.TotalProblems++
		if item.IsCorrect {
			stats.CorrectAnswers++
		}
		addTo(stats.DifficultyBreakdown.Bucket(item.Difficulty), item.IsCorrect)
		addTo(stats.ProblemTypeBreakdown.Bucket(item.ProblemType), item.IsCorrect)

		if len(stats.RecentProblems) < recentLimit {
			stats.RecentProblems = append(stats.RecentProblems, item)
		}

		if item.IsCorrect {
			run++
			if run > stats.BestStreak {
				stats.BestStreak = run
			}
			if currentOpen {
				stats.Streak = run
			}
		} else {
			run = 0
			currentOpen = false
		}
	}

	stats.Accuracy = percent(stats.CorrectAnswers, stats.TotalProblems)
	for _, b := range []*model.Breakdown{
		&stats.DifficultyBreakdown.Easy,
		&stats.DifficultyBreakdown.Medium,
		&stats.DifficultyBreakdown.Hard,
		&stats.ProblemTypeBreakdown.Addition,
		&stats.ProblemTypeBreakdown.Subtraction,
		&stats.ProblemTypeBreakdown.Multiplication,
		&stats.ProblemTypeBreakdown.Division,
		&stats.ProblemTypeBreakdown.Mixed,
	} {
		b.Accuracy = percent(b.Correct, b.Total)
	}

	return stats
}

func addTo(b *model.Breakdown, correct bool) {
	if b == nil {
		return
	}
	b.Total++
	if correct {
		b.Correct++
	}
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
