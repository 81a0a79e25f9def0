package cmd

import (
	"fmt"
	"strings"

	"github.com/beemnet-bee/Elementia/internal/activity"
	"github.com/beemnet-bee/Elementia/internal/elements"
	"github.com/beemnet-bee/Elementia/internal/progress"
	"github.com/beemnet-bee/Elementia/internal/storage"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		db, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()

		ctx := cmd.Context()
		prog := progress.NewStore(db).Load(ctx)
		stats := prog.QuizStats

		fmt.Printf("Mastered      %d/%d (%d%%)\n",
			prog.MasteredCount(), elements.Count(),
			activity.MasteryPercent(prog.MasteredCount(), elements.Count()))
		fmt.Printf("Answered      %d (%d correct, %d%% accuracy)\n",
			stats.Total, stats.Correct, activity.AccuracyPercent(stats))
		fmt.Printf("Streaks       %d answers, %d days\n", stats.Streak, stats.DayStreak)
		if !stats.LastActivityDate.IsZero() {
			fmt.Printf("Last active   %s\n", stats.LastActivityDate)
		}

		fmt.Println()
		fmt.Println("Last 7 days:")
		for _, day := range activity.Last7Days(prog.ActivityHistory, progress.Today()) {
			bar := strings.Repeat("#", min(day.Count, 40))
			fmt.Printf("  %s %3d %s\n", day.Label, day.Count, bar)
		}

		categories := activity.CategoryMastery(prog.MasteredElements, elements.All())
		var active []activity.CategoryStat
		for _, cs := range categories {
			if cs.Mastered > 0 {
				active = append(active, cs)
			}
		}
		if len(active) > 0 {
			fmt.Println()
			fmt.Println("Mastery by category:")
			for _, cs := range active {
				fmt.Printf("  %-22s %d/%d\n", cs.Category, cs.Mastered, cs.Total)
			}
		}

		return nil
	},
}
