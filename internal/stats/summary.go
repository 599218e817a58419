package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/speedtype/internal/model"
)

// RenderRunSummary prints the sessions finished during this run.
func RenderRunSummary(w io.Writer, results []model.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No finished sessions.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Sessions"); err != nil {
		return err
	}

	headers := []string{"#", "Session", "Strict", "Time (s)", "WPM", "Accuracy"}
	rows := make([][]string, 0, len(results))
	var totalWPM, totalAcc float64
	bestWPM := 0
	for i, r := range results {
		strict := "off"
		if r.Strict {
			strict = "on"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			shortID(r.SessionID),
			strict,
			fmt.Sprintf("%d", r.ElapsedSeconds),
			fmt.Sprintf("%d", r.WPM),
			fmt.Sprintf("%d%%", r.Accuracy),
		})
		totalWPM += float64(r.WPM)
		totalAcc += float64(r.Accuracy)
		if r.WPM > bestWPM {
			bestWPM = r.WPM
		}
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	count := float64(len(results))
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %d\n", Round(totalWPM/count)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %d\n", bestWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %d%%\n", Round(totalAcc/count)); err != nil {
		return err
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
