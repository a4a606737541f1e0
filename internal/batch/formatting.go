package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// formatBatchResults formats the batch processing results in the specified format.
func formatBatchResults(items []Item, format string) (string, error) {
	switch format {
	case "json":
		return formatJSON(items)
	case "csv":
		return formatCSV(items)
	default: // text
		return formatText(items)
	}
}

// formatJSON formats results as JSON.
func formatJSON(items []Item) (string, error) {
	batchResult := struct {
		Texts []Item `json:"texts"`
		Count int    `json:"count"`
	}{
		Texts: items,
		Count: len(items),
	}

	bts, err := json.MarshalIndent(batchResult, "", "  ")
	return string(bts), err
}

// formatCSV formats results as CSV.
func formatCSV(items []Item) (string, error) {
	csvData := [][]string{
		{"file", "line", "text", "language_code", "language", "family", "confidence", "method"},
	}

	for _, item := range items {
		res := item.Result
		if res == nil {
			continue
		}
		csvData = append(csvData, []string{
			item.File,
			strconv.Itoa(item.Line),
			res.Text,
			res.Code,
			res.Language,
			res.Family,
			fmt.Sprintf("%.3f", res.Confidence),
			res.Method,
		})
	}

	var output strings.Builder
	writer := csv.NewWriter(&output)
	for _, row := range csvData {
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	return output.String(), nil
}

// formatText formats results as plain text.
func formatText(items []Item) (string, error) {
	var output strings.Builder
	lastFile := ""
	for _, item := range items {
		if item.File != lastFile {
			if lastFile != "" {
				output.WriteString("\n")
			}
			output.WriteString(fmt.Sprintf("# %s\n", item.File))
			lastFile = item.File
		}
		res := item.Result
		if res == nil {
			continue
		}
		output.WriteString(fmt.Sprintf("%d: %s (%s, %s) %s\n",
			item.Line, res.Language, res.Code, pipeline.FormatConfidence(res.Confidence), truncate(res.Text, 60)))
	}
	return output.String(), nil
}

// truncate shortens a text to at most n runes for display.
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n-3]) + "..."
}
