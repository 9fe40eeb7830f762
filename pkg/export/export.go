package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kotrzina/dobijecka/pkg/extract"
	"github.com/kotrzina/dobijecka/pkg/utils"
)

const (
	CSVFilename  = "dobijecka_data.csv"
	JSONFilename = "dobijecka_data.json"

	jsonIndent = "    "
)

var csvHeader = []string{"date", "hour_begin", "hour_end", "title", "description"}

type record struct {
	Date        string `json:"date"`
	HourBegin   int    `json:"hour_begin"`
	HourEnd     int    `json:"hour_end"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Save writes the aggregated announcements as CSV and JSON into dir,
// creating the directory when missing.
func Save(announcements []extract.Announcement, dir string, logger *logrus.Logger) error {
	if len(announcements) == 0 {
		return extract.Errorf("there are no announcements to export")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory %s: %w", dir, err)
	}

	csvPath := filepath.Join(dir, CSVFilename)
	logger.Infof("saving csv to %s", csvPath)
	if err := writeCSV(announcements, csvPath); err != nil {
		return err
	}

	jsonPath := filepath.Join(dir, JSONFilename)
	logger.Infof("saving json to %s", jsonPath)
	if err := writeJSON(announcements, jsonPath); err != nil {
		return err
	}

	return nil
}

func writeCSV(announcements []extract.Announcement, path string) error {
	var sb strings.Builder

	sb.WriteString(csvRow(csvHeader))
	for _, a := range announcements {
		sb.WriteString(csvRow([]string{
			utils.FormatDate(a.Date),
			fmt.Sprintf("%d", a.HourBegin),
			fmt.Sprintf("%d", a.HourEnd),
			a.Title,
			a.Description,
		}))
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("could not write csv file: %w", err)
	}

	return nil
}

// csvRow quotes every field unconditionally, which encoding/csv
// cannot be told to do.
func csvRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}

	return strings.Join(quoted, ",") + "\n"
}

func writeJSON(announcements []extract.Announcement, path string) error {
	records := make([]record, len(announcements))
	for i, a := range announcements {
		records[i] = record{
			Date:        utils.FormatDate(a.Date),
			HourBegin:   a.HourBegin,
			HourEnd:     a.HourEnd,
			Title:       a.Title,
			Description: a.Description,
		}
	}

	data, err := json.MarshalIndent(records, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("could not marshal announcements: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write json file: %w", err)
	}

	return nil
}
