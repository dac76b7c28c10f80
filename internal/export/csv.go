package export

import (
	"encoding/csv"
	"io"

	"github.com/verte-zerg/letterdist/internal/model"
	"github.com/verte-zerg/letterdist/internal/stats"
)

func encodeCSV(w io.Writer, rows []model.ReportRow, maxOccurrences int) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(stats.Records(rows, maxOccurrences)); err != nil {
		return err
	}
	return writer.Error()
}
