package export

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"

	"github.com/verte-zerg/letterdist/internal/model"
	"github.com/verte-zerg/letterdist/internal/stats"
)

func encodeMarkdown(w io.Writer, rows []model.ReportRow, maxOccurrences int) error {
	records := stats.Records(rows, maxOccurrences)
	md := markdown.NewMarkdown(w)
	md.H1("Letter Distribution")
	md.PlainText("")
	md.PlainText(fmt.Sprintf("Words per occurrence count of each letter, buckets 0 to %d.", maxOccurrences))
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: records[0],
		Rows:   records[1:],
	})
	return md.Build()
}
