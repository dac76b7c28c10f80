package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/letterdist/internal/model"
)

type yamlReport struct {
	MaxCount int       `yaml:"max_count"`
	Rows     []yamlRow `yaml:"rows"`
}

type yamlRow struct {
	Character string `yaml:"character"`
	Counts    []int  `yaml:"counts,flow"`
}

func encodeYAML(w io.Writer, rows []model.ReportRow, maxOccurrences int) error {
	report := yamlReport{MaxCount: maxOccurrences, Rows: make([]yamlRow, 0, len(rows))}
	for _, row := range rows {
		report.Rows = append(report.Rows, yamlRow{Character: row.Letter, Counts: row.Counts})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
