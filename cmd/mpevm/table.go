package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"mpevm/internal/convert"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, rounded bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if rounded {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderSummary(stats convert.Stats, rounded bool) string {
	rows := [][]string{
		{"Lines read", strconv.Itoa(stats.LinesRead)},
		{"Boundary markers", strconv.Itoa(stats.Boundaries)},
		{"Comments", strconv.Itoa(stats.Comments)},
		{"Transcripts", strconv.Itoa(stats.Transcripts)},
		{"Coding segments", strconv.Itoa(stats.CodingSegments)},
		{"Stop markers (skipped)", strconv.Itoa(stats.StopMarkers)},
		{"Other records (skipped)", strconv.Itoa(stats.OtherRecords)},
		{"Blocks converted", strconv.Itoa(stats.BlocksFlushed)},
	}
	if stats.DiscardedSegments > 0 {
		rows = append(rows, []string{"Orphan segments dropped", strconv.Itoa(stats.DiscardedSegments)})
	}
	for _, typ := range stats.WrittenTypes() {
		rows = append(rows, []string{"Written " + typ, strconv.Itoa(stats.WrittenByType[typ])})
	}
	rows = append(rows, []string{"Records written", strconv.Itoa(stats.RecordsWritten)})
	return renderTable([]string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight}, rounded)
}
