package commands

import (
	"encoding/json"
	"os"

	"dkscrape-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
)

// writeOutput dumps records to the --output file when one was given.
func writeOutput(records any) {
	if *outputPath == "" {
		return
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		serviceutil.Fatal("failed to serialize records", err)
	}
	err = os.WriteFile(*outputPath, payload, 0o644)
	if err != nil {
		serviceutil.Fatal("failed to write output file", err)
	}
}

func renderTable(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.SetStyle(table.StyleRounded)
	t.Render()
}
