package commands

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/de-tools/fiscal-atlas/pkg/services/pipeline"
	"github.com/de-tools/fiscal-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocuments struct {
	keys map[string][]string
	docs map[string][]byte
}

func (f *fakeDocuments) List(_ context.Context, reportType string) ([]string, error) {
	return f.keys[reportType], nil
}

func (f *fakeDocuments) Fetch(_ context.Context, key string) ([]byte, error) {
	doc, ok := f.docs[key]
	if !ok {
		return nil, fmt.Errorf("no such document: %s", key)
	}
	return doc, nil
}

type fakeAnalyzer struct {
	tables map[string]domain.RawTable
}

func (f *fakeAnalyzer) AnalyzeTable(_ context.Context, document []byte) (domain.RawTable, error) {
	table, ok := f.tables[string(document)]
	if !ok {
		return domain.RawTable{}, fmt.Errorf("unreadable document")
	}
	return table, nil
}

func consistentNetCashFlowTable() domain.RawTable {
	columns := make([]string, 14)
	for i := range columns {
		columns[i] = strconv.Itoa(i)
	}

	row := func(value float64) []string {
		cells := make([]string, 14)
		cells[0] = "label"
		for m := 1; m <= 12; m++ {
			cells[m] = strconv.FormatFloat(value, 'f', 1, 64)
		}
		cells[13] = strconv.FormatFloat(value*12, 'f', 1, 64)
		return cells
	}

	anchor := make([]string, 14)
	anchor[0] = "TOTAL DISBURSEMENTS"

	return domain.RawTable{
		Columns: columns,
		Rows: [][]string{
			anchor,
			row(10),  // excess
			row(200), // opening
			row(0),   // tran
			row(210), // closing = excess + opening + tran
		},
	}
}

func TestIngestCmd(t *testing.T) {
	p := pipeline.New(report.NewDefaultRegistry(), emptySource{})

	t.Run("ingests every listed document", func(t *testing.T) {
		docs := &fakeDocuments{
			keys: map[string][]string{
				report.NetCashFlow: {
					"net-cash-flow/FY2023_Q2.pdf",
					"net-cash-flow/FY2023_Q1.pdf",
				},
			},
			docs: map[string][]byte{
				"net-cash-flow/FY2023_Q2.pdf": []byte("doc-q2"),
				"net-cash-flow/FY2023_Q1.pdf": []byte("doc-q1"),
			},
		}
		analyzer := &fakeAnalyzer{tables: map[string]domain.RawTable{
			"doc-q2": consistentNetCashFlowTable(),
			"doc-q1": consistentNetCashFlowTable(),
		}}

		sink := &recordingSink{}
		cmd := NewIngestCmd(p, docs, analyzer, []Sink{sink})
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--report", report.NetCashFlow})

		require.NoError(t, cmd.Execute())

		require.Len(t, sink.filings, 2)
		assert.Equal(t, 2, sink.filings[0].Quarter)
		assert.Equal(t, 1, sink.filings[1].Quarter)
		assert.Contains(t, out.String(), "ingested FY2023_Q2.pdf")
	})

	t.Run("no documents", func(t *testing.T) {
		cmd := NewIngestCmd(p, &fakeDocuments{}, &fakeAnalyzer{}, []Sink{&recordingSink{}})
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--report", report.NetCashFlow})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "No documents found")
	})

	t.Run("analysis failure stops the run", func(t *testing.T) {
		docs := &fakeDocuments{
			keys: map[string][]string{report.NetCashFlow: {"net-cash-flow/FY2023_Q2.pdf"}},
			docs: map[string][]byte{"net-cash-flow/FY2023_Q2.pdf": []byte("doc-q2")},
		}

		sink := &recordingSink{}
		cmd := NewIngestCmd(p, docs, &fakeAnalyzer{}, []Sink{sink})
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"--report", report.NetCashFlow})

		assert.Error(t, cmd.Execute())
		assert.Empty(t, sink.filings)
	})
}
