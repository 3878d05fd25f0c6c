package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"avghash/internal/batch"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Sink consumes results.
type Sink interface {
	Write(batch.Result) error
	Close() error
}

// NewSink returns the sink for format writing to w.
func NewSink(format string, w io.Writer) (Sink, error) {
	switch format {
	case FormatText, "":
		return &textSink{w: w}, nil
	case FormatJSON:
		return &jsonSink{enc: json.NewEncoder(w)}, nil
	case FormatTable:
		return &tableSink{w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

type textSink struct {
	w io.Writer
}

func (s *textSink) Write(res batch.Result) error {
	value := res.Hash.String()
	if res.Err != nil {
		value = res.Err.Error()
	}
	_, err := fmt.Fprintf(s.w, "%s\t->\t%s\n", res.Path, value)
	return err
}

func (s *textSink) Close() error { return nil }

// jsonRecord is one line of the json format.
type jsonRecord struct {
	Path  string `json:"path"`
	Hash  string `json:"hash,omitempty"`
	Bits  int    `json:"bits,omitempty"`
	Error string `json:"error,omitempty"`
}

type jsonSink struct {
	enc *json.Encoder
}

func (s *jsonSink) Write(res batch.Result) error {
	rec := jsonRecord{Path: res.Path}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	} else {
		rec.Hash = res.Hash.String()
		rec.Bits = res.Hash.Size()
	}
	return s.enc.Encode(rec)
}

func (s *jsonSink) Close() error { return nil }

// tableSink buffers every result and renders a sorted table on Close.
type tableSink struct {
	w    io.Writer
	rows []batch.Result
}

func (s *tableSink) Write(res batch.Result) error {
	s.rows = append(s.rows, res)
	return nil
}

func (s *tableSink) Close() error {
	if len(s.rows) == 0 {
		return nil
	}
	sort.Slice(s.rows, func(i, j int) bool { return s.rows[i].Path < s.rows[j].Path })

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Path", "Bits", "Hash / Error"})
	for _, res := range s.rows {
		if res.Err != nil {
			tw.AppendRow(table.Row{res.Path, "-", res.Err.Error()})
			continue
		}
		tw.AppendRow(table.Row{res.Path, strconv.Itoa(res.Hash.Size()), res.Hash.String()})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	_, err := io.WriteString(s.w, tw.Render()+"\n")
	s.rows = nil
	return err
}
