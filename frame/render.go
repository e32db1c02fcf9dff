package frame

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
)

// renderLimit 渲染时最多展示的行数
const renderLimit = 10

// Render 以表格形式输出前若干行
func (df *TempDataFrame) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	// 列名保持原样，不做大写转换
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(df.columns))
	for i, col := range df.columns {
		header[i] = col
	}
	t.AppendHeader(header)

	limit := len(df.rows)
	if limit > renderLimit {
		limit = renderLimit
	}
	for _, row := range df.rows[:limit] {
		cells := make(table.Row, len(df.columns))
		for i, col := range df.columns {
			cells[i] = renderValue(row[col])
		}
		t.AppendRow(cells)
	}
	t.Render()

	if len(df.rows) > limit {
		fmt.Fprintf(w, "... %d more rows\n", len(df.rows)-limit)
	}
}

func (df *TempDataFrame) String() string {
	var b strings.Builder
	df.Render(&b)
	return b.String()
}

func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", t)
	}
}
