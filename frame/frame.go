package frame

import (
	"github.com/pkg/errors"

	"github.com/hatlonely/tempdataset/dataset"
)

// ErrColumnNotFound 请求的列不在模式中
var ErrColumnNotFound = errors.New("column not found")

// TempDataFrame 内存中的表格容器：有序的行序列加有序的列名列表
// 行数据为容器独占，所有派生容器都持有独立副本，互不影响
type TempDataFrame struct {
	rows    []dataset.Row
	columns []string
}

// New 创建表格容器，行数据和列名都会被拷贝
func New(rows []dataset.Row, columns []string) *TempDataFrame {
	ownedRows := make([]dataset.Row, len(rows))
	for i, row := range rows {
		ownedRows[i] = row.Clone()
	}
	ownedColumns := make([]string, len(columns))
	copy(ownedColumns, columns)
	return &TempDataFrame{rows: ownedRows, columns: ownedColumns}
}

// Shape 返回 (行数, 列数)
func (df *TempDataFrame) Shape() (int, int) {
	return len(df.rows), len(df.columns)
}

// Columns 返回列名副本，修改返回值不影响容器
func (df *TempDataFrame) Columns() []string {
	columns := make([]string, len(df.columns))
	copy(columns, df.columns)
	return columns
}

// Len 行数
func (df *TempDataFrame) Len() int {
	return len(df.rows)
}

// At 返回第 i 行的副本
func (df *TempDataFrame) At(i int) (dataset.Row, bool) {
	if i < 0 || i >= len(df.rows) {
		return nil, false
	}
	return df.rows[i].Clone(), true
}

// Head 返回前 min(n, 行数) 行组成的新容器，n <= 0 返回空容器
func (df *TempDataFrame) Head(n int) *TempDataFrame {
	if n <= 0 {
		return New(nil, df.columns)
	}
	if n > len(df.rows) {
		n = len(df.rows)
	}
	return New(df.rows[:n], df.columns)
}

// Tail 返回后 min(n, 行数) 行组成的新容器，保持原有顺序，n <= 0 返回空容器
func (df *TempDataFrame) Tail(n int) *TempDataFrame {
	if n <= 0 {
		return New(nil, df.columns)
	}
	if n > len(df.rows) {
		n = len(df.rows)
	}
	return New(df.rows[len(df.rows)-n:], df.columns)
}

// Filter 返回谓词为真的行组成的新容器，保持相对顺序和原模式
func (df *TempDataFrame) Filter(predicate func(dataset.Row) bool) *TempDataFrame {
	kept := make([]dataset.Row, 0)
	for _, row := range df.rows {
		if predicate(row.Clone()) {
			kept = append(kept, row)
		}
	}
	return New(kept, df.columns)
}

// Select 返回只包含指定列的新容器，列顺序按参数给定
// 任何列不存在时返回 ErrColumnNotFound
func (df *TempDataFrame) Select(columns ...string) (*TempDataFrame, error) {
	known := make(map[string]bool, len(df.columns))
	for _, col := range df.columns {
		known[col] = true
	}
	for _, col := range columns {
		if !known[col] {
			return nil, errors.WithMessagef(ErrColumnNotFound, "column %q not in schema %v", col, df.columns)
		}
	}

	rows := make([]dataset.Row, len(df.rows))
	for i, row := range df.rows {
		selected := make(dataset.Row, len(columns))
		for _, col := range columns {
			selected[col] = row[col]
		}
		rows[i] = selected
	}
	return New(rows, columns), nil
}

// Records 以行映射序列的形式返回数据，与内部存储解耦
func (df *TempDataFrame) Records() []dataset.Row {
	records := make([]dataset.Row, len(df.rows))
	for i, row := range df.rows {
		records[i] = row.Clone()
	}
	return records
}
