package frame

import (
	"fmt"
	"time"
)

// ColumnSummary 单列的描述性统计
// 数值列给出 count/mean/min/max，类别列给出去重数和众数
type ColumnSummary struct {
	Column  string
	Numeric bool

	Count int

	// 数值列统计
	Mean float64
	Min  float64
	Max  float64

	// 类别列统计
	Distinct int
	Top      string
	TopCount int
}

// Summary 按列顺序排列的描述性统计结果
type Summary struct {
	Columns []ColumnSummary
}

// Describe 计算每列的描述性统计
// int 和 float64 按数值列处理，其余类型格式化后按类别列处理
func (df *TempDataFrame) Describe() *Summary {
	summary := &Summary{Columns: make([]ColumnSummary, 0, len(df.columns))}

	for _, col := range df.columns {
		numericCount := 0
		for _, row := range df.rows {
			if _, ok := asFloat(row[col]); ok {
				numericCount++
			}
		}

		if len(df.rows) > 0 && numericCount == len(df.rows) {
			summary.Columns = append(summary.Columns, df.describeNumeric(col))
		} else {
			summary.Columns = append(summary.Columns, df.describeCategorical(col))
		}
	}
	return summary
}

func (df *TempDataFrame) describeNumeric(col string) ColumnSummary {
	s := ColumnSummary{Column: col, Numeric: true}
	sum := 0.0
	for _, row := range df.rows {
		v, ok := asFloat(row[col])
		if !ok {
			continue
		}
		if s.Count == 0 || v < s.Min {
			s.Min = v
		}
		if s.Count == 0 || v > s.Max {
			s.Max = v
		}
		sum += v
		s.Count++
	}
	if s.Count > 0 {
		s.Mean = sum / float64(s.Count)
	}
	return s
}

func (df *TempDataFrame) describeCategorical(col string) ColumnSummary {
	s := ColumnSummary{Column: col}
	counts := make(map[string]int)
	// 并列时取先出现的值，保证结果稳定
	order := make([]string, 0)
	for _, row := range df.rows {
		v, ok := row[col]
		if !ok || v == nil {
			continue
		}
		key := categoricalKey(v)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
		s.Count++
	}
	s.Distinct = len(counts)
	for _, key := range order {
		if counts[key] > s.TopCount {
			s.Top = key
			s.TopCount = counts[key]
		}
	}
	return s
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func categoricalKey(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}
