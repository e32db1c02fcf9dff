package dataset

import (
	"time"

	"github.com/pkg/errors"

	"github.com/hatlonely/tempdataset/provider"
)

var (
	// ErrInvalidRowCount 行数为负数
	ErrInvalidRowCount = errors.New("invalid row count")

	// ErrDatasetNotFound 请求的数据集未注册
	ErrDatasetNotFound = errors.New("dataset not found")
)

// FieldType 字段类型
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeFloat    FieldType = "float"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeDate     FieldType = "date"
	FieldTypeDateTime FieldType = "datetime"
)

// Field 模式中的一个字段：名称 + 声明类型
type Field struct {
	Name string
	Type FieldType
}

// Schema 有序的字段列表
// 每一行生成的数据必须严格按照该顺序包含且仅包含这些字段
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema 根据字段定义创建模式
func NewSchema(fields ...Field) *Schema {
	index := make(map[string]int, len(fields))
	for i, field := range fields {
		index[field.Name] = i
	}
	return &Schema{fields: fields, index: index}
}

// Fields 返回字段定义副本
func (s *Schema) Fields() []Field {
	fields := make([]Field, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// Columns 按声明顺序返回字段名副本
func (s *Schema) Columns() []string {
	columns := make([]string, len(s.fields))
	for i, field := range s.fields {
		columns[i] = field.Name
	}
	return columns
}

// Len 字段数量
func (s *Schema) Len() int {
	return len(s.fields)
}

// Has 判断字段是否存在
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// TypeOf 返回字段的声明类型
func (s *Schema) TypeOf(name string) (FieldType, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.fields[i].Type, true
}

// Row 一条记录，字段到标量值的映射
// 取值类型限定为 string、int、float64、bool、time.Time，顺序始终由模式决定
type Row map[string]any

// Clone 深拷贝一行
func (r Row) Clone() Row {
	cloned := make(Row, len(r))
	for k, v := range r {
		cloned[k] = v
	}
	return cloned
}

// Dataset 数据集模板需要实现的能力接口
type Dataset interface {
	// Schema 返回模式，不需要生成任何数据即可调用
	Schema() *Schema

	// Generate 生成指定行数的数据
	// rows 为 0 返回空序列，为负数返回 ErrInvalidRowCount
	Generate(rows int) ([]Row, error)
}

// RangeDataset 支持按区间生成的数据集模板
// 第 N 行只依赖 N 和起始偏移量，因此可以分批生成而不需要跨批协调
type RangeDataset interface {
	Dataset

	// GenerateRange 从 start 偏移开始生成 count 行
	GenerateRange(start, count int) ([]Row, error)
}

// Factory 数据集构造函数，由注册表按名称解析
type Factory func(p provider.Provider) Dataset

// CheckRowCount 生成前的行数校验
func CheckRowCount(rows int) error {
	if rows < 0 {
		return errors.WithMessagef(ErrInvalidRowCount, "rows must be >= 0, got %d", rows)
	}
	return nil
}

// DateOnly 截断到日期精度，模板的日期字段统一使用 UTC 零点
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
