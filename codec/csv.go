package codec

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hatlonely/tempdataset/dataset"
	"github.com/hatlonely/tempdataset/frame"
)

// WriteCSV 把表格容器写为 CSV 文件
// 首行为模式顺序的列名，包含分隔符、引号或换行的值按标准 CSV 规则转义
// 目标目录不存在时自动创建
func WriteCSV(df *frame.TempDataFrame, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s failed", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create csv file %s failed", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	columns := df.Columns()
	if err := writer.Write(columns); err != nil {
		return errors.Wrapf(err, "write csv header to %s failed", path)
	}

	record := make([]string, len(columns))
	for _, row := range df.Records() {
		for i, col := range columns {
			record[i] = formatValue(row[col])
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "write csv record to %s failed", path)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "flush csv file %s failed", path)
	}
	return nil
}

// ReadCSV 把 CSV 文件读入表格容器
// 逐条记录流式读取，列类型从全列文本值推断
// 文件不存在返回 ErrFileNotFound，内容损坏返回 ErrParse 并带上行号
func ReadCSV(path string) (*frame.TempDataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithMessagef(ErrFileNotFound, "csv file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "open csv file %s failed", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.WithMessagef(ErrParse, "no columns found in csv file: %s", path)
	}
	if err != nil {
		return nil, wrapCSVError(err, path)
	}

	// 记录数未知，先按文本逐条读入，读完后统一推断列类型
	columnValues := make([][]string, len(header))
	recordCount := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err, path)
		}
		for i, v := range record {
			columnValues[i] = append(columnValues[i], v)
		}
		recordCount++
	}

	types := make([]dataset.FieldType, len(header))
	for i := range header {
		types[i] = inferColumnType(columnValues[i])
	}

	rows := make([]dataset.Row, recordCount)
	for r := 0; r < recordCount; r++ {
		row := make(dataset.Row, len(header))
		for c, col := range header {
			v, err := coerceValue(columnValues[c][r], types[c])
			if err != nil {
				return nil, errors.WithMessagef(ErrParse,
					"coerce value at row %d column %q in %s failed: %v", r+1, col, path, err)
			}
			row[col] = v
		}
		rows[r] = row
	}

	return frame.New(rows, header), nil
}

// wrapCSVError 保留 csv.ParseError 提供的行列信息
func wrapCSVError(err error, path string) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return errors.WithMessagef(ErrParse,
			"malformed csv file %s at line %d column %d: %v",
			path, parseErr.Line, parseErr.Column, parseErr.Err)
	}
	return errors.WithMessagef(ErrParse, "read csv file %s failed: %v", path, err)
}
