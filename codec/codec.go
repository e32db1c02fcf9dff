package codec

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hatlonely/tempdataset/dataset"
)

var (
	// ErrFileNotFound 文件不存在
	ErrFileNotFound = errors.New("file not found")

	// ErrParse 文件内容无法解析
	ErrParse = errors.New("parse failed")
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// formatValue 把标量值格式化为文本
// 浮点数使用最短精确表示，保证写出再读回数值完全相等
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format(dateLayout)
		}
		return t.Format(dateTimeLayout)
	default:
		return ""
	}
}

// inferColumnType 根据一列的全部文本值推断字段类型
// 依次尝试 integer、float、boolean、date、datetime，全部失败回退 string
// 空值不参与推断
func inferColumnType(values []string) dataset.FieldType {
	candidates := []struct {
		fieldType dataset.FieldType
		parse     func(string) bool
	}{
		{dataset.FieldTypeInteger, func(s string) bool {
			_, err := strconv.ParseInt(s, 10, 64)
			return err == nil && !hasLeadingZero(s)
		}},
		{dataset.FieldTypeFloat, func(s string) bool {
			_, err := strconv.ParseFloat(s, 64)
			return err == nil && !hasLeadingZero(s)
		}},
		{dataset.FieldTypeBoolean, func(s string) bool {
			lower := strings.ToLower(s)
			return lower == "true" || lower == "false"
		}},
		{dataset.FieldTypeDate, func(s string) bool {
			_, err := time.Parse(dateLayout, s)
			return err == nil
		}},
		{dataset.FieldTypeDateTime, func(s string) bool {
			_, err := time.Parse(dateTimeLayout, s)
			return err == nil
		}},
	}

	for _, candidate := range candidates {
		matched := false
		ok := true
		for _, v := range values {
			if v == "" {
				continue
			}
			if !candidate.parse(v) {
				ok = false
				break
			}
			matched = true
		}
		if ok && matched {
			return candidate.fieldType
		}
	}
	return dataset.FieldTypeString
}

// hasLeadingZero 判断零开头的定长编号，例如邮编 01000
// 这类值按数值解析会丢失前导零，必须保留为字符串
func hasLeadingZero(s string) bool {
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")
	return len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9'
}

// coerceValue 按推断出的类型把文本转换为标量值
func coerceValue(v string, fieldType dataset.FieldType) (any, error) {
	if v == "" {
		if fieldType == dataset.FieldTypeString {
			return "", nil
		}
		return nil, nil
	}

	switch fieldType {
	case dataset.FieldTypeInteger:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "coerce %q to integer failed", v)
		}
		return int(n), nil
	case dataset.FieldTypeFloat:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "coerce %q to float failed", v)
		}
		return f, nil
	case dataset.FieldTypeBoolean:
		return strings.EqualFold(v, "true"), nil
	case dataset.FieldTypeDate:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, errors.Wrapf(err, "coerce %q to date failed", v)
		}
		return t, nil
	case dataset.FieldTypeDateTime:
		t, err := time.Parse(dateTimeLayout, v)
		if err != nil {
			return nil, errors.Wrapf(err, "coerce %q to datetime failed", v)
		}
		return t, nil
	default:
		return v, nil
	}
}

// parseTemporal 尝试把字符串恢复为日期或日期时间
// JSON 读取时字符串字段走这条路径，其余类型由 JSON 标量自带
func parseTemporal(s string) (any, bool) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(dateTimeLayout, s); err == nil {
		return t, true
	}
	return nil, false
}
