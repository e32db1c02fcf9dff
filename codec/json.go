package codec

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/hatlonely/tempdataset/dataset"
	"github.com/hatlonely/tempdataset/frame"
)

// WriteJSON 把表格容器写为 JSON 文件，顶层为对象数组
// 对象键按模式顺序输出，两空格缩进
func WriteJSON(df *frame.TempDataFrame, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s failed", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create json file %s failed", path)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	columns := df.Columns()
	records := df.Records()

	if len(records) == 0 {
		if _, err := writer.WriteString("[]"); err != nil {
			return errors.Wrapf(err, "write json file %s failed", path)
		}
		return errors.Wrapf(writer.Flush(), "flush json file %s failed", path)
	}

	writer.WriteString("[\n")
	for i, row := range records {
		writer.WriteString("  {\n")
		for j, col := range columns {
			writer.WriteString("    ")
			writeJSONString(writer, col)
			writer.WriteString(": ")
			writer.WriteString(encodeScalar(row[col]))
			if j < len(columns)-1 {
				writer.WriteByte(',')
			}
			writer.WriteByte('\n')
		}
		writer.WriteString("  }")
		if i < len(records)-1 {
			writer.WriteByte(',')
		}
		writer.WriteByte('\n')
	}
	writer.WriteString("]")

	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "flush json file %s failed", path)
	}
	return nil
}

// WriteJSONLines 把表格容器写为行分隔 JSON 文件，每行一个紧凑对象
// 适合流式消费的大数据量场景
func WriteJSONLines(df *frame.TempDataFrame, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s failed", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create json file %s failed", path)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	columns := df.Columns()
	for _, row := range df.Records() {
		writer.WriteByte('{')
		for j, col := range columns {
			writeJSONString(writer, col)
			writer.WriteByte(':')
			writer.WriteString(encodeScalar(row[col]))
			if j < len(columns)-1 {
				writer.WriteByte(',')
			}
		}
		writer.WriteString("}\n")
	}

	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "flush json file %s failed", path)
	}
	return nil
}

// ReadJSON 把 JSON 文件读入表格容器
// 根据首个非空白字符区分对象数组和行分隔两种形式
// 数组形式走 token 流增量解析，不会把整个文件先读进内存再解析
func ReadJSON(path string) (*frame.TempDataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithMessagef(ErrFileNotFound, "json file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "open json file %s failed", path)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	first, err := peekNonSpace(reader)
	if err == io.EOF {
		return nil, errors.WithMessagef(ErrParse, "empty json file: %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read json file %s failed", path)
	}

	switch first {
	case '[':
		return readJSONArray(reader, path)
	case '{':
		return readJSONLines(reader, path)
	default:
		return nil, errors.WithMessagef(ErrParse, "unrecognized json format in file: %s", path)
	}
}

func peekNonSpace(reader *bufio.Reader) (byte, error) {
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			if err := reader.UnreadByte(); err != nil {
				return 0, err
			}
			return b, nil
		}
	}
}

func readJSONArray(reader io.Reader, path string) (*frame.TempDataFrame, error) {
	dec := json.NewDecoder(reader)
	dec.UseNumber()

	if err := expectDelim(dec, '[', path); err != nil {
		return nil, err
	}

	var columns []string
	var rows []dataset.Row
	index := 0
	for dec.More() {
		keys, row, err := decodeFlatObject(dec, path)
		if err != nil {
			return nil, errors.WithMessagef(err, "item %d in json array is invalid", index)
		}
		if columns == nil {
			columns = keys
		}
		rows = append(rows, row)
		index++
	}

	if err := expectDelim(dec, ']', path); err != nil {
		return nil, err
	}

	return frame.New(rows, columns), nil
}

func readJSONLines(reader io.Reader, path string) (*frame.TempDataFrame, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var columns []string
	var rows []dataset.Row
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		dec := json.NewDecoder(bytes.NewReader(line))
		dec.UseNumber()
		keys, row, err := decodeFlatObject(dec, path)
		if err != nil {
			return nil, errors.WithMessagef(err, "invalid json on line %d", lineNumber)
		}
		if columns == nil {
			columns = keys
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read json file %s failed", path)
	}

	return frame.New(rows, columns), nil
}

func expectDelim(dec *json.Decoder, delim json.Delim, path string) error {
	tok, err := dec.Token()
	if err != nil {
		return wrapJSONError(err, path)
	}
	if d, ok := tok.(json.Delim); !ok || d != delim {
		return errors.WithMessagef(ErrParse,
			"json file %s must contain an array of objects, got token %v", path, tok)
	}
	return nil
}

// decodeFlatObject 按出现顺序解析一个扁平对象
// 键顺序用于重建列顺序，嵌套对象和数组视为格式错误
func decodeFlatObject(dec *json.Decoder, path string) ([]string, dataset.Row, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, wrapJSONError(err, path)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, errors.WithMessagef(ErrParse,
			"expected json object in file %s, got token %v", path, tok)
	}

	keys := make([]string, 0)
	row := make(dataset.Row)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, wrapJSONError(err, path)
		}
		key := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, nil, wrapJSONError(err, path)
		}
		if _, nested := valTok.(json.Delim); nested {
			return nil, nil, errors.WithMessagef(ErrParse,
				"field %q in file %s is not a scalar value", key, path)
		}

		keys = append(keys, key)
		row[key] = decodeScalar(valTok)
	}

	// 消费对象结尾的 '}'
	if _, err := dec.Token(); err != nil {
		return nil, nil, wrapJSONError(err, path)
	}
	return keys, row, nil
}

// decodeScalar 把 JSON 标量还原为容器值
// 数字区分整数和浮点，字符串尝试恢复日期和日期时间
func decodeScalar(tok json.Token) any {
	switch v := tok.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		f, _ := v.Float64()
		return f
	case string:
		if t, ok := parseTemporal(v); ok {
			return t
		}
		return v
	case bool:
		return v
	default:
		return nil
	}
}

func encodeScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return `"` + formatValue(t) + `"`
	case string:
		data, _ := json.Marshal(t)
		return string(data)
	default:
		data, _ := json.Marshal(t)
		return string(data)
	}
}

func writeJSONString(writer *bufio.Writer, s string) {
	data, _ := json.Marshal(s)
	writer.Write(data)
}

func wrapJSONError(err error, path string) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return errors.WithMessagef(ErrParse,
			"invalid json in file %s at offset %d: %v", path, syntaxErr.Offset, syntaxErr)
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.WithMessagef(ErrParse, "unexpected end of json file: %s", path)
	}
	return errors.WithMessagef(ErrParse, "read json file %s failed: %v", path, err)
}
