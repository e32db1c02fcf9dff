package frame

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"

	"github.com/hatlonely/tempdataset/dataset"
)

func testRows() ([]dataset.Row, []string) {
	rows := []dataset.Row{
		{"name": "alpha", "price": 10.5, "quantity": 1},
		{"name": "beta", "price": 20.0, "quantity": 2},
		{"name": "gamma", "price": 30.5, "quantity": 3},
		{"name": "delta", "price": 40.0, "quantity": 4},
		{"name": "epsilon", "price": 50.5, "quantity": 5},
	}
	return rows, []string{"name", "price", "quantity"}
}

func TestTempDataFrame_Shape(t *testing.T) {
	rows, columns := testRows()
	df := New(rows, columns)

	rowCount, colCount := df.Shape()
	assert.Equal(t, 5, rowCount)
	assert.Equal(t, 3, colCount)

	// 空容器
	empty := New(nil, columns)
	rowCount, colCount = empty.Shape()
	assert.Equal(t, 0, rowCount)
	assert.Equal(t, 3, colCount)
}

func TestTempDataFrame_Columns_NoAliasing(t *testing.T) {
	rows, columns := testRows()
	df := New(rows, columns)

	// 修改返回的列名列表不影响容器
	got := df.Columns()
	got[0] = "mutated"
	assert.Equal(t, []string{"name", "price", "quantity"}, df.Columns())

	// 修改入参行数据不影响容器
	rows[0]["name"] = "mutated"
	row, ok := df.At(0)
	assert.True(t, ok)
	assert.Equal(t, "alpha", row["name"])
}

func TestTempDataFrame_HeadTail(t *testing.T) {
	rows, columns := testRows()
	df := New(rows, columns)

	Convey("测试 Head/Tail 方法", t, func() {
		Convey("Head 返回前 n 行", func() {
			head := df.Head(2)
			So(head.Len(), ShouldEqual, 2)
			row, _ := head.At(0)
			So(row["name"], ShouldEqual, "alpha")
		})

		Convey("Tail 返回后 n 行且保持原有顺序", func() {
			tail := df.Tail(2)
			So(tail.Len(), ShouldEqual, 2)
			row, _ := tail.At(0)
			So(row["name"], ShouldEqual, "delta")
			row, _ = tail.At(1)
			So(row["name"], ShouldEqual, "epsilon")
		})

		Convey("n 超过行数时返回全部行", func() {
			So(df.Head(100).Len(), ShouldEqual, 5)
			So(df.Tail(100).Len(), ShouldEqual, 5)
		})

		Convey("n <= 0 返回空容器", func() {
			So(df.Head(0).Len(), ShouldEqual, 0)
			So(df.Head(-1).Len(), ShouldEqual, 0)
			So(df.Tail(0).Len(), ShouldEqual, 0)
		})

		Convey("行数等于 n 时 Head 和 Tail 返回相同的行", func() {
			So(df.Head(5).Records(), ShouldResemble, df.Tail(5).Records())
		})
	})
}

func TestTempDataFrame_Filter(t *testing.T) {
	rows, columns := testRows()
	df := New(rows, columns)

	filtered := df.Filter(func(row dataset.Row) bool {
		return row["price"].(float64) > 25
	})

	// 行数不会增加，所有保留行满足谓词，相对顺序不变
	assert.Equal(t, 3, filtered.Len())
	names := make([]string, 0)
	for _, row := range filtered.Records() {
		assert.Greater(t, row["price"].(float64), 25.0)
		names = append(names, row["name"].(string))
	}
	assert.Equal(t, []string{"gamma", "delta", "epsilon"}, names)

	// 模式不变
	assert.Equal(t, df.Columns(), filtered.Columns())

	// 全部过滤
	none := df.Filter(func(dataset.Row) bool { return false })
	assert.Equal(t, 0, none.Len())
	assert.Equal(t, df.Columns(), none.Columns())
}

func TestTempDataFrame_Select(t *testing.T) {
	rows, columns := testRows()
	df := New(rows, columns)

	// 按给定顺序投影
	selected, err := df.Select("price", "name")
	assert.NoError(t, err)
	assert.Equal(t, []string{"price", "name"}, selected.Columns())
	assert.Equal(t, df.Len(), selected.Len())

	row, _ := selected.At(0)
	assert.Len(t, row, 2)
	assert.Equal(t, "alpha", row["name"])

	// 不存在的列
	_, err = df.Select("name", "missing")
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	assert.Contains(t, err.Error(), "missing")
}

func TestTempDataFrame_DerivedOwnership(t *testing.T) {
	rows, columns := testRows()
	df := New(rows, columns)

	// 派生容器与源容器不共享存储
	head := df.Head(1)
	row, _ := head.At(0)
	row["name"] = "mutated"

	records := head.Records()
	records[0]["name"] = "mutated again"

	original, _ := df.At(0)
	assert.Equal(t, "alpha", original["name"])
	fresh, _ := head.At(0)
	assert.Equal(t, "alpha", fresh["name"])
}

func TestTempDataFrame_Records(t *testing.T) {
	rows, columns := testRows()
	df := New(rows, columns)

	records := df.Records()
	assert.Len(t, records, 5)

	// 防御性拷贝
	records[2]["price"] = -1.0
	row, _ := df.At(2)
	assert.Equal(t, 30.5, row["price"])
}
