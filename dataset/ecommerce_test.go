package dataset

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hatlonely/tempdataset/provider"
)

func newEcommerceForTest(t *testing.T, seed int64) *EcommerceDataset {
	t.Helper()
	p, err := provider.NewBuiltinProviderWithOptions(&provider.BuiltinProviderOptions{Seed: seed})
	assert.NoError(t, err)
	return NewEcommerceDataset(p)
}

func TestEcommerceDataset_Schema(t *testing.T) {
	d := newEcommerceForTest(t, 1)
	assert.Equal(t, 23, d.Schema().Len())

	ft, _ := d.Schema().TypeOf("order_time")
	assert.Equal(t, FieldTypeDateTime, ft)
}

func TestEcommerceDataset_Consistency(t *testing.T) {
	d := newEcommerceForTest(t, 42)
	data, err := d.Generate(100)
	assert.NoError(t, err)

	txnPattern := regexp.MustCompile(`^TXN-\d{4}-\d{6}$`)

	browsersByDevice := make(map[string][]string)
	for _, db := range deviceBrowsers {
		browsersByDevice[db.Device] = db.Browsers
	}

	for _, row := range data {
		assert.Regexp(t, txnPattern, row["transaction_id"])

		quantity := row["quantity"].(int)
		unitPrice := row["unit_price"].(float64)
		totalPrice := row["total_price"].(float64)
		discountPct := row["discount_percentage"].(float64)
		discountAmount := row["discount_amount"].(float64)
		finalPrice := row["final_price"].(float64)

		// total_price = quantity × unit_price
		assert.Equal(t, provider.Round(float64(quantity)*unitPrice, 2), totalPrice)

		// discount_amount 从百分比推导
		assert.Equal(t, provider.Round(totalPrice*discountPct/100, 2), discountAmount)
		assert.GreaterOrEqual(t, discountPct, 0.0)
		assert.LessOrEqual(t, discountPct, 30.0)

		// final_price = total_price − discount_amount
		assert.Equal(t, provider.Round(totalPrice-discountAmount, 2), finalPrice)

		// 浏览器与设备类型保持关联
		browsers, ok := browsersByDevice[row["device_type"].(string)]
		assert.True(t, ok, "unknown device type %v", row["device_type"])
		assert.Contains(t, browsers, row["browser"])
	}
}
