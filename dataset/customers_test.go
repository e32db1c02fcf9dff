package dataset

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hatlonely/tempdataset/provider"
)

func newCustomersForTest(t *testing.T, seed int64) *CustomersDataset {
	t.Helper()
	p, err := provider.NewBuiltinProviderWithOptions(&provider.BuiltinProviderOptions{Seed: seed})
	assert.NoError(t, err)
	return NewCustomersDataset(p)
}

func TestCustomersDataset_Schema(t *testing.T) {
	d := newCustomersForTest(t, 1)
	schema := d.Schema()

	assert.Equal(t, 19, schema.Len())

	ft, _ := schema.TypeOf("is_active")
	assert.Equal(t, FieldTypeBoolean, ft)
	ft, _ = schema.TypeOf("last_login")
	assert.Equal(t, FieldTypeDateTime, ft)
	ft, _ = schema.TypeOf("registration_date")
	assert.Equal(t, FieldTypeDate, ft)
}

func TestCustomersDataset_Consistency(t *testing.T) {
	d := newCustomersForTest(t, 42)
	data, err := d.Generate(100)
	assert.NoError(t, err)
	assert.Len(t, data, 100)

	idPattern := regexp.MustCompile(`^CUST-\d{6}$`)
	uuidPattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	phonePattern := regexp.MustCompile(`^\+1-\d{3}-\d{3}-\d{4}$`)

	for i, row := range data {
		assert.Equal(t, fmt.Sprintf("CUST-%06d", i+1), row["customer_id"])
		assert.Regexp(t, idPattern, row["customer_id"])
		assert.Regexp(t, uuidPattern, row["customer_uuid"])
		assert.Regexp(t, phonePattern, row["phone"])

		// 全名等于姓加名
		fullName := row["full_name"].(string)
		assert.Equal(t, row["first_name"].(string)+" "+row["last_name"].(string), fullName)

		// 最后登录不早于注册日
		registration := row["registration_date"].(time.Time)
		lastLogin := row["last_login"].(time.Time)
		assert.False(t, lastLogin.Before(registration))

		// 会员等级与订单数保持关联
		totalOrders := row["total_orders"].(int)
		assert.Equal(t, loyaltyTier(totalOrders), row["loyalty_tier"])

		// 总消费与订单数一致：无订单必然零消费
		totalSpent := row["total_spent"].(float64)
		if totalOrders == 0 {
			assert.Equal(t, 0.0, totalSpent)
		} else {
			assert.GreaterOrEqual(t, totalSpent, float64(totalOrders)*10)
			assert.LessOrEqual(t, totalSpent, float64(totalOrders)*200)
		}

		// 布尔字段真实存在两种取值的可能
		_, ok := row["is_active"].(bool)
		assert.True(t, ok)
	}
}

func TestLoyaltyTier(t *testing.T) {
	assert.Equal(t, "Bronze", loyaltyTier(0))
	assert.Equal(t, "Bronze", loyaltyTier(2))
	assert.Equal(t, "Silver", loyaltyTier(3))
	assert.Equal(t, "Silver", loyaltyTier(9))
	assert.Equal(t, "Gold", loyaltyTier(10))
	assert.Equal(t, "Gold", loyaltyTier(24))
	assert.Equal(t, "Platinum", loyaltyTier(25))
}
