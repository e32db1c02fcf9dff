package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hatlonely/tempdataset/provider"
)

// loyaltyTier 会员等级由历史订单数决定，两个字段不能独立随机
func loyaltyTier(totalOrders int) string {
	switch {
	case totalOrders >= 25:
		return "Platinum"
	case totalOrders >= 10:
		return "Gold"
	case totalOrders >= 3:
		return "Silver"
	default:
		return "Bronze"
	}
}

var customersSchema = NewSchema(
	Field{Name: "customer_id", Type: FieldTypeString},
	Field{Name: "customer_uuid", Type: FieldTypeString},
	Field{Name: "first_name", Type: FieldTypeString},
	Field{Name: "last_name", Type: FieldTypeString},
	Field{Name: "full_name", Type: FieldTypeString},
	Field{Name: "email", Type: FieldTypeString},
	Field{Name: "phone", Type: FieldTypeString},
	Field{Name: "age", Type: FieldTypeInteger},
	Field{Name: "gender", Type: FieldTypeString},
	Field{Name: "street_address", Type: FieldTypeString},
	Field{Name: "city", Type: FieldTypeString},
	Field{Name: "state/province", Type: FieldTypeString},
	Field{Name: "postal_code", Type: FieldTypeString},
	Field{Name: "registration_date", Type: FieldTypeDate},
	Field{Name: "last_login", Type: FieldTypeDateTime},
	Field{Name: "is_active", Type: FieldTypeBoolean},
	Field{Name: "total_orders", Type: FieldTypeInteger},
	Field{Name: "total_spent", Type: FieldTypeFloat},
	Field{Name: "loyalty_tier", Type: FieldTypeString},
)

// CustomersDataset 客户档案模板
// 覆盖布尔和日期时间类型字段，会员等级与订单数保持关联
type CustomersDataset struct {
	p           provider.Provider
	windowStart time.Time
	windowEnd   time.Time
}

// NewCustomersDataset 创建客户数据集模板
func NewCustomersDataset(p provider.Provider) *CustomersDataset {
	now := DateOnly(time.Now())
	return &CustomersDataset{
		p:           p,
		windowStart: now.AddDate(-5, 0, 0),
		windowEnd:   now,
	}
}

func (d *CustomersDataset) Schema() *Schema {
	return customersSchema
}

func (d *CustomersDataset) Generate(rows int) ([]Row, error) {
	return d.GenerateRange(0, rows)
}

func (d *CustomersDataset) GenerateRange(start, count int) ([]Row, error) {
	if start < 0 {
		return nil, errors.WithMessagef(ErrInvalidRowCount, "start must be >= 0, got %d", start)
	}
	if err := CheckRowCount(count); err != nil {
		return nil, err
	}

	data := make([]Row, 0, count)
	for i := start; i < start+count; i++ {
		row, err := d.generateRow(i)
		if err != nil {
			return nil, errors.WithMessagef(err, "generate customers row %d failed", i)
		}
		data = append(data, row)
	}
	return data, nil
}

func (d *CustomersDataset) generateRow(n int) (Row, error) {
	p := d.p

	customerID := fmt.Sprintf("CUST-%06d", n+1)

	fullName := p.Name()
	parts := strings.SplitN(fullName, " ", 2)
	firstName, lastName := parts[0], parts[1]
	email := p.Email(fullName)

	area, err := p.Int(200, 999)
	if err != nil {
		return nil, err
	}
	exchange, err := p.Int(200, 999)
	if err != nil {
		return nil, err
	}
	line, err := p.Int(0, 9999)
	if err != nil {
		return nil, err
	}
	phone := fmt.Sprintf("+1-%03d-%03d-%04d", area, exchange, line)

	age, err := p.Int(18, 80)
	if err != nil {
		return nil, err
	}
	gender, err := p.Choice(salesGenders)
	if err != nil {
		return nil, err
	}

	addr := p.AddressParts()

	registration, err := p.Date(d.windowStart, d.windowEnd)
	if err != nil {
		return nil, err
	}
	// 最后登录不早于注册日
	lastLoginDay, err := p.Date(registration, d.windowEnd)
	if err != nil {
		return nil, err
	}
	seconds, err := p.Int(0, 86399)
	if err != nil {
		return nil, err
	}
	lastLogin := lastLoginDay.Add(time.Duration(seconds) * time.Second)

	totalOrders, err := p.Int(0, 50)
	if err != nil {
		return nil, err
	}
	// 总消费从订单数和平均客单价推导
	avgOrderValue, err := p.Float(10, 200, 2)
	if err != nil {
		return nil, err
	}
	totalSpent := provider.Round(float64(totalOrders)*avgOrderValue, 2)

	activeDraw, err := p.Int(0, 9)
	if err != nil {
		return nil, err
	}

	return Row{
		"customer_id":       customerID,
		"customer_uuid":     p.UUID(),
		"first_name":        firstName,
		"last_name":         lastName,
		"full_name":         fullName,
		"email":             email,
		"phone":             phone,
		"age":               age,
		"gender":            gender,
		"street_address":    addr.Street,
		"city":              addr.City,
		"state/province":    addr.State,
		"postal_code":       addr.PostalCode,
		"registration_date": registration,
		"last_login":        lastLogin,
		"is_active":         activeDraw < 8,
		"total_orders":      totalOrders,
		"total_spent":       totalSpent,
		"loyalty_tier":      loyaltyTier(totalOrders),
	}, nil
}
