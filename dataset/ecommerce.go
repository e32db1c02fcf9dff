package dataset

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/hatlonely/tempdataset/provider"
)

// deviceBrowsers 浏览器以设备类型为条件
var deviceBrowsers = []struct {
	Device   string
	Browsers []string
}{
	{Device: "Desktop", Browsers: []string{"Chrome", "Firefox", "Edge", "Safari"}},
	{Device: "Mobile", Browsers: []string{"Chrome Mobile", "Safari Mobile", "Samsung Internet"}},
	{Device: "Tablet", Browsers: []string{"Chrome Mobile", "Safari Mobile"}},
}

var ecommerceOrderStatuses = []provider.WeightedOption{
	{Value: "Completed", Weight: 70},
	{Value: "Shipped", Weight: 15},
	{Value: "Processing", Weight: 10},
	{Value: "Cancelled", Weight: 5},
}

var ecommerceSchema = NewSchema(
	Field{Name: "transaction_id", Type: FieldTypeString},
	Field{Name: "session_id", Type: FieldTypeString},
	Field{Name: "customer_name", Type: FieldTypeString},
	Field{Name: "customer_email", Type: FieldTypeString},
	Field{Name: "product_id", Type: FieldTypeString},
	Field{Name: "product_name", Type: FieldTypeString},
	Field{Name: "category", Type: FieldTypeString},
	Field{Name: "subcategory", Type: FieldTypeString},
	Field{Name: "quantity", Type: FieldTypeInteger},
	Field{Name: "unit_price", Type: FieldTypeFloat},
	Field{Name: "total_price", Type: FieldTypeFloat},
	Field{Name: "discount_percentage", Type: FieldTypeFloat},
	Field{Name: "discount_amount", Type: FieldTypeFloat},
	Field{Name: "final_price", Type: FieldTypeFloat},
	Field{Name: "payment_method", Type: FieldTypeString},
	Field{Name: "device_type", Type: FieldTypeString},
	Field{Name: "browser", Type: FieldTypeString},
	Field{Name: "order_status", Type: FieldTypeString},
	Field{Name: "order_time", Type: FieldTypeDateTime},
	Field{Name: "city", Type: FieldTypeString},
	Field{Name: "state_province", Type: FieldTypeString},
	Field{Name: "country", Type: FieldTypeString},
	Field{Name: "profit", Type: FieldTypeFloat},
)

// EcommerceDataset 线上交易模板
// 折扣以百分比字段给出，金额从百分比推导
type EcommerceDataset struct {
	p           provider.Provider
	runYear     int
	windowStart time.Time
	windowEnd   time.Time
}

// NewEcommerceDataset 创建线上交易数据集模板
func NewEcommerceDataset(p provider.Provider) *EcommerceDataset {
	now := DateOnly(time.Now())
	return &EcommerceDataset{
		p:           p,
		runYear:     now.Year(),
		windowStart: now.AddDate(-1, 0, 0),
		windowEnd:   now,
	}
}

func (d *EcommerceDataset) Schema() *Schema {
	return ecommerceSchema
}

func (d *EcommerceDataset) Generate(rows int) ([]Row, error) {
	return d.GenerateRange(0, rows)
}

func (d *EcommerceDataset) GenerateRange(start, count int) ([]Row, error) {
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
			return nil, errors.WithMessagef(err, "generate ecommerce row %d failed", i)
		}
		data = append(data, row)
	}
	return data, nil
}

func (d *EcommerceDataset) generateRow(n int) (Row, error) {
	p := d.p

	transactionID := fmt.Sprintf("TXN-%d-%06d", d.runYear, n+1)

	customerName := p.Name()
	customerEmail := p.Email(customerName)

	catIdx, err := p.Int(0, len(salesCategories)-1)
	if err != nil {
		return nil, err
	}
	cat := salesCategories[catIdx]
	subIdx, err := p.Int(0, len(cat.Subcategories)-1)
	if err != nil {
		return nil, err
	}
	brandIdx, err := p.Int(0, len(cat.Brands)-1)
	if err != nil {
		return nil, err
	}
	nounIdx, err := p.Int(0, len(cat.Nouns)-1)
	if err != nil {
		return nil, err
	}
	productName := fmt.Sprintf("%s %s", cat.Brands[brandIdx], cat.Nouns[nounIdx])

	var productID string
	{
		var letters [3]byte
		for i := range letters {
			c, err := p.Int(0, 25)
			if err != nil {
				return nil, err
			}
			letters[i] = byte('A' + c)
		}
		num, err := p.Int(0, 999)
		if err != nil {
			return nil, err
		}
		productID = fmt.Sprintf("PROD-%s%03d", string(letters[:]), num)
	}

	quantity, err := p.Int(1, 10)
	if err != nil {
		return nil, err
	}
	unitPrice, err := p.Float(cat.PriceLo, cat.PriceHi, 2)
	if err != nil {
		return nil, err
	}
	totalPrice := provider.Round(float64(quantity)*unitPrice, 2)

	// 折扣百分比 0-30，金额从百分比推导
	discountPct, err := p.Float(0, 30, 2)
	if err != nil {
		return nil, err
	}
	discountAmount := provider.Round(totalPrice*discountPct/100, 2)
	finalPrice := provider.Round(totalPrice-discountAmount, 2)

	profitRate, err := p.Float(0.11, 0.29, 4)
	if err != nil {
		return nil, err
	}
	profit := provider.Round(finalPrice*profitRate, 2)

	paymentIdx, err := p.Int(0, len(salesPaymentMethods)-1)
	if err != nil {
		return nil, err
	}

	deviceIdx, err := p.Int(0, len(deviceBrowsers)-1)
	if err != nil {
		return nil, err
	}
	device := deviceBrowsers[deviceIdx]
	browserIdx, err := p.Int(0, len(device.Browsers)-1)
	if err != nil {
		return nil, err
	}

	status, err := p.Choice(ecommerceOrderStatuses)
	if err != nil {
		return nil, err
	}

	orderDay, err := p.Date(d.windowStart, d.windowEnd)
	if err != nil {
		return nil, err
	}
	seconds, err := p.Int(0, 86399)
	if err != nil {
		return nil, err
	}
	orderTime := orderDay.Add(time.Duration(seconds) * time.Second)

	regionIdx, err := p.Int(0, len(salesRegions)-1)
	if err != nil {
		return nil, err
	}
	region := salesRegions[regionIdx]
	placeIdx, err := p.Int(0, len(region.Places)-1)
	if err != nil {
		return nil, err
	}
	place := region.Places[placeIdx]

	return Row{
		"transaction_id":      transactionID,
		"session_id":          p.UUID(),
		"customer_name":       customerName,
		"customer_email":      customerEmail,
		"product_id":          productID,
		"product_name":        productName,
		"category":            cat.Name,
		"subcategory":         cat.Subcategories[subIdx],
		"quantity":            quantity,
		"unit_price":          unitPrice,
		"total_price":         totalPrice,
		"discount_percentage": discountPct,
		"discount_amount":     discountAmount,
		"final_price":         finalPrice,
		"payment_method":      salesPaymentMethods[paymentIdx],
		"device_type":         device.Device,
		"browser":             device.Browsers[browserIdx],
		"order_status":        status,
		"order_time":          orderTime,
		"city":                place.City,
		"state_province":      place.State,
		"country":             place.Country,
		"profit":              profit,
	}, nil
}
