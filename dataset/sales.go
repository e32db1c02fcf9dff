package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hatlonely/tempdataset/provider"
)

// salesCategory 品类目录：子品类、品牌、商品名词和单价区间都以品类为条件
type salesCategory struct {
	Name          string
	Subcategories []string
	Brands        []string
	Nouns         []string
	PriceLo       float64
	PriceHi       float64
}

var salesCategories = []salesCategory{
	{
		Name:          "Electronics",
		Subcategories: []string{"Smartphones", "Laptops", "Tablets", "Headphones", "Cameras"},
		Brands:        []string{"Apple", "Samsung", "Sony", "Dell", "HP"},
		Nouns:         []string{"Phone", "Laptop", "Tablet", "Headset", "Camera", "Monitor"},
		PriceLo:       49.99, PriceHi: 1999.99,
	},
	{
		Name:          "Clothing",
		Subcategories: []string{"Shirts", "Pants", "Dresses", "Shoes", "Jackets"},
		Brands:        []string{"Nike", "Adidas", "Zara", "H&M", "Levi's"},
		Nouns:         []string{"Shirt", "Pants", "Dress", "Sneakers", "Jacket", "Hoodie"},
		PriceLo:       9.99, PriceHi: 199.99,
	},
	{
		Name:          "Home & Garden",
		Subcategories: []string{"Furniture", "Kitchen", "Bedding", "Decor", "Tools"},
		Brands:        []string{"IKEA", "Wayfair", "Ashley", "KitchenAid", "Black+Decker"},
		Nouns:         []string{"Chair", "Table", "Blender", "Lamp", "Pillow", "Drill"},
		PriceLo:       19.99, PriceHi: 999.99,
	},
	{
		Name:          "Sports",
		Subcategories: []string{"Fitness", "Outdoor", "Team Sports", "Cycling", "Swimming"},
		Brands:        []string{"Nike", "Adidas", "Under Armour", "Reebok", "Puma"},
		Nouns:         []string{"Dumbbell", "Tent", "Ball", "Bike", "Goggles", "Mat"},
		PriceLo:       14.99, PriceHi: 499.99,
	},
	{
		Name:          "Books",
		Subcategories: []string{"Fiction", "Non-Fiction", "Children", "Education", "Comics"},
		Brands:        []string{"Penguin", "HarperCollins", "Macmillan", "Scholastic", "Wiley"},
		Nouns:         []string{"Novel", "Guide", "Atlas", "Anthology", "Handbook"},
		PriceLo:       4.99, PriceHi: 49.99,
	},
	{
		Name:          "Beauty",
		Subcategories: []string{"Skincare", "Makeup", "Haircare", "Fragrance", "Bath & Body"},
		Brands:        []string{"L'Oreal", "Maybelline", "Nivea", "Dove", "Olay"},
		Nouns:         []string{"Serum", "Lipstick", "Shampoo", "Perfume", "Lotion"},
		PriceLo:       5.99, PriceHi: 149.99,
	},
}

// geoPlace 一组相互匹配的地理要素
type geoPlace struct {
	Country    string
	State      string
	City       string
	PostalCode string
}

// salesRegion 地区目录：国家、省州、城市、邮编都以地区为条件
type salesRegion struct {
	Name   string
	Places []geoPlace
}

var salesRegions = []salesRegion{
	{
		Name: "North America",
		Places: []geoPlace{
			{Country: "United States", State: "California", City: "Los Angeles", PostalCode: "90001"},
			{Country: "United States", State: "New York", City: "New York", PostalCode: "10001"},
			{Country: "United States", State: "Texas", City: "Austin", PostalCode: "73301"},
			{Country: "Canada", State: "Ontario", City: "Toronto", PostalCode: "M5H 2N2"},
			{Country: "Canada", State: "British Columbia", City: "Vancouver", PostalCode: "V5K 0A1"},
			{Country: "Mexico", State: "CDMX", City: "Mexico City", PostalCode: "01000"},
		},
	},
	{
		Name: "Europe",
		Places: []geoPlace{
			{Country: "United Kingdom", State: "England", City: "London", PostalCode: "SW1A 1AA"},
			{Country: "Germany", State: "Bavaria", City: "Munich", PostalCode: "80331"},
			{Country: "France", State: "Île-de-France", City: "Paris", PostalCode: "75001"},
			{Country: "Spain", State: "Madrid", City: "Madrid", PostalCode: "28001"},
			{Country: "Italy", State: "Lombardy", City: "Milan", PostalCode: "20121"},
		},
	},
	{
		Name: "Asia Pacific",
		Places: []geoPlace{
			{Country: "Japan", State: "Tokyo", City: "Tokyo", PostalCode: "100-0001"},
			{Country: "China", State: "Shanghai", City: "Shanghai", PostalCode: "200000"},
			{Country: "Australia", State: "New South Wales", City: "Sydney", PostalCode: "2000"},
			{Country: "India", State: "Maharashtra", City: "Mumbai", PostalCode: "400001"},
			{Country: "Singapore", State: "Central", City: "Singapore", PostalCode: "018989"},
		},
	},
	{
		Name: "South America",
		Places: []geoPlace{
			{Country: "Brazil", State: "São Paulo", City: "São Paulo", PostalCode: "01000-000"},
			{Country: "Argentina", State: "Buenos Aires", City: "Buenos Aires", PostalCode: "C1001"},
			{Country: "Chile", State: "Santiago Metropolitan", City: "Santiago", PostalCode: "8320000"},
			{Country: "Colombia", State: "Bogotá", City: "Bogotá", PostalCode: "110111"},
		},
	},
	{
		Name: "Middle East & Africa",
		Places: []geoPlace{
			{Country: "United Arab Emirates", State: "Dubai", City: "Dubai", PostalCode: "00000"},
			{Country: "South Africa", State: "Gauteng", City: "Johannesburg", PostalCode: "2000"},
			{Country: "Egypt", State: "Cairo", City: "Cairo", PostalCode: "11511"},
			{Country: "Nigeria", State: "Lagos", City: "Lagos", PostalCode: "100001"},
		},
	},
}

var salesPaymentMethods = []string{
	"Credit Card", "Debit Card", "PayPal", "Cash", "Bank Transfer", "Gift Card",
}

var salesGenders = []provider.WeightedOption{
	{Value: "Male", Weight: 48},
	{Value: "Female", Weight: 48},
	{Value: "Other", Weight: 4},
}

var salesSchema = NewSchema(
	Field{Name: "order_id", Type: FieldTypeString},
	Field{Name: "customer_id", Type: FieldTypeString},
	Field{Name: "customer_name", Type: FieldTypeString},
	Field{Name: "customer_email", Type: FieldTypeString},
	Field{Name: "product_id", Type: FieldTypeString},
	Field{Name: "product_name", Type: FieldTypeString},
	Field{Name: "category", Type: FieldTypeString},
	Field{Name: "subcategory", Type: FieldTypeString},
	Field{Name: "brand", Type: FieldTypeString},
	Field{Name: "quantity", Type: FieldTypeInteger},
	Field{Name: "unit_price", Type: FieldTypeFloat},
	Field{Name: "total_price", Type: FieldTypeFloat},
	Field{Name: "discount", Type: FieldTypeFloat},
	Field{Name: "final_price", Type: FieldTypeFloat},
	Field{Name: "order_date", Type: FieldTypeDate},
	Field{Name: "ship_date", Type: FieldTypeDate},
	Field{Name: "delivery_date", Type: FieldTypeDate},
	Field{Name: "sales_rep", Type: FieldTypeString},
	Field{Name: "region", Type: FieldTypeString},
	Field{Name: "country", Type: FieldTypeString},
	Field{Name: "state/province", Type: FieldTypeString},
	Field{Name: "city", Type: FieldTypeString},
	Field{Name: "postal_code", Type: FieldTypeString},
	Field{Name: "payment_method", Type: FieldTypeString},
	Field{Name: "customer_age", Type: FieldTypeInteger},
	Field{Name: "customer_gender", Type: FieldTypeString},
	Field{Name: "profit", Type: FieldTypeFloat},
)

// SalesDataset 销售订单参考模板
// 每一行同时满足算术恒等式、时间先后关系和类目关联关系
type SalesDataset struct {
	p       provider.Provider
	runYear int
	// 历史窗口 [windowStart, windowEnd]，构造时固定，保证分批生成时窗口一致
	windowStart time.Time
	windowEnd   time.Time
}

// NewSalesDataset 创建销售数据集模板
func NewSalesDataset(p provider.Provider) *SalesDataset {
	now := DateOnly(time.Now())
	return &SalesDataset{
		p:           p,
		runYear:     now.Year(),
		windowStart: now.AddDate(-2, 0, 0),
		windowEnd:   now,
	}
}

// Schema 返回 27 个字段的模式，不生成任何数据
func (d *SalesDataset) Schema() *Schema {
	return salesSchema
}

// Generate 生成数据，等价于 GenerateRange(0, rows)
func (d *SalesDataset) Generate(rows int) ([]Row, error) {
	return d.GenerateRange(0, rows)
}

// GenerateRange 从 start 偏移开始生成 count 行
func (d *SalesDataset) GenerateRange(start, count int) ([]Row, error) {
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
			return nil, errors.WithMessagef(err, "generate sales row %d failed", i)
		}
		data = append(data, row)
	}
	return data, nil
}

func (d *SalesDataset) generateRow(n int) (Row, error) {
	p := d.p

	// 顺序标识符：只依赖行号和运行年份
	orderID := fmt.Sprintf("ORD-%d-%06d", d.runYear, n+1)

	customerNum, err := p.Int(1000, 9999)
	if err != nil {
		return nil, err
	}
	customerID := fmt.Sprintf("CUST-%04d", customerNum)

	productID, err := d.productID()
	if err != nil {
		return nil, err
	}

	// 类目链：子品类、品牌、商品名都以品类为条件
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
	productName := fmt.Sprintf("%s %s %s",
		cat.Brands[brandIdx], capitalize(p.Word("adjective")), cat.Nouns[nounIdx])

	// 数值链：每个计算字段都从已存储的输入推导，绝不独立随机
	quantity, err := p.Int(1, 10)
	if err != nil {
		return nil, err
	}
	unitPrice, err := p.Float(cat.PriceLo, cat.PriceHi, 2)
	if err != nil {
		return nil, err
	}
	totalPrice := provider.Round(float64(quantity)*unitPrice, 2)

	discountRate, err := p.Float(0, 0.19, 4)
	if err != nil {
		return nil, err
	}
	discount := provider.Round(totalPrice*discountRate, 2)
	finalPrice := provider.Round(totalPrice-discount, 2)

	profitRate, err := p.Float(0.11, 0.29, 4)
	if err != nil {
		return nil, err
	}
	profit := provider.Round(finalPrice*profitRate, 2)

	// 时间链：order_date <= ship_date <= delivery_date
	orderDate, err := p.Date(d.windowStart, d.windowEnd)
	if err != nil {
		return nil, err
	}
	shipDays, err := p.Int(1, 7)
	if err != nil {
		return nil, err
	}
	deliveryDays, err := p.Int(2, 14)
	if err != nil {
		return nil, err
	}
	shipDate := orderDate.AddDate(0, 0, shipDays)
	deliveryDate := shipDate.AddDate(0, 0, deliveryDays)

	// 地理链：先抽地区，国家/省州/城市/邮编都以地区为条件
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

	// 人口属性：邮箱从姓名派生
	customerName := p.Name()
	customerEmail := p.Email(customerName)
	salesRep := p.Name()
	customerAge, err := p.Int(18, 80)
	if err != nil {
		return nil, err
	}
	gender, err := p.Choice(salesGenders)
	if err != nil {
		return nil, err
	}
	paymentIdx, err := p.Int(0, len(salesPaymentMethods)-1)
	if err != nil {
		return nil, err
	}

	return Row{
		"order_id":        orderID,
		"customer_id":     customerID,
		"customer_name":   customerName,
		"customer_email":  customerEmail,
		"product_id":      productID,
		"product_name":    productName,
		"category":        cat.Name,
		"subcategory":     cat.Subcategories[subIdx],
		"brand":           cat.Brands[brandIdx],
		"quantity":        quantity,
		"unit_price":      unitPrice,
		"total_price":     totalPrice,
		"discount":        discount,
		"final_price":     finalPrice,
		"order_date":      orderDate,
		"ship_date":       shipDate,
		"delivery_date":   deliveryDate,
		"sales_rep":       salesRep,
		"region":          region.Name,
		"country":         place.Country,
		"state/province":  place.State,
		"city":            place.City,
		"postal_code":     place.PostalCode,
		"payment_method":  salesPaymentMethods[paymentIdx],
		"customer_age":    customerAge,
		"customer_gender": gender,
		"profit":          profit,
	}, nil
}

// productID 生成 PROD-AAANNN 格式的商品编号
func (d *SalesDataset) productID() (string, error) {
	var letters [3]byte
	for i := range letters {
		n, err := d.p.Int(0, 25)
		if err != nil {
			return "", err
		}
		letters[i] = byte('A' + n)
	}
	num, err := d.p.Int(0, 999)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PROD-%s%03d", string(letters[:]), num), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
