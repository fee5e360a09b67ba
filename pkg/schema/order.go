package schema

const OrderSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "order",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "lines", "type": {"type": "array", "items": {
			"type": "record",
			"name": "order_line",
			"fields": [
				{"name": "product_id", "type": "long"},
				{"name": "name", "type": "string"},
				{"name": "unit_price", "type": "string"},
				{"name": "quantity", "type": "long"}
			]
		}}},
		{"name": "subtotal", "type": "string"},
		{"name": "shipping", "type": "string"},
		{"name": "tax", "type": "string"},
		{"name": "total", "type": "string"},
		{"name": "customer_email", "type": "string"},
		{"name": "placed_at", "type": "string"}
	]
}`

type (
	OrderV1 struct {
		OrderID       string        `avro:"order_id"`
		Lines         []OrderLineV1 `avro:"lines"`
		Subtotal      string        `avro:"subtotal"`
		Shipping      string        `avro:"shipping"`
		Tax           string        `avro:"tax"`
		Total         string        `avro:"total"`
		CustomerEmail string        `avro:"customer_email"`
		PlacedAt      string        `avro:"placed_at"`
	}

	OrderLineV1 struct {
		ProductID int64  `avro:"product_id"`
		Name      string `avro:"name"`
		UnitPrice string `avro:"unit_price"`
		Quantity  int64  `avro:"quantity"`
	}
)
