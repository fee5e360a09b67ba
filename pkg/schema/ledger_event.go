package schema

const LedgerEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "ledger_event",
	"fields": [
		{"name": "ledger", "type": "string"},
		{"name": "action", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "product_name", "type": "string"},
		{"name": "quantity", "type": "long"},
		{"name": "total_items", "type": "long"},
		{"name": "subtotal", "type": "string"}
	]
}`

// Monetary fields travel as decimal strings.
type LedgerEventV1 struct {
	Ledger      string `avro:"ledger"`
	Action      string `avro:"action"`
	ProductID   int64  `avro:"product_id"`
	ProductName string `avro:"product_name"`
	Quantity    int64  `avro:"quantity"`
	TotalItems  int64  `avro:"total_items"`
	Subtotal    string `avro:"subtotal"`
}
