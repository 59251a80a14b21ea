package httpapi

import "github.com/xeipuuv/gojsonschema"

const (
	schemaOrderRef = `{
  "type": "object",
  "properties": {
    "order_id":    {"type": "string", "maxLength": 128},
    "display_id":  {"type": ["string", "integer"]},
    "email":       {"type": "string", "maxLength": 320},
    "customer_id": {"type": "string", "maxLength": 128}
  }
}`

	schemaPromotions = `{
  "type": "object",
  "properties": {
    "promo_codes": {
      "type": "array",
      "minItems": 1,
      "maxItems": 20,
      "items": {"type": "string", "minLength": 1, "maxLength": 64}
    }
  },
  "required": ["promo_codes"]
}`

	schemaAddLine = `{
  "type": "object",
  "properties": {
    "variant_id": {"type": "string", "minLength": 1, "maxLength": 128},
    "quantity":   {"type": "integer", "minimum": 1, "maximum": 1000}
  },
  "required": ["variant_id"]
}`

	schemaUpdateLine = `{
  "type": "object",
  "properties": {
    "quantity": {"type": "integer", "minimum": 0, "maximum": 1000}
  },
  "required": ["quantity"]
}`

	schemaCredentials = `{
  "type": "object",
  "properties": {
    "email":    {"type": "string", "minLength": 3, "maxLength": 320},
    "password": {"type": "string", "minLength": 1, "maxLength": 256}
  },
  "required": ["email", "password"]
}`

	schemaRecaptcha = `{
  "type": "object",
  "properties": {
    "token":  {"type": "string"},
    "action": {"type": "string", "maxLength": 100}
  }
}`
)

var (
	orderRefSchema    = mustSchema(schemaOrderRef)
	promotionsSchema  = mustSchema(schemaPromotions)
	addLineSchema     = mustSchema(schemaAddLine)
	updateLineSchema  = mustSchema(schemaUpdateLine)
	credentialsSchema = mustSchema(schemaCredentials)
	recaptchaSchema   = mustSchema(schemaRecaptcha)
)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(err)
	}
	return schema
}
