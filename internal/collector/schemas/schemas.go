package schemas

import _ "embed"

//go:embed metrics.schema.json
var MetricsSchemaJSON string
