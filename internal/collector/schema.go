package collector

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"StrategyScope/internal/collector/schemas"
)

var defaultPrinter = message.NewPrinter(language.English)

var metricsSchema *jsonschema.Schema

func init() {
	metricsSchema = mustCompileSchema(schemas.MetricsSchemaJSON, "metrics.schema.json")
}

func mustCompileSchema(raw, name string) *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		panic(fmt.Sprintf("parse embedded %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("add %s resource: %v", name, err))
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile %s: %v", name, err))
	}
	return sch
}

// ValidateDocument checks a YAML or JSON metric document against the embedded schema.
// It returns one message per violation, or nil when the document is valid.
func ValidateDocument(data []byte) []string {
	// JSON is a subset of YAML, one decoder covers both.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("parse error: %v", err)}
	}
	if doc == nil {
		return []string{"/: empty document"}
	}

	err := metricsSchema.Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}
