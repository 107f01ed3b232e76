package jobs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaData []byte

const schemaURL = "https://github.com/umputun/scrapedash/app/jobs/schema.json"

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add embedded schema: %w", err)
	}
	return c.Compile(schemaURL)
})

// verifySchema checks the yaml jobs file against the embedded schema
func verifySchema(data []byte) error {
	schema, err := compiled()
	if err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	// validator expects json values, round trip yaml through json
	js, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("can't convert to json: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return fmt.Errorf("can't read converted json: %w", err)
	}
	return schema.Validate(inst)
}
