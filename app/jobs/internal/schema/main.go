// Command schema writes the JSON schema of the jobs file, run by go generate in app/jobs.
// The result is embedded by the jobs package and checked against every loaded file.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/umputun/scrapedash/app/jobs"
)

func main() {
	out := "schema.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	r := jsonschema.Reflector{}
	schema := r.Reflect(&jobs.ContractsFile{})
	schema.Title = "Scrapedash Jobs Configuration Schema"
	schema.Description = "Schema for scrapedash job contracts file"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("[ERROR] can't marshal jobs schema: %v", err)
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o600); err != nil {
		log.Fatalf("[ERROR] can't write %s: %v", out, err)
	}
	log.Printf("[INFO] jobs schema written to %s", out)
}
