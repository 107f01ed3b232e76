package jobs

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/scrapedash/app/enums"
)

//go:generate go run ./internal/schema/main.go schema.json

const maxDelay = time.Minute

// ContractsFile is the yaml file with job contract overrides
type ContractsFile struct {
	Jobs []ContractSpec `yaml:"jobs" json:"jobs" jsonschema:"required,description=job contract overrides"`
}

// ContractSpec overrides the default contract of a single job kind. Empty fields keep defaults.
type ContractSpec struct {
	Kind      string         `yaml:"kind" json:"kind" jsonschema:"required,enum=classified,enum=news,enum=facebook"`
	Title     string         `yaml:"title,omitempty" json:"title,omitempty" jsonschema:"description=name used in notices"`
	Label     string         `yaml:"label,omitempty" json:"label,omitempty" jsonschema:"description=control label"`
	BusyLabel string         `yaml:"busy_label,omitempty" json:"busy_label,omitempty" jsonschema:"description=control label while starting"`
	Method    string         `yaml:"method,omitempty" json:"method,omitempty" jsonschema:"enum=GET,enum=POST,enum=get,enum=post"`
	Path      string         `yaml:"path,omitempty" json:"path,omitempty" jsonschema:"pattern=^/"`
	Payload   map[string]any `yaml:"payload,omitempty" json:"payload,omitempty" jsonschema:"description=JSON body of the start request"`
	Success   string         `yaml:"success,omitempty" json:"success,omitempty" jsonschema:"enum=indicator,enum=http,description=how a 2xx response is accepted"`
	Refresh   string         `yaml:"refresh,omitempty" json:"refresh,omitempty" jsonschema:"enum=immediate,enum=poll,enum=reload"`
	Delay     string         `yaml:"delay,omitempty" json:"delay,omitempty" jsonschema:"description=delay before deferred refresh,example=2s"`
	Listing   string         `yaml:"listing,omitempty" json:"listing,omitempty" jsonschema:"enum=properties,enum=news"`
	Noun      string         `yaml:"noun,omitempty" json:"noun,omitempty" jsonschema:"description=what the reported count counts"`
	NoPayload bool           `yaml:"no_payload,omitempty" json:"no_payload,omitempty" jsonschema:"description=send the start request without body"`
}

// LoadContracts returns default contracts with overrides from the yaml file applied.
// Empty file name gives defaults.
func LoadContracts(file string) (map[enums.JobKind]Contract, error) {
	res := DefaultContracts()
	if file == "" {
		return res, nil
	}

	data, err := os.ReadFile(file) //nolint:gosec // file name comes from cli options
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", file, err)
	}
	var cf ContractsFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse jobs file %s: %w", file, err)
	}
	if err := verifySchema(data); err != nil {
		return nil, fmt.Errorf("jobs file %s doesn't match schema: %w", file, err)
	}
	if len(cf.Jobs) == 0 {
		return nil, fmt.Errorf("jobs file %s: at least one job is required", file)
	}

	seen := map[enums.JobKind]bool{}
	for i, spec := range cf.Jobs {
		kind, err := enums.ParseJobKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		if seen[kind] {
			return nil, fmt.Errorf("job %d: duplicate kind %s", i+1, kind)
		}
		seen[kind] = true

		c, err := spec.apply(res[kind])
		if err != nil {
			return nil, fmt.Errorf("job %d (%s): %w", i+1, kind, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("job %d (%s): %w", i+1, kind, err)
		}
		res[kind] = c
		log.Printf("[DEBUG] job %s contract: %s %s, refresh %s after %v", kind, c.Method, c.Path, c.Refresh, c.Delay)
	}
	log.Printf("[INFO] loaded %d job contract overrides from %s", len(cf.Jobs), file)
	return res, nil
}

// apply copies non-empty fields of the spec over c
func (s ContractSpec) apply(c Contract) (Contract, error) {
	setString(&c.Title, s.Title)
	setString(&c.Label, s.Label)
	setString(&c.BusyLabel, s.BusyLabel)
	setString(&c.Noun, s.Noun)
	setString(&c.Path, s.Path)
	if s.Method != "" {
		c.Method = strings.ToUpper(s.Method)
	}
	if s.Payload != nil {
		c.Payload = s.Payload
	}
	if s.NoPayload {
		c.Payload = nil
	}
	if s.Success != "" {
		mode, err := enums.ParseSuccessMode(s.Success)
		if err != nil {
			return c, err
		}
		c.Success = mode
	}
	if s.Refresh != "" {
		mode, err := enums.ParseRefreshMode(s.Refresh)
		if err != nil {
			return c, err
		}
		c.Refresh = mode
	}
	if s.Listing != "" {
		listing, err := enums.ParseListing(s.Listing)
		if err != nil {
			return c, err
		}
		c.Listing = listing
	}
	if s.Delay != "" {
		d, err := time.ParseDuration(s.Delay)
		if err != nil {
			return c, fmt.Errorf("invalid delay %q: %w", s.Delay, err)
		}
		c.Delay = d
	}
	return c, nil
}

// Validate checks the contract can be executed
func (c Contract) Validate() error {
	if c.Method != http.MethodGet && c.Method != http.MethodPost {
		return fmt.Errorf("method %q is not GET or POST", c.Method)
	}
	if c.Method == http.MethodGet && c.Payload != nil {
		return fmt.Errorf("payload is not allowed with GET")
	}
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path %q must start with /", c.Path)
	}
	if c.Delay < 0 || c.Delay > maxDelay {
		return fmt.Errorf("delay %v out of range (0-%v)", c.Delay, maxDelay)
	}
	if c.Label == "" {
		return fmt.Errorf("label is required")
	}
	if c.Success == (enums.SuccessMode{}) {
		return fmt.Errorf("success mode is required")
	}
	switch c.Refresh {
	case enums.RefreshModeImmediate, enums.RefreshModePoll:
		if c.Listing == (enums.Listing{}) {
			return fmt.Errorf("listing is required for %s refresh", c.Refresh)
		}
	case enums.RefreshModeReload:
	default:
		return fmt.Errorf("refresh mode is required")
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
