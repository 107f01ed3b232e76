package jobs

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/umputun/scrapedash/app/backend"
	"github.com/umputun/scrapedash/app/enums"
)

// Outcome is the normalized result of a job start request
type Outcome struct {
	Status   int
	Count    int
	HasCount bool
	Message  string          // server message, if any
	Payload  json.RawMessage // listing embedded in the response, nil if none
}

// Interpret normalizes a job start response. Precedence:
//   - explicit error flag in the body gives ServerError
//   - non-2xx status gives ServerError
//   - on 2xx an empty body is a plain success
//   - with SuccessModeIndicator the body must be an object with status:"success"
//     or success:true, else DecodeError
//   - with SuccessModeHTTP any other 2xx body is a success, count and listing are
//     picked up if the body is an object carrying them
//
// The listing embedded in the body, if any, is looked up by the listing name.
func Interpret(resp backend.Response, listing enums.Listing, mode enums.SuccessMode) (Outcome, error) {
	const op = "start job"
	res := Outcome{Status: resp.Status}
	body := bytes.TrimSpace(resp.Body)
	success := resp.Status >= 200 && resp.Status < 300

	env, parseErr := backend.ParseEnvelope(body)
	if len(body) > 0 && parseErr == nil {
		res.Message = env.Message()
		if env.Failed() {
			return res, &backend.ServerError{Op: op, Status: resp.Status, Message: res.Message}
		}
	}

	if !success {
		return res, &backend.ServerError{Op: op, Status: resp.Status, Message: res.Message}
	}

	if len(body) == 0 {
		return res, nil
	}
	if parseErr != nil {
		if mode == enums.SuccessModeHTTP {
			return res, nil
		}
		return res, &backend.DecodeError{Op: op, Err: parseErr}
	}
	if !env.Succeeded() && mode != enums.SuccessModeHTTP {
		return res, &backend.DecodeError{Op: op, Err: errors.New("no success indicator in response")}
	}

	res.Count, res.HasCount = env.Int("count")
	res.Payload = env.Raw(listingKeys(listing)...)
	return res, nil
}

// listingKeys returns response keys carrying the listing, most preferred first
func listingKeys(listing enums.Listing) []string {
	if listing == enums.ListingNews {
		return []string{"news_items", "news"}
	}
	return []string{"properties"}
}

// statusText is a short form of the http status for notices and logs
func statusText(status int) string {
	if txt := http.StatusText(status); txt != "" {
		return txt
	}
	return "unknown status"
}
