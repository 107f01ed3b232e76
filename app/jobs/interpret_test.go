package jobs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/scrapedash/app/backend"
	"github.com/umputun/scrapedash/app/enums"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		listing   enums.Listing
		mode      enums.SuccessMode // indicator if not set
		wantErr   string // "server" or "decode"
		wantMsg   string
		wantCount int
		hasCount  bool
		payload   string
	}{
		{name: "status success with count", status: 200, body: `{"status":"success","count":3}`,
			wantCount: 3, hasCount: true},
		{name: "success flag with properties", status: 200, body: `{"success":true,"properties":[{"title":"a"}]}`,
			payload: `[{"title":"a"}]`},
		{name: "news_items preferred", status: 200, listing: enums.ListingNews,
			body: `{"success":true,"news_items":[1],"news":[2]}`, payload: `[1]`},
		{name: "news fallback", status: 200, listing: enums.ListingNews, body: `{"status":"success","news":[2]}`, payload: `[2]`},
		{name: "null listing ignored", status: 200, body: `{"status":"success","properties":null}`},
		{name: "plain http success", status: 204, body: ``},
		{name: "whitespace body", status: 200, body: " \n"},
		{name: "success with message", status: 200, body: `{"status":"success","message":"started"}`, wantMsg: "started"},
		{name: "error flag wins over 2xx", status: 200, body: `{"success":false,"message":"busy"}`,
			wantErr: "server", wantMsg: "busy"},
		{name: "status error", status: 200, body: `{"status":"error","message":"no sources"}`,
			wantErr: "server", wantMsg: "no sources"},
		{name: "error field", status: 200, body: `{"status":"success","error":"partial"}`,
			wantErr: "server", wantMsg: "partial"},
		{name: "500 with message", status: 500, body: `{"message":"db down"}`, wantErr: "server", wantMsg: "db down"},
		{name: "500 not json", status: 500, body: `Internal Server Error`, wantErr: "server"},
		{name: "404 empty", status: 404, wantErr: "server"},
		{name: "2xx not json", status: 200, body: `<html>ok</html>`, wantErr: "decode"},
		{name: "2xx no indicator", status: 200, body: `{"count":3}`, wantErr: "decode"},
		{name: "2xx array", status: 200, body: `[1,2]`, wantErr: "decode"},
		{name: "http mode message only", status: 200, body: `{"message":"Scraping started"}`,
			mode: enums.SuccessModeHTTP, wantMsg: "Scraping started"},
		{name: "http mode text body", status: 200, body: `OK`, mode: enums.SuccessModeHTTP},
		{name: "http mode count without indicator", status: 202, body: `{"count":4}`, mode: enums.SuccessModeHTTP,
			wantCount: 4, hasCount: true},
		{name: "http mode properties", status: 200, body: `{"properties":[{"title":"b"}]}`, mode: enums.SuccessModeHTTP,
			payload: `[{"title":"b"}]`},
		{name: "http mode error flag", status: 200, body: `{"status":"failed","message":"quota"}`,
			mode: enums.SuccessModeHTTP, wantErr: "server", wantMsg: "quota"},
		{name: "http mode 500", status: 500, body: `oops`, mode: enums.SuccessModeHTTP, wantErr: "server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := tt.listing
			if listing == (enums.Listing{}) {
				listing = enums.ListingProperties
			}
			mode := tt.mode
			if mode == (enums.SuccessMode{}) {
				mode = enums.SuccessModeIndicator
			}
			out, err := Interpret(backend.Response{Status: tt.status, Body: []byte(tt.body)}, listing, mode)
			assert.Equal(t, tt.status, out.Status)
			assert.Equal(t, tt.wantMsg, out.Message)
			switch tt.wantErr {
			case "server":
				var srvErr *backend.ServerError
				require.ErrorAs(t, err, &srvErr)
				assert.Equal(t, tt.status, srvErr.Status)
				assert.Equal(t, tt.wantMsg, srvErr.Message)
				return
			case "decode":
				var decErr *backend.DecodeError
				require.ErrorAs(t, err, &decErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, out.Count)
			assert.Equal(t, tt.hasCount, out.HasCount)
			if tt.payload == "" {
				assert.Nil(t, out.Payload)
				return
			}
			assert.JSONEq(t, tt.payload, string(out.Payload))
		})
	}
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Internal Server Error", statusText(http.StatusInternalServerError))
	assert.Equal(t, "unknown status", statusText(0))
}
