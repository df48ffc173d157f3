package logic

import (
	"ai_digest/shared"
	"fmt"
	"net/http"
	"time"
)

const fetchTimeoutSec = 8

// Every outgoing request is bounded by this; a timeout only aborts the one fetch.
var fetchTimeout = fetchTimeoutSec * time.Second

func newHttpClient() *http.Client {
	client := http.Client{}
	client.Timeout = fetchTimeout
	return &client
}

// getOK issues a GET and returns the response only if the status is 200. Caller closes the body.
func getOK(client *http.Client, userAgent shared.IUserAgent, urlStr string) (*http.Response, error) {

	var err error
	var req *http.Request
	if req, err = http.NewRequest("GET", urlStr, nil); err != nil {
		return nil, err
	}
	userAgent.AddUserAgent(req)

	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("request for %s failed with status %d", urlStr, resp.StatusCode)
	}
	return resp, nil
}
