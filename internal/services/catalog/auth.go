package catalog

import "net/http"

// signRequest adds the RapidAPI authentication headers to a catalog request
func signRequest(req *http.Request, apiKey, host string) {
	req.Header.Set("x-rapidapi-key", apiKey)
	req.Header.Set("x-rapidapi-host", host)
	req.Header.Set("Accept", "application/json")
}
