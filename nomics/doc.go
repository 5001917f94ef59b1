// Package nomics provides a client for the Nomics cryptocurrency market-data API.
//
// Every operation is a GET against a fixed endpoint path under the API root,
// with the caller's query parameters and the configured API key.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := nomics.NewClient("your-api-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.CurrenciesTicker(ctx, nomics.Params{"ids": []string{"BTC", "ETH"}})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Responses
//
// A 2xx response is decoded as JSON into Response.Data, unless the request
// asked for format=csv, in which case Response.Body holds the CSV text.
// Any other status also returns the body as text with a nil error; check
// Response.IsSuccess before trusting the content.
//
// # Error Handling
//
//   - ConfigError: missing API key at construction (wraps ErrMissingAPIKey)
//   - TransportError: the HTTP exchange failed
//   - DecodeError: a successful response was not valid JSON
//
// Use errors.As to tell them apart.
package nomics
