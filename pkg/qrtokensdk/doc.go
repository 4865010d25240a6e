/*
Package qrtokensdk provides a client for the QR token backend and the wire
types shared with the server.

# Issuing

The issuer only needs CreateQRToken. It sends exactly one POST and returns
the response verbatim, whatever the status code:

	client := qrtokensdk.NewSDKClient("http://localhost:3000")

	resp, err := client.CreateQRToken(ctx, req)
	if err != nil {
		var terr *qrtokensdk.TransportError
		if errors.As(err, &terr) {
			// connection refused, DNS failure, timeout...
		}
		return err
	}
	fmt.Println(resp.StatusCode, string(resp.Body))

No retries are attempted and the HTTP client has no timeout of its own.
Callers that need a deadline should set one on ctx.

# Managing tokens

The remaining methods decode the server's JSON envelope and return typed
errors for non-2xx responses:

	tokens, err := client.ListQRTokens(ctx)
	valid, err := client.ValidateToken(ctx, token)
	tok, err := client.MarkUsed(ctx, id)

# Error Handling

  - TransportError: the request never produced an HTTP response
  - APIError: the server answered with an error status and body
*/
package qrtokensdk
