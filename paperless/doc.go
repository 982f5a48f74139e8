// Package paperless provides a client for the Paperless.com.ua document
// management API.
//
// The service exposes an OAuth-style authorization flow plus document
// upload, search, retrieval, lifecycle and digital-signature endpoints.
// This package translates typed method calls into the corresponding HTTP
// requests and maps responses back into plain data or a uniform error.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := paperless.NewClient("", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	code, err := client.GetAuthCode(ctx, clientID)
//	if err != nil {
//		log.Fatal(err)
//	}
//	token, err := client.GetAuthToken(ctx, clientID, clientSecret, code)
//
// Authenticated calls take the client id and access token explicitly; the
// Client holds no session state and is safe for concurrent use.
//
// # Authentication
//
// The service does not use a standard Authorization header. Every
// authenticated call carries a session cookie of the form
//
//	sessionId="Bearer <token>, Id <clientId>"
//
// which the client synthesizes verbatim. This is the service's wire
// contract.
//
// # Error handling
//
// Every failure, whether a transport error, a non-2xx status or a semantic
// authorization failure, is reported as *paperless.Error with the status or
// server diagnostic flattened into the message. There is no retry logic;
// a failed call surfaces immediately and recovery policy belongs to the
// caller.
//
// All calls refuse to follow redirects except GetDocumentFile, whose
// content endpoint may redirect to a storage location.
package paperless
