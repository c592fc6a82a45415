// Package cloud implements the signed-request / envelope-response protocol
// shared by every operation of the document-processing API.
//
// # Overview
//
// Each operation follows the same steps:
//
//  1. Build a resource URI (URI, DocumentURI). Missing required arguments
//     fail with ErrInvalidArgument before anything touches the network.
//  2. Sign it (Signer). The appSID parameter and an HMAC-SHA1 signature are
//     appended to the query string.
//  3. Dispatch it (Dispatcher, HTTPDispatcher). One HTTP request, no retries.
//  4. Interpret the body, in one of two modes:
//     - Read mode: DecodeEnvelope + NewResult. The payload is meaningful only
//     when the envelope code is 200.
//     - Write mode: ValidateOutput. An empty result means the stored
//     document was mutated and should be fetched; anything else is the
//     server's message.
//
// # Configuration Example
//
//	cfg := cloud.DefaultConfig()
//	cfg.AppSID = os.Getenv("TASKCLOUD_APP_SID")
//	cfg.AppKey = os.Getenv("TASKCLOUD_APP_KEY")
//	client, err := cloud.NewClient(*cfg, cloud.WithLogger(logger))
//
// # Error Handling
//
//   - ErrInvalidArgument (*ArgumentError): a required field is missing.
//   - ErrAuthConfiguration: app SID or app key is unset.
//   - ErrTransport (*TransportError): connection failure, or a non-2xx status
//     whose body is not a JSON envelope.
//   - ErrNotFoundOrError (*EnvelopeError): returned by Result.Get when the
//     envelope code is not 200. The API does not distinguish "not found" from
//     other failures.
//
// # Hooks
//
// CommandHook implementations observe every command before and after it is
// dispatched. They see the unsigned URI only.
package cloud
