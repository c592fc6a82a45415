package cloud

import "context"

// CommandHook observes every dispatched command. Hooks cannot change the
// outcome of a command; failures inside a hook are the hook's own concern.
type CommandHook interface {
	// BeforeCommand runs after signing and before the request is sent.
	BeforeCommand(ctx context.Context, req *Request)

	// AfterCommand runs once the dispatcher returns. Exactly one of resp and
	// err is nil.
	AfterCommand(ctx context.Context, req *Request, resp *Response, err error)
}
