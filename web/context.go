package web

import "context"

type (
	ctxKey byte
)

var (
	userKey = ctxKey(1)
)

func withUser(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userKey, id)
}

// currentUser returns the user id the session middleware resolved for
// this request, if any.
func currentUser(ctx context.Context) (int64, bool) {
	v := ctx.Value(userKey)
	if v == nil {
		return 0, false
	}
	return v.(int64), true
}
