package context

import (
	"context"

	"github.com/mduval/wedding-rsvp/constant"
)

// GetUsername returns the authenticated admin username set by the auth
// middleware, if any.
func GetUsername(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UsernameKey)
	if v == nil {
		return "", false
	}
	u, ok := v.(string)
	return u, ok
}
