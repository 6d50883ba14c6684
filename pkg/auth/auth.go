package auth

import (
	"context"
)

// Identity is supplied by the gateway in trusted headers; the service does
// not verify credentials itself.
const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
)

const (
	RoleAdmin = "ADMIN"
	RoleGuest = "GUEST"
)

type ctxKey int

const authKey ctxKey = iota

type Auth struct {
	UserName string
	Role     string
}

func SetAuthContext(ctx context.Context, userName, role string) context.Context {
	return context.WithValue(ctx, authKey, Auth{UserName: userName, Role: role})
}

func FromContext(ctx context.Context) (Auth, bool) {
	a, ok := ctx.Value(authKey).(Auth)
	return a, ok
}

func UserName(ctx context.Context) string {
	a, _ := FromContext(ctx)
	return a.UserName
}

func IsAdmin(ctx context.Context) bool {
	a, _ := FromContext(ctx)
	return a.Role == RoleAdmin
}
