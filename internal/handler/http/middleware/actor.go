package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/timewatch/timewatch-backend-go/internal/domain/auth"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/response"
)

// ActorFromRequest rebuilds the authenticated caller from the verified
// token claims. Handlers pass the result down to services explicitly.
func ActorFromRequest(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return user.Actor{}, auth.ErrInvalidToken
	}

	permission, ok := permissionClaim(claims["permission"])
	if !ok {
		return user.Actor{}, auth.ErrInvalidToken
	}
	parsed, err := user.ParsePermission(permission)
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	companyID, _ := claims["company_id"].(string)

	return user.Actor{
		Email:      email,
		Permission: parsed,
		CompanyID:  companyID,
	}, nil
}

// permissionClaim handles the numeric types a decoded JWT claim can
// arrive as.
func permissionClaim(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func NetAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromRequest(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actor.Permission.IsNetAdmin() {
			response.HandleError(w, user.ErrUnauthorizedAccess)
			return
		}

		next.ServeHTTP(w, r)
	})
}
