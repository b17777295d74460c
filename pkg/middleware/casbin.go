package middleware

import (
	"net/http"
	"os"
	"sync"

	"InternLink/internal/auth"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	"github.com/casbin/casbin/v2/util"
	"github.com/labstack/echo/v4"
)

var (
	enforcer     *casbin.Enforcer
	enforcerOnce sync.Once
)

// getCasbinModel returns the identity-class RBAC model. Subjects are identity
// classes (intern, recruiter), objects are route paths, actions are methods.
func getCasbinModel() string {
	return `[request_definition]
	r = sub, obj, act

	[policy_definition]
	p = sub, obj, act, eft

	[role_definition]
	g = _, _

	[policy_effect]
	e = some(where (p.eft == allow))

	[matchers]
	m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && r.act == p.act`
}

// InitCasbinEnforcer initializes the Casbin enforcer singleton with the model
// defined in code and the policy CSV from disk.
func InitCasbinEnforcer() (*casbin.Enforcer, error) {
	var err error
	enforcerOnce.Do(func() {
		policyPath := os.Getenv("CASBIN_POLICY")
		if policyPath == "" {
			policyPath = "rbac_policy.csv"
		}
		m, errM := model.NewModelFromString(getCasbinModel())
		if errM != nil {
			err = errM
			return
		}
		adapter := fileadapter.NewAdapter(policyPath)
		enforcer, err = casbin.NewEnforcer(m, adapter)
		if err != nil {
			return
		}
		enforcer.AddFunction("keyMatch", util.KeyMatchFunc)
	})
	return enforcer, err
}

// CasbinMiddleware enforces identity-class route authorization: interns never
// reach the recruiter console and recruiters never reach the intern views.
func CasbinMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.JWTClaims)
		if !ok || claims == nil {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Unauthorized: missing user claims"})
		}
		enf, err := InitCasbinEnforcer()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "RBAC system error"})
		}
		allowed, err := enf.Enforce(claims.Class, c.Request().URL.Path, c.Request().Method)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "RBAC system error"})
		}
		if !allowed {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden: insufficient permissions"})
		}
		return next(c)
	}
}
