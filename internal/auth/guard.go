package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/staff-registry/pkg/interfaces"
	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/types"
)

// TokenHeader is the request header slot carrying the access token.
const TokenHeader = "x-access-token"

// SubjectKey is the gin context key holding the authorized subject id.
const SubjectKey = "subject_id"

// Policy is the role-matching rule bound to a route: a single required role
// or any of a set. One generic guard consumes both variants.
type Policy struct {
	roles []string
}

// RequireRole builds a single-role policy
func RequireRole(role string) Policy {
	return Policy{roles: []string{role}}
}

// RequireAnyOf builds an any-of-roles policy
func RequireAnyOf(roles ...string) Policy {
	return Policy{roles: roles}
}

// Roles returns the candidate roles of the policy
func (p Policy) Roles() []string {
	return p.roles
}

// Allows reports whether the resolved role satisfies the policy
func (p Policy) Allows(role string) bool {
	for _, r := range p.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Guard gates protected endpoints. Per request: verify the token's signature
// and expiry, resolve the subject's role from the store, and admit or reject
// against the route's policy. Nothing is cached between requests.
type Guard struct {
	issuer   interfaces.TokenIssuer
	resolver interfaces.SubjectResolver
	logger   *logger.Logger
}

// NewGuard creates an authorization guard
func NewGuard(issuer interfaces.TokenIssuer, resolver interfaces.SubjectResolver, log *logger.Logger) *Guard {
	return &Guard{
		issuer:   issuer,
		resolver: resolver,
		logger:   log,
	}
}

// Require returns middleware enforcing the given policy
func (g *Guard) Require(policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "No token provided",
			})
			return
		}

		subjectID, err := g.issuer.Verify(token)
		if err != nil {
			// Bad and expired tokens share the 500-class response; the
			// detail stays in the server log.
			g.logger.WithError(err).Warn("Token verification failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "Internal server error",
			})
			return
		}

		role, err := g.resolver.ResolveRole(c.Request.Context(), subjectID, policy.Roles())
		if err != nil {
			if types.IsErrorType(err, types.ErrorTypeNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"code":    http.StatusNotFound,
					"message": "No user found",
				})
				return
			}

			g.logger.WithError(err).WithField("subject", subjectID).Error("Role resolution failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "Internal server error",
			})
			return
		}

		if !policy.Allows(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "Insufficient role",
			})
			return
		}

		c.Set(SubjectKey, subjectID)
		c.Next()
	}
}
