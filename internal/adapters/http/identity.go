package http

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pointcast/internal/domain"
)

// uidKey is the session slot holding the 128-bit user identity.
const uidKey = "uid"

// CtxUserKey is where provisioned identities land in the gin context
// for downstream handlers.
const CtxUserKey = "user_id"

// SessionUserID reads the identity already stored in the session.
func SessionUserID(c *gin.Context) (domain.UserID, bool) {
	raw, ok := sessions.Default(c).Get(uidKey).(string)
	if !ok {
		return domain.UserID{}, false
	}
	id, err := domain.ParseUserID(raw)
	if err != nil {
		return domain.UserID{}, false
	}
	return id, true
}

// ProvisionUserID returns the session identity, creating and persisting
// one on first contact. Only subscribe-style paths use this; command
// paths must never mint an identity.
func ProvisionUserID(c *gin.Context) (domain.UserID, error) {
	if id, ok := SessionUserID(c); ok {
		return id, nil
	}
	id := domain.NewUserID()
	sess := sessions.Default(c)
	sess.Set(uidKey, id.String())
	if err := sess.Save(); err != nil {
		return domain.UserID{}, err
	}
	log.Info().Str("module", "adapters.http").Stringer("user", id).Msg("provisioned identity")
	return id, nil
}

// RequireUserID rejects requests whose session carries no identity.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := SessionUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no identity"})
			return
		}
		c.Set(CtxUserKey, id)
		c.Next()
	}
}
