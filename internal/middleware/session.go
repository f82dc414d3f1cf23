package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie guarda o id da sessão do painel no navegador
	SessionCookie = "painel_session"
	SessionIDKey  = "session_id"
)

// Session garante que toda requisição tenha um id de sessão. Sem cookie (ou
// com um valor que não é uuid) um id novo é gerado e devolvido no Set-Cookie.
// maxAge em segundos; 0 deixa o cookie valer só enquanto o navegador estiver aberto.
func Session(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sessionID, maxAge, "/", "", false, true)
		c.Set(SessionIDKey, sessionID)

		c.Next()
	}
}

// GetSessionID obtém o id da sessão do contexto
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(SessionIDKey); exists {
		if id, ok := sessionID.(string); ok {
			return id
		}
	}
	return ""
}
