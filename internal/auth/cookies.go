package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AdminCookieName  = "adminToken"
	MemberCookieName = "memberToken"
)

type CookieConfig struct {
	Secure   bool
	SameSite http.SameSite
}

func CookieName(kind Kind) string {
	if kind == KindMember {
		return MemberCookieName
	}
	return AdminCookieName
}

func SetSessionCookie(c *gin.Context, kind Kind, token string, cfg CookieConfig) {
	writeCookie(c, CookieName(kind), token, int(SessionTTL.Seconds()), cfg)
}

func ClearSessionCookie(c *gin.Context, kind Kind, cfg CookieConfig) {
	writeCookie(c, CookieName(kind), "", -1, cfg)
}

func writeCookie(c *gin.Context, name, value string, maxAge int, cfg CookieConfig) {
	sameSite := cfg.SameSite
	if sameSite == 0 || sameSite == http.SameSiteDefaultMode {
		sameSite = http.SameSiteLaxMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(name, value, maxAge, "/", "", cfg.Secure, true)
}
