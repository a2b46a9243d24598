package gateway

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/example/artshop/pkg/config"
	"github.com/example/artshop/pkg/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	oauthStateCookie   = "oauth_state"
	googleUserInfoURL  = "https://openidconnect.googleapis.com/v1/userinfo"
	googleAuthFailure  = "google_auth_failed"
	oauthStateLifetime = 10 * time.Minute
)

type googleOAuth struct {
	config      *oauth2.Config
	userInfoURL string
	frontendURL string
}

// newGoogleOAuth returns nil when no google client is configured.
func newGoogleOAuth(cfg *config.AuthConfig) *googleOAuth {
	if cfg.Google.ClientID == "" {
		return nil
	}
	return &googleOAuth{
		config: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Endpoint:     endpoints.Google,
			Scopes:       []string{"openid", "profile", "email"},
		},
		userInfoURL: googleUserInfoURL,
		frontendURL: cfg.FrontendURL,
	}
}

type googleUserInfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func (o *googleOAuth) fetchUser(ctx context.Context, code string) (service.OAuthUser, error) {
	token, err := o.config.Exchange(ctx, code)
	if err != nil {
		return service.OAuthUser{}, fmt.Errorf("failed to exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.userInfoURL, nil)
	if err != nil {
		return service.OAuthUser{}, err
	}
	resp, err := o.config.Client(ctx, token).Do(req)
	if err != nil {
		return service.OAuthUser{}, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return service.OAuthUser{}, fmt.Errorf("userinfo returned %s", resp.Status)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return service.OAuthUser{}, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	return service.OAuthUser{ID: info.Sub, Name: info.Name, Email: info.Email, Picture: info.Picture}, nil
}

func (o *googleOAuth) successURL(resp *service.LoginResponse) string {
	q := url.Values{}
	q.Set("token", resp.Token)
	q.Set("name", resp.Name)
	q.Set("email", resp.Email)
	return o.frontendURL + "/auth/success?" + q.Encode()
}

func (o *googleOAuth) failureURL() string {
	return o.frontendURL + "/login?error=" + googleAuthFailure
}

func (g *Gateway) googleAuthorize(c *gin.Context) {
	if g.oauth == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "google login is not configured"})
		return
	}

	state, err := randomState()
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, int(oauthStateLifetime.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, g.oauth.config.AuthCodeURL(state))
}

func (g *Gateway) googleCallback(c *gin.Context) {
	if g.oauth == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "google login is not configured"})
		return
	}

	fail := func(reason string, err error) {
		g.logger.Warn("Google login failed", zap.String("reason", reason), zap.Error(err))
		c.Redirect(http.StatusFound, g.oauth.failureURL())
	}

	state, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)
	if err != nil || state == "" || state != c.Query("state") {
		fail("state mismatch", err)
		return
	}
	if e := c.Query("error"); e != "" {
		fail("provider error", errors.New(e))
		return
	}

	profile, err := g.oauth.fetchUser(c.Request.Context(), c.Query("code"))
	if err != nil {
		fail("userinfo", err)
		return
	}

	resp, err := g.services.Auth.LoginOAuth(c.Request.Context(), profile)
	if err != nil {
		fail("login", err)
		return
	}
	c.Redirect(http.StatusFound, g.oauth.successURL(resp))
}

func randomState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
