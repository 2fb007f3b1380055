// Package api is the single HTTP client every domain service goes through.
// It injects the bearer token on the way out and turns non-2xx responses
// into typed errors on the way back, raising a force-logout event when the
// backend rejects the token.
package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/config"
	"github.com/reelmates/reelmates-client/internal/events"
	"github.com/reelmates/reelmates-client/internal/store"
)

type Client struct {
	rc      *resty.Client
	session *store.SessionStore
	bus     *events.Bus
	log     *zap.SugaredLogger
}

func NewClient(cfg *config.Config, session *store.SessionStore, bus *events.Bus, log *zap.Logger) *Client {
	c := &Client{
		session: session,
		bus:     bus,
		log:     log.Named("api").Sugar(),
	}

	rc := resty.New().
		SetBaseURL(cfg.API.BaseURL).
		SetTimeout(cfg.API.Timeout).
		SetHeader("Accept", "application/json")
	rc.OnBeforeRequest(c.attachToken)
	rc.OnAfterResponse(c.checkResponse)
	c.rc = rc

	return c
}

// attachToken adds the Authorization header when a token is stored. A
// failing token read is logged and the request proceeds unauthenticated.
func (c *Client) attachToken(_ *resty.Client, r *resty.Request) error {
	token, err := c.session.Token(r.Context())
	if err != nil {
		c.log.Warnw("could not read auth token, sending unauthenticated", "error", err)
		return nil
	}
	if token != "" {
		r.SetAuthToken(token)
	}
	return nil
}

// checkResponse maps non-2xx responses to *HTTPError. A 401 clears the
// stored token and publishes exactly one ForceLogout event, unless the body
// is the unverified-email variant, which screens handle themselves.
func (c *Client) checkResponse(_ *resty.Client, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	herr := newHTTPError(resp.StatusCode(), resp.Body())
	if resp.StatusCode() == http.StatusUnauthorized && !isUnverifiedEmail(herr.Message) {
		ctx := resp.Request.Context()
		if err := c.session.RemoveToken(ctx); err != nil {
			c.log.Errorw("could not clear token after 401", "error", err)
		}
		c.bus.Publish(events.Event{Name: events.ForceLogout, Payload: herr.Message})
	}
	return herr
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	req := c.rc.R().SetContext(ctx)
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Get(path)
	return err
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Post(path)
	return err
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Put(path)
	return err
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.rc.R().SetContext(ctx).Delete(path)
	return err
}
