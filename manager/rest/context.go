package rest

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/registra/api/manager/domain"
)

type actorContextKey struct{}

func (h *Handler) SetActorInContext(ctx context.Context, actor *domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func (h *Handler) GetActorFromContext(ctx context.Context) (*domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(*domain.Actor)
	return actor, ok && actor != nil
}

// RequestContext captures who is calling and from where. X-Forwarded-For is
// kept verbatim and wins over the socket address.
func (h *Handler) RequestContext(r *http.Request) domain.RequestContext {
	rc := domain.RequestContext{
		IP:        clientIP(r),
		Method:    r.Method,
		Path:      r.RequestURI,
		UserAgent: r.UserAgent(),
	}
	if rc.Path == "" && r.URL != nil {
		rc.Path = r.URL.RequestURI()
	}
	if actor, ok := h.GetActorFromContext(r.Context()); ok {
		rc.Actor = actor
	}
	return rc
}

func clientIP(r *http.Request) string {
	if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
