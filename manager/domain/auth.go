package domain

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Claims represents JWT token claims
type Claims struct {
	UID  string `json:"uid"`
	Role Role   `json:"role"`
	jwt.RegisteredClaims
}

func (c Claims) GetBsonObjectUID() (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(c.UID)
}

// Actor is the authenticated identity behind a request.
type Actor struct {
	ID       bson.ObjectID
	FullName string
	Role     Role
}

func (a *Actor) IsSuperadmin() bool {
	return a != nil && a.Role == RoleSuperadmin
}

// RequestContext carries who made a request and where it came from.
// Actor is nil for unauthenticated requests; it is never partially set.
type RequestContext struct {
	Actor     *Actor
	IP        string
	Method    string
	Path      string
	UserAgent string
}

// WithActor returns a copy of rc acting as the given account.
func (rc RequestContext) WithActor(actor *Actor) RequestContext {
	rc.Actor = actor
	return rc
}
