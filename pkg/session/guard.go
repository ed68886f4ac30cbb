package session

import "fmt"

// Decision is a navigation guard's verdict for one route check
type Decision struct {
	// Loading is set while the session state is still undetermined; the
	// caller should render a loading affordance, not the route
	Loading bool

	// Allow is set when the route may render
	Allow bool

	// Redirect is the path to send the caller to when the route may not
	// render. Empty when Allow or Loading is set.
	Redirect string
}

// Guard makes routing decisions from the manager's auth state. It only
// reads state; it never triggers session operations.
type Guard struct {
	manager           *Manager
	anonymousHome     string
	authenticatedHome string
}

// NewGuard creates a Guard. anonymousHome is where signed-out users land
// (the login view), authenticatedHome is where signed-in users land.
func NewGuard(manager *Manager, anonymousHome, authenticatedHome string) (*Guard, error) {
	if manager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &Guard{
		manager:           manager,
		anonymousHome:     anonymousHome,
		authenticatedHome: authenticatedHome,
	}, nil
}

// Check decides whether a route may render. Routes with requireAuth are
// only for authenticated users; routes without are only for anonymous
// users (login and registration views).
func (g *Guard) Check(requireAuth bool) Decision {
	switch g.manager.State() {
	case StateInitializing:
		return Decision{Loading: true}
	case StateAuthenticated:
		if !requireAuth {
			return Decision{Redirect: g.authenticatedHome}
		}
	default:
		if requireAuth {
			return Decision{Redirect: g.anonymousHome}
		}
	}
	return Decision{Allow: true}
}
