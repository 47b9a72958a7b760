package app

import "errors"

var (
	// ErrNotStarted is reported when a service is registered before Start
	// loaded the configuration it may depend on.
	ErrNotStarted = errors.New("app is not started")
	// ErrRouterBuilt is reported for Use or Load calls made after the
	// router was built by Handler or Listen.
	ErrRouterBuilt = errors.New("router is already built")
)
