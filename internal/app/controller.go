package app

import "github.com/go-chi/chi/v5"

// Controller adds routes to the application router. Controllers are
// mounted in the order they were loaded, after all middleware.
type Controller interface {
	Mount(r chi.Router, a *App)
}

// ControllerFunc adapts a function to Controller.
type ControllerFunc func(r chi.Router, a *App)

func (f ControllerFunc) Mount(r chi.Router, a *App) {
	f(r, a)
}
