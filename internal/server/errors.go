package server

import "errors"

// errNoHandler is returned by Serve when the server was built without a
// handler.
var errNoHandler = errors.New("http server: no handler to serve")
