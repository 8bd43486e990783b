// Package api handles incoming HTTP requests for the storefront: catalog,
// user, cart and order endpoints, and login. Handlers decode and validate
// requests, call the services in internal/service, and translate their
// errors to HTTP status codes with HandleAPIError.
//
// Route registration lives in cmd/server; bearer-token checks and trace IDs
// are provided by the middleware subpackage.
package api
