// Package environment carries the deployment stage through request contexts.
//
// The server parses APP_ENV once with Parse and installs Middleware; views
// and handlers then ask IsProduction or IsDevelopment instead of reading
// configuration. The logger attaches the stage as a static attribute.
package environment
