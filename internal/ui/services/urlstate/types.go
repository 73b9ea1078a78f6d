package urlstate

import "net/url"

// Scheme of showroom addresses, e.g. showroom:///photos?category=Epoxy
const Scheme = "showroom"

// Query parameter names
const (
	ParamCategory = "category"
	ParamQuery    = "query"
	ParamService  = "service"
)

// Location is a navigable address history, modelled on a browser's
type Location interface {
	Current() *url.URL
	Replace(u *url.URL)
	Push(u *url.URL)
	Back() bool
	Forward() bool
}

// Event types
type AddressReplacedEvent struct {
	Address string
}

type AddressPushedEvent struct {
	Address string
}
