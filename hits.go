package hitship

import (
	"fmt"
	"strconv"
)

// Hit type identifiers on the wire.
const (
	HitTypePageview   = "pageview"
	HitTypeScreenView = "screenview"
	HitTypeEvent      = "event"
	HitTypeTiming     = "timing"
	HitTypeException  = "exception"
)

// Pageview describes a page view hit. Path is required unless the
// document location is supplied through Params. Unset optional fields are
// dropped before enqueue.
type Pageview struct {
	Path     string
	Hostname string
	Title    string

	// Params carries additional parameters, user-facing or wire names.
	Params map[string]string
}

// Pageview records a page view on the shared queue. The hit is not sent
// until Send is called.
func (v *Visitor) Pageview(p Pageview) error {
	if p.Path == "" && p.Params["documentLocation"] == "" && p.Params["dl"] == "" {
		return fmt.Errorf("%w: pageview requires a path", ErrMissingField)
	}

	v.track(HitTypePageview, map[string]string{
		"documentPath":     p.Path,
		"documentHostname": p.Hostname,
		"documentTitle":    p.Title,
	}, p.Params)
	return nil
}

// ScreenView describes an app screen view hit.
type ScreenView struct {
	Name       string
	AppName    string
	AppVersion string

	Params map[string]string
}

// ScreenView records a screen view on the shared queue.
func (v *Visitor) ScreenView(s ScreenView) error {
	if s.Name == "" {
		return fmt.Errorf("%w: screenview requires a screen name", ErrMissingField)
	}

	v.track(HitTypeScreenView, map[string]string{
		"screenName": s.Name,
		"appName":    s.AppName,
		"appVersion": s.AppVersion,
	}, s.Params)
	return nil
}

// Event describes an interaction event hit. Category and Action are
// required; Value is included only when positive.
type Event struct {
	Category string
	Action   string
	Label    string
	Value    int

	Params map[string]string
}

// Event records an event on the shared queue.
func (v *Visitor) Event(e Event) error {
	if e.Category == "" || e.Action == "" {
		return fmt.Errorf("%w: event requires category and action", ErrMissingField)
	}

	fields := map[string]string{
		"eventCategory": e.Category,
		"eventAction":   e.Action,
		"eventLabel":    e.Label,
	}
	if e.Value > 0 {
		fields["eventValue"] = strconv.Itoa(e.Value)
	}

	v.track(HitTypeEvent, fields, e.Params)
	return nil
}

// Timing describes a user timing hit. Time is in milliseconds.
type Timing struct {
	Category string
	Variable string
	Time     int
	Label    string

	Params map[string]string
}

// Timing records a user timing on the shared queue.
func (v *Visitor) Timing(t Timing) error {
	if t.Category == "" || t.Variable == "" {
		return fmt.Errorf("%w: timing requires category and variable", ErrMissingField)
	}

	v.track(HitTypeTiming, map[string]string{
		"userTimingCategory": t.Category,
		"userTimingVariable": t.Variable,
		"userTimingTime":     strconv.Itoa(t.Time),
		"userTimingLabel":    t.Label,
	}, t.Params)
	return nil
}

// Exception describes an application error hit.
type Exception struct {
	Description string
	Fatal       bool

	Params map[string]string
}

// Exception records an exception on the shared queue.
func (v *Visitor) Exception(e Exception) error {
	if e.Description == "" {
		return fmt.Errorf("%w: exception requires a description", ErrMissingField)
	}

	fields := map[string]string{
		"exceptionDescription": e.Description,
	}
	if e.Fatal {
		fields["isExceptionFatal"] = "1"
	}

	v.track(HitTypeException, fields, e.Params)
	return nil
}

// Track records an arbitrary hit of the given type with the supplied
// parameters. It is the generic escape hatch for hit types without a
// dedicated operation.
func (v *Visitor) Track(hitType string, p map[string]string) error {
	if hitType == "" {
		return fmt.Errorf("%w: hit type is required", ErrMissingField)
	}

	v.track(hitType, nil, p)
	return nil
}
